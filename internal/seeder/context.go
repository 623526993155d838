package seeder

// IDMap maps a natural key (slug, or name where an entity has no slug) to
// the ID the backend assigned. The first registration of a key wins.
type IDMap struct {
	ids  map[string]string
	keys []string
}

// Register records id under key. It reports false and keeps the existing
// entry if the key is already present.
func (m *IDMap) Register(key, id string) bool {
	if key == "" || id == "" {
		return false
	}
	if m.ids == nil {
		m.ids = make(map[string]string)
	}
	if _, exists := m.ids[key]; exists {
		return false
	}
	m.ids[key] = id
	m.keys = append(m.keys, key)
	return true
}

func (m *IDMap) Lookup(key string) (string, bool) {
	id, ok := m.ids[key]
	return id, ok
}

// IDs returns every registered ID in registration order.
func (m *IDMap) IDs() []string {
	ids := make([]string, 0, len(m.keys))
	for _, key := range m.keys {
		ids = append(ids, m.ids[key])
	}
	return ids
}

func (m *IDMap) Len() int {
	return len(m.keys)
}

// SeedContext is the run-scoped lookup table threaded through every
// section. It starts empty and only grows.
type SeedContext struct {
	TaxClasses    IDMap // by name
	Warehouses    IDMap
	Channels      IDMap
	ShippingZones IDMap // by name
	Attributes    IDMap
	ProductTypes  IDMap
	Categories    IDMap
	Collections   IDMap
	PageTypes     IDMap
	Pages         IDMap
	Menus         IDMap
}

func NewSeedContext() *SeedContext {
	return &SeedContext{}
}
