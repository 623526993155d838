package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/dataset"
)

const (
	TaxClasses   = "taxClasses"
	Warehouses   = "warehouses"
	Channels     = "channels"
	Shipping     = "shipping"
	Attributes   = "attributes"
	ProductTypes = "productTypes"
	Categories   = "categories"
	Collections  = "collections"
	PageTypes    = "pageTypes"
	Pages        = "pages"
	Menus        = "menus"
)

// Section is one entry of the fixed registry.
type Section struct {
	Name      string
	Title     string
	DependsOn []string

	enabled func(*dataset.SeedConfig) bool
	run     func(*Seeder, context.Context) error
}

// registry is listed in run order.
var registry = []Section{
	{
		Name:    TaxClasses,
		Title:   "Tax Classes",
		enabled: func(c *dataset.SeedConfig) bool { return c.TaxClasses.Enabled },
		run:     (*Seeder).seedTaxClasses,
	},
	{
		Name:    Warehouses,
		Title:   "Warehouses",
		enabled: func(c *dataset.SeedConfig) bool { return c.Warehouses.Enabled },
		run:     (*Seeder).seedWarehouses,
	},
	{
		Name:      Channels,
		Title:     "Channels",
		DependsOn: []string{TaxClasses, Warehouses},
		enabled:   func(c *dataset.SeedConfig) bool { return c.Channels.Enabled },
		run:       (*Seeder).seedChannels,
	},
	{
		Name:      Shipping,
		Title:     "Shipping Zones",
		DependsOn: []string{Channels, Warehouses},
		enabled:   func(c *dataset.SeedConfig) bool { return c.Shipping.Enabled },
		run:       (*Seeder).seedShipping,
	},
	{
		Name:    Attributes,
		Title:   "Attributes",
		enabled: func(c *dataset.SeedConfig) bool { return c.Attributes.Enabled },
		run:     (*Seeder).seedAttributes,
	},
	{
		Name:      ProductTypes,
		Title:     "Product Types",
		DependsOn: []string{Attributes},
		enabled:   func(c *dataset.SeedConfig) bool { return c.ProductTypes.Enabled },
		run:       (*Seeder).seedProductTypes,
	},
	{
		Name:    Categories,
		Title:   "Categories",
		enabled: func(c *dataset.SeedConfig) bool { return c.Categories.Enabled },
		run:     (*Seeder).seedCategories,
	},
	{
		Name:      Collections,
		Title:     "Collections",
		DependsOn: []string{Channels},
		enabled:   func(c *dataset.SeedConfig) bool { return c.Collections.Enabled },
		run:       (*Seeder).seedCollections,
	},
	{
		Name:    PageTypes,
		Title:   "Page Types",
		enabled: func(c *dataset.SeedConfig) bool { return c.PageTypes.Enabled },
		run:     (*Seeder).seedPageTypes,
	},
	{
		Name:      Pages,
		Title:     "Pages",
		DependsOn: []string{PageTypes},
		enabled:   func(c *dataset.SeedConfig) bool { return c.Pages.Enabled },
		run:       (*Seeder).seedPages,
	},
	{
		Name:      Menus,
		Title:     "Menus",
		DependsOn: []string{Categories, Collections, Pages},
		enabled:   func(c *dataset.SeedConfig) bool { return c.Menus.Enabled },
		run:       (*Seeder).seedMenus,
	},
}

var registryIndex = make(map[string]int, len(registry))

func init() {
	for i, sec := range registry {
		registryIndex[sec.Name] = i
	}
}

// Graph returns the registry's dependency edges. The run order is not
// derived from it; CheckOrder verifies the fixed order against it.
func Graph() *DependencyGraph {
	graph := NewDependencyGraph()
	for _, sec := range registry {
		graph.AddSection(sec.Name, sec.DependsOn...)
	}
	return graph
}

// SectionNames lists every known section in run order.
func SectionNames() []string {
	names := make([]string, len(registry))
	for i, sec := range registry {
		names[i] = sec.Name
	}
	return names
}

// Sections returns a copy of the registry in run order.
func Sections() []Section {
	out := make([]Section, len(registry))
	copy(out, registry)
	return out
}

func lookupSection(name string) (Section, bool) {
	i, ok := registryIndex[name]
	if !ok {
		return Section{}, false
	}
	return registry[i], true
}
