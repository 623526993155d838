package dataset

import "github.com/Rana718/saleor-seed/internal/saleor"

// Section is one entity kind's slice of the dataset. Data is created in
// order; nothing is reordered or deduplicated.
type Section[T any] struct {
	Enabled bool `yaml:"enabled"`
	Data    []T  `yaml:"data"`
}

type SeedConfig struct {
	TaxClasses   Section[saleor.TaxClassCreateInput]  `yaml:"taxClasses"`
	Warehouses   Section[saleor.WarehouseCreateInput] `yaml:"warehouses"`
	Channels     Section[ChannelConfig]               `yaml:"channels"`
	Shipping     Section[ShippingZoneConfig]          `yaml:"shipping"`
	Attributes   Section[saleor.AttributeCreateInput] `yaml:"attributes"`
	ProductTypes Section[ProductTypeConfig]           `yaml:"productTypes"`
	Categories   Section[CategoryConfig]              `yaml:"categories"`
	Collections  Section[CollectionConfig]            `yaml:"collections"`
	PageTypes    Section[PageTypeConfig]              `yaml:"pageTypes"`
	Pages        Section[PageConfig]                  `yaml:"pages"`
	Menus        Section[MenuConfig]                  `yaml:"menus"`
}

// ChannelConfig optionally names the warehouses to attach. Without
// WarehouseSlugs every warehouse seeded so far is attached.
type ChannelConfig struct {
	saleor.ChannelCreateInput `yaml:",inline"`
	WarehouseSlugs            []string `yaml:"warehouseSlugs,omitempty"`
}

type ShippingMethodConfig struct {
	Name string                    `yaml:"name"`
	Type saleor.ShippingMethodType `yaml:"type"`
	// ChannelPrices maps a channel slug to the method's price there.
	ChannelPrices map[string]float64 `yaml:"channelPrices,omitempty"`
}

type ShippingZoneConfig struct {
	saleor.ShippingZoneCreateInput `yaml:",inline"`
	ChannelSlugs                   []string               `yaml:"channelSlugs,omitempty"`
	WarehouseSlugs                 []string               `yaml:"warehouseSlugs,omitempty"`
	Methods                        []ShippingMethodConfig `yaml:"methods,omitempty"`
}

type ProductTypeConfig struct {
	saleor.ProductTypeInput `yaml:",inline"`
	TaxClassName            string   `yaml:"taxClassName,omitempty"`
	ProductAttributeSlugs   []string `yaml:"productAttributeSlugs,omitempty"`
	VariantAttributeSlugs   []string `yaml:"variantAttributeSlugs,omitempty"`
}

type CategoryConfig struct {
	saleor.CategoryInput `yaml:",inline"`
	Children             []CategoryConfig `yaml:"children,omitempty"`
}

type CollectionConfig struct {
	saleor.CollectionCreateInput `yaml:",inline"`
	ChannelSlugs                 []string `yaml:"channelSlugs,omitempty"`
}

type PageTypeConfig struct {
	saleor.PageTypeCreateInput `yaml:",inline"`
	AttributeSlugs             []string `yaml:"attributeSlugs,omitempty"`
}

type PageConfig struct {
	saleor.PageCreateInput `yaml:",inline"`
	PageTypeSlug           string `yaml:"pageTypeSlug"`
}

// MenuItemConfig links to at most one seeded entity by slug, or to a URL.
type MenuItemConfig struct {
	Name           string           `yaml:"name"`
	URL            string           `yaml:"url,omitempty"`
	CategorySlug   string           `yaml:"categorySlug,omitempty"`
	CollectionSlug string           `yaml:"collectionSlug,omitempty"`
	PageSlug       string           `yaml:"pageSlug,omitempty"`
	Children       []MenuItemConfig `yaml:"children,omitempty"`
}

type MenuConfig struct {
	saleor.MenuCreateInput `yaml:",inline"`
	Items                  []MenuItemConfig `yaml:"items,omitempty"`
}
