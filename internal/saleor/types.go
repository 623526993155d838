package saleor

// Mutation inputs. The yaml tags let dataset files describe them directly.

type CountryRateInput struct {
	CountryCode string  `json:"countryCode" yaml:"countryCode"`
	Rate        float64 `json:"rate" yaml:"rate"`
}

type TaxClassCreateInput struct {
	Name               string             `json:"name" yaml:"name"`
	CreateCountryRates []CountryRateInput `json:"createCountryRates,omitempty" yaml:"createCountryRates,omitempty"`
}

type AddressInput struct {
	CompanyName    string `json:"companyName,omitempty" yaml:"companyName,omitempty"`
	StreetAddress1 string `json:"streetAddress1" yaml:"streetAddress1"`
	StreetAddress2 string `json:"streetAddress2,omitempty" yaml:"streetAddress2,omitempty"`
	City           string `json:"city" yaml:"city"`
	Country        string `json:"country" yaml:"country"`
	CountryArea    string `json:"countryArea,omitempty" yaml:"countryArea,omitempty"`
	PostalCode     string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	Phone          string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

type WarehouseCreateInput struct {
	Name          string       `json:"name" yaml:"name"`
	Slug          string       `json:"slug,omitempty" yaml:"slug,omitempty"`
	Email         string       `json:"email,omitempty" yaml:"email,omitempty"`
	Address       AddressInput `json:"address" yaml:"address"`
	ShippingZones []string     `json:"shippingZones,omitempty" yaml:"shippingZones,omitempty"`
}

type ChannelCreateInput struct {
	Name             string   `json:"name" yaml:"name"`
	Slug             string   `json:"slug" yaml:"slug"`
	CurrencyCode     string   `json:"currencyCode" yaml:"currencyCode"`
	DefaultCountry   string   `json:"defaultCountry" yaml:"defaultCountry"`
	AddWarehouses    []string `json:"addWarehouses,omitempty" yaml:"addWarehouses,omitempty"`
	AddShippingZones []string `json:"addShippingZones,omitempty" yaml:"addShippingZones,omitempty"`
	IsActive         *bool    `json:"isActive,omitempty" yaml:"isActive,omitempty"`
}

type ShippingZoneCreateInput struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Countries     []string `json:"countries,omitempty" yaml:"countries,omitempty"`
	Default       *bool    `json:"default,omitempty" yaml:"default,omitempty"`
	AddChannels   []string `json:"addChannels,omitempty" yaml:"addChannels,omitempty"`
	AddWarehouses []string `json:"addWarehouses,omitempty" yaml:"addWarehouses,omitempty"`
}

type ShippingMethodType string

const (
	ShippingMethodPrice  ShippingMethodType = "PRICE"
	ShippingMethodWeight ShippingMethodType = "WEIGHT"
)

type ShippingPriceInput struct {
	Name         string             `json:"name"`
	ShippingZone string             `json:"shippingZone"`
	Type         ShippingMethodType `json:"type"`
}

type ShippingMethodChannelListingAddInput struct {
	ChannelID string  `json:"channelId"`
	Price     float64 `json:"price"`
}

type ShippingMethodChannelListingInput struct {
	AddChannels []ShippingMethodChannelListingAddInput `json:"addChannels"`
}

type AttributeValueCreateInput struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

type AttributeCreateInput struct {
	Name                     string                      `json:"name" yaml:"name"`
	Slug                     string                      `json:"slug,omitempty" yaml:"slug,omitempty"`
	Type                     string                      `json:"type" yaml:"type"`
	InputType                string                      `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	EntityType               string                      `json:"entityType,omitempty" yaml:"entityType,omitempty"`
	Values                   []AttributeValueCreateInput `json:"values,omitempty" yaml:"values,omitempty"`
	ValueRequired            *bool                       `json:"valueRequired,omitempty" yaml:"valueRequired,omitempty"`
	VisibleInStorefront      *bool                       `json:"visibleInStorefront,omitempty" yaml:"visibleInStorefront,omitempty"`
	FilterableInStorefront   *bool                       `json:"filterableInStorefront,omitempty" yaml:"filterableInStorefront,omitempty"`
	FilterableInDashboard    *bool                       `json:"filterableInDashboard,omitempty" yaml:"filterableInDashboard,omitempty"`
	AvailableInGrid          *bool                       `json:"availableInGrid,omitempty" yaml:"availableInGrid,omitempty"`
	StorefrontSearchPosition *int                        `json:"storefrontSearchPosition,omitempty" yaml:"storefrontSearchPosition,omitempty"`
}

type ProductTypeInput struct {
	Name               string `json:"name" yaml:"name"`
	Slug               string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Kind               string `json:"kind,omitempty" yaml:"kind,omitempty"`
	HasVariants        *bool  `json:"hasVariants,omitempty" yaml:"hasVariants,omitempty"`
	IsShippingRequired *bool  `json:"isShippingRequired,omitempty" yaml:"isShippingRequired,omitempty"`
	TaxClass           string `json:"taxClass,omitempty" yaml:"taxClass,omitempty"`
}

type AttributeAssignType string

const (
	AssignProduct AttributeAssignType = "PRODUCT"
	AssignVariant AttributeAssignType = "VARIANT"
)

type ProductAttributeAssignInput struct {
	ID   string              `json:"id"`
	Type AttributeAssignType `json:"type"`
}

type SeoInput struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type CategoryInput struct {
	Name               string    `json:"name" yaml:"name"`
	Slug               string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Seo                *SeoInput `json:"seo,omitempty" yaml:"seo,omitempty"`
	BackgroundImageAlt string    `json:"backgroundImageAlt,omitempty" yaml:"backgroundImageAlt,omitempty"`
}

type CollectionCreateInput struct {
	Name        string    `json:"name" yaml:"name"`
	Slug        string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	IsPublished *bool     `json:"isPublished,omitempty" yaml:"isPublished,omitempty"`
	Seo         *SeoInput `json:"seo,omitempty" yaml:"seo,omitempty"`
}

type PublishableChannelListingInput struct {
	ChannelID   string `json:"channelId"`
	IsPublished bool   `json:"isPublished"`
}

type CollectionChannelListingUpdateInput struct {
	AddChannels []PublishableChannelListingInput `json:"addChannels"`
}

type PageTypeCreateInput struct {
	Name          string   `json:"name" yaml:"name"`
	Slug          string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	AddAttributes []string `json:"addAttributes,omitempty" yaml:"addAttributes,omitempty"`
}

type PageCreateInput struct {
	Title       string    `json:"title" yaml:"title"`
	Slug        string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	PageType    string    `json:"pageType" yaml:"-"`
	IsPublished *bool     `json:"isPublished,omitempty" yaml:"isPublished,omitempty"`
	Seo         *SeoInput `json:"seo,omitempty" yaml:"seo,omitempty"`
}

type MenuCreateInput struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`
}

type MenuItemCreateInput struct {
	Menu       string `json:"menu"`
	Name       string `json:"name"`
	Parent     string `json:"parent,omitempty"`
	URL        string `json:"url,omitempty"`
	Category   string `json:"category,omitempty"`
	Collection string `json:"collection,omitempty"`
	Page       string `json:"page,omitempty"`
}

// Entities returned by the mutations.

type TaxClass struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Warehouse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Channel struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	CurrencyCode string `json:"currencyCode"`
}

type ShippingZone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShippingMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Attribute struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	InputType string `json:"inputType"`
}

type ProductType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	HasVariants bool   `json:"hasVariants"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Level int    `json:"level"`
}

type Collection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PageType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Page struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type Menu struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type MenuItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Mutation payloads.

type TokenCreatePayload struct {
	Token string `json:"token"`
	ErrorList
}

type TaxClassCreatePayload struct {
	TaxClass *TaxClass `json:"taxClass"`
	ErrorList
}

type WarehouseCreatePayload struct {
	Warehouse *Warehouse `json:"warehouse"`
	ErrorList
}

type ChannelCreatePayload struct {
	Channel *Channel `json:"channel"`
	ErrorList
}

type ShippingZoneCreatePayload struct {
	ShippingZone *ShippingZone `json:"shippingZone"`
	ErrorList
}

type ShippingPriceCreatePayload struct {
	ShippingMethod *ShippingMethod `json:"shippingMethod"`
	ErrorList
}

type ShippingMethodChannelListingUpdatePayload struct {
	ShippingMethod *ShippingMethod `json:"shippingMethod"`
	ErrorList
}

type AttributeCreatePayload struct {
	Attribute *Attribute `json:"attribute"`
	ErrorList
}

type ProductTypeCreatePayload struct {
	ProductType *ProductType `json:"productType"`
	ErrorList
}

type ProductAttributeAssignPayload struct {
	ProductType *ProductType `json:"productType"`
	ErrorList
}

type CategoryCreatePayload struct {
	Category *Category `json:"category"`
	ErrorList
}

type CollectionCreatePayload struct {
	Collection *Collection `json:"collection"`
	ErrorList
}

type CollectionChannelListingUpdatePayload struct {
	Collection *Collection `json:"collection"`
	ErrorList
}

type PageTypeCreatePayload struct {
	PageType *PageType `json:"pageType"`
	ErrorList
}

type PageAttributeAssignPayload struct {
	PageType *PageType `json:"pageType"`
	ErrorList
}

type PageCreatePayload struct {
	Page *Page `json:"page"`
	ErrorList
}

type MenuCreatePayload struct {
	Menu *Menu `json:"menu"`
	ErrorList
}

type MenuItemCreatePayload struct {
	MenuItem *MenuItem `json:"menuItem"`
	ErrorList
}
