package saleor

// Mutation documents sent by the seeder, one per operation.
var (
	TokenCreate = Operation{
		Name:     "TokenCreate",
		Field:    "tokenCreate",
		Document: `
	mutation TokenCreate($email: String!, $password: String!) {
		tokenCreate(email: $email, password: $password) {
			token
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	TaxClassCreate = Operation{
		Name:     "TaxClassCreate",
		Field:    "taxClassCreate",
		Document: `
	mutation TaxClassCreate($input: TaxClassCreateInput!) {
		taxClassCreate(input: $input) {
			taxClass {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	WarehouseCreate = Operation{
		Name:     "WarehouseCreate",
		Field:    "createWarehouse",
		Document: `
	mutation WarehouseCreate($input: WarehouseCreateInput!) {
		createWarehouse(input: $input) {
			warehouse {
				id
				name
				slug
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	ChannelCreate = Operation{
		Name:     "ChannelCreate",
		Field:    "channelCreate",
		Document: `
	mutation ChannelCreate($input: ChannelCreateInput!) {
		channelCreate(input: $input) {
			channel {
				id
				name
				slug
				currencyCode
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	ShippingZoneCreate = Operation{
		Name:     "ShippingZoneCreate",
		Field:    "shippingZoneCreate",
		Document: `
	mutation ShippingZoneCreate($input: ShippingZoneCreateInput!) {
		shippingZoneCreate(input: $input) {
			shippingZone {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	ShippingPriceCreate = Operation{
		Name:     "ShippingPriceCreate",
		Field:    "shippingPriceCreate",
		Document: `
	mutation ShippingPriceCreate($input: ShippingPriceInput!) {
		shippingPriceCreate(input: $input) {
			shippingMethod {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	ShippingMethodChannelListingUpdate = Operation{
		Name:     "ShippingMethodChannelListingUpdate",
		Field:    "shippingMethodChannelListingUpdate",
		Document: `
	mutation ShippingMethodChannelListingUpdate($id: ID!, $input: ShippingMethodChannelListingInput!) {
		shippingMethodChannelListingUpdate(id: $id, input: $input) {
			shippingMethod {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	AttributeCreate = Operation{
		Name:     "AttributeCreate",
		Field:    "attributeCreate",
		Document: `
	mutation AttributeCreate($input: AttributeCreateInput!) {
		attributeCreate(input: $input) {
			attribute {
				id
				name
				slug
				inputType
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	ProductTypeCreate = Operation{
		Name:     "ProductTypeCreate",
		Field:    "productTypeCreate",
		Document: `
	mutation ProductTypeCreate($input: ProductTypeInput!) {
		productTypeCreate(input: $input) {
			productType {
				id
				name
				slug
				hasVariants
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	ProductAttributeAssign = Operation{
		Name:     "ProductAttributeAssign",
		Field:    "productAttributeAssign",
		Document: `
	mutation ProductAttributeAssign($productTypeId: ID!, $operations: [ProductAttributeAssignInput!]!) {
		productAttributeAssign(productTypeId: $productTypeId, operations: $operations) {
			productType {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	CategoryCreate = Operation{
		Name:     "CategoryCreate",
		Field:    "categoryCreate",
		Document: `
	mutation CategoryCreate($input: CategoryInput!, $parent: ID) {
		categoryCreate(input: $input, parent: $parent) {
			category {
				id
				name
				slug
				level
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	CollectionCreate = Operation{
		Name:     "CollectionCreate",
		Field:    "collectionCreate",
		Document: `
	mutation CollectionCreate($input: CollectionCreateInput!) {
		collectionCreate(input: $input) {
			collection {
				id
				name
				slug
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	CollectionChannelListingUpdate = Operation{
		Name:     "CollectionChannelListingUpdate",
		Field:    "collectionChannelListingUpdate",
		Document: `
	mutation CollectionChannelListingUpdate($id: ID!, $input: CollectionChannelListingUpdateInput!) {
		collectionChannelListingUpdate(id: $id, input: $input) {
			collection {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	PageTypeCreate = Operation{
		Name:     "PageTypeCreate",
		Field:    "pageTypeCreate",
		Document: `
	mutation PageTypeCreate($input: PageTypeCreateInput!) {
		pageTypeCreate(input: $input) {
			pageType {
				id
				name
				slug
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	PageAttributeAssign = Operation{
		Name:     "PageAttributeAssign",
		Field:    "pageAttributeAssign",
		Document: `
	mutation PageAttributeAssign($pageTypeId: ID!, $attributeIds: [ID!]!) {
		pageAttributeAssign(pageTypeId: $pageTypeId, attributeIds: $attributeIds) {
			pageType {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	PageCreate = Operation{
		Name:     "PageCreate",
		Field:    "pageCreate",
		Document: `
	mutation PageCreate($input: PageCreateInput!) {
		pageCreate(input: $input) {
			page {
				id
				title
				slug
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	MenuCreate = Operation{
		Name:     "MenuCreate",
		Field:    "menuCreate",
		Document: `
	mutation MenuCreate($input: MenuCreateInput!) {
		menuCreate(input: $input) {
			menu {
				id
				name
				slug
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}

	MenuItemCreate = Operation{
		Name:     "MenuItemCreate",
		Field:    "menuItemCreate",
		Document: `
	mutation MenuItemCreate($input: MenuItemCreateInput!) {
		menuItemCreate(input: $input) {
			menuItem {
				id
				name
			}
			errors {
				field
				message
				code
			}
		}
	}`,
	}
)
