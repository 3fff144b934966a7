package storefront

// GraphQL documents emitted by the services. Their line shape matters: the
// mock engine's scanner reads the operation signature from the first line
// and the @inContext directive from its own line, so these stay
// line-oriented rather than minified.

const cartCreateDocument = `mutation cartCreate($input: CartInput) {
    cartCreate(input: $input) {
        cart {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const cartBuyerIdentityUpdateDocument = `mutation cartBuyerIdentityUpdate($cartId: ID!, $buyerIdentity: CartBuyerIdentityInput!) {
    cartBuyerIdentityUpdate(cartId: $cartId, buyerIdentity: $buyerIdentity) {
        cart {
            id
            buyerIdentity {
                countryCode
            }
        }
        userErrors {
            field
            message
        }
    }
}`

const cartLinesAddDocument = `mutation cartLinesAdd($lines: [CartLineInput!]!, $cartId: ID!) {
    cartLinesAdd(lines: $lines, cartId: $cartId) {
        cart {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const cartLinesUpdateDocument = `mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
    cartLinesUpdate(cartId: $cartId, lines: $lines) {
        cart {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const cartLinesRemoveDocument = `mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
    cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
        cart {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const cartNoteUpdateDocument = `mutation cartNoteUpdate($cartId: ID!, $note: String) {
    cartNoteUpdate(cartId: $cartId, note: $note) {
        cart {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const cartAttributesUpdateDocument = `mutation cartAttributesUpdate($attributes: [AttributeInput!]!, $cartId: ID!) {
    cartAttributesUpdate(attributes: $attributes, cartId: $cartId) {
        cart {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const cartDiscountCodesUpdateDocument = `mutation cartDiscountCodesUpdate($cartId: ID!, $discountCodes: [String!]!) {
    cartDiscountCodesUpdate(discountCodes: $discountCodes, cartId: $cartId) {
        cart {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

// cartQueryDocument builds the cart fetch document, optionally selecting
// the selling plan allocation on each line.
func cartQueryDocument(includeSellingPlanAllocation bool) string {
	sellingPlanAllocation := ""
	if includeSellingPlanAllocation {
		sellingPlanAllocation = `
                    sellingPlanAllocation {
                        sellingPlan {
                            id
                        }
                    }`
	}

	return `query cart($cartId: ID!, $countryCode: CountryCode!)
@inContext(country: $countryCode) {
    cart(id: $cartId) {
        id
        createdAt
        updatedAt
        checkoutUrl
        buyerIdentity {
            countryCode
        }
        attributes {
            key
            value
        }
        discountCodes {
            code
            applicable
        }
        note
        lines(first: 25, reverse: true) {
            edges {
                node {
                    id
                    attributes {
                        key
                        value
                    }
                    quantity` + sellingPlanAllocation + `
                    discountAllocations {
                        discountedAmount {
                            amount
                            currencyCode
                        }
                    }
                    estimatedCost {
                        subtotalAmount {
                            amount
                        }
                        totalAmount {
                            amount
                        }
                    }
                    merchandise {
                        ... on ProductVariant {
                            id
                            title
                            priceV2 {
                                amount
                                currencyCode
                            }
                            product {
                                id
                                availableForSale
                                variants(first: 6) {
                                    edges {
                                        node {
                                            id
                                        }
                                    }
                                }
                                title
                                images(first: 1) {
                                    edges {
                                        node {
                                            id
                                            src
                                            altText
                                        }
                                    }
                                }
                            }
                        }
                    }
                }
            }
        }
        estimatedCost {
            totalAmount {
                amount
                currencyCode
            }
            subtotalAmount {
                amount
                currencyCode
            }
            totalTaxAmount {
                amount
                currencyCode
            }
            totalDutyAmount {
                amount
                currencyCode
            }
        }
    }
}`
}

const sellingPlanGroupCreateDocument = `mutation sellingPlanGroupCreate($input: SellingPlanGroupInput!) {
    sellingPlanGroupCreate(input: $input) {
        sellingPlanGroup {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const sellingPlanGroupAddProductsDocument = `mutation sellingPlanGroupAddProducts($id: ID!, $productIds: [ID!]!) {
    sellingPlanGroupAddProducts(id: $id, productIds: $productIds) {
        sellingPlanGroup {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const sellingPlanGroupAddProductVariantsDocument = `mutation sellingPlanGroupAddProductVariants($id: ID!, $productVariantIds: [ID!]!) {
    sellingPlanGroupAddProductVariants(id: $id, productVariantIds: $productVariantIds) {
        sellingPlanGroup {
            id
        }
        userErrors {
            field
            message
        }
    }
}`

const sellingPlanGroupDeleteDocument = `mutation sellingPlanGroupDelete($id: ID!) {
    sellingPlanGroupDelete(id: $id) {
        deletedSellingPlanGroupId
        userErrors {
            field
            message
        }
    }
}`

const sellingPlanGroupGetDocument = `query sellingPlanGroup($sellingPlanGroupId: ID!) {
    sellingPlanGroup(id: $sellingPlanGroupId) {
        id
        createdAt
        merchantCode
        name
        description
        options
        position
        productCount
        summary
        products(first: 10) {
            edges {
                node {
                    id
                    title
                }
            }
        }
        productVariants(first: 10) {
            edges {
                node {
                    id
                    title
                }
            }
        }
        sellingPlans(first: 10) {
            edges {
                node {
                    id
                    category
                    createdAt
                    name
                    options
                }
            }
        }
    }
}`

const sellingPlanGroupListDocument = `query sellingPlanGroupsList {
    sellingPlanGroups(first: 10) {
        edges {
            cursor
            node {
                id
                createdAt
                merchantCode
                name
                description
                options
                position
                productCount
                summary
            }
        }
    }
}`
