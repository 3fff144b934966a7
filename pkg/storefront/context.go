package storefront

// Context carries the shop coordinates and credentials shared by every
// service talking to one shop.
type Context struct {
	// ShopBaseURL is the shop domain, e.g. "whiskey-barrel-club.myshopify.com".
	ShopBaseURL string
	// APIVersion is the GraphQL API version, e.g. "2023-01".
	APIVersion string
	// StorefrontToken authenticates Storefront API calls (cart).
	StorefrontToken string
	// AdminToken authenticates admin API calls (selling plan groups).
	AdminToken string
}

// NewContext creates a Context for the given shop and API version.
func NewContext(shopBaseURL, apiVersion string) *Context {
	return &Context{ShopBaseURL: shopBaseURL, APIVersion: apiVersion}
}

// WithStorefrontToken sets the Storefront API access token.
func (c *Context) WithStorefrontToken(token string) *Context {
	c.StorefrontToken = token
	return c
}

// WithAdminToken sets the admin API access token.
func (c *Context) WithAdminToken(token string) *Context {
	c.AdminToken = token
	return c
}

// APIPath returns the GraphQL endpoint URL. The Storefront and admin APIs
// share the version segment but differ in the /admin path element.
func (c *Context) APIPath(storefrontAPI bool) string {
	path := "https://" + c.ShopBaseURL
	if !storefrontAPI {
		path += "/admin"
	}
	return path + "/api/" + c.APIVersion + "/graphql.json"
}
