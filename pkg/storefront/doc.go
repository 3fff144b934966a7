// Package storefront is the client-facing layer of the checkout toolkit:
// shop context and configuration, the GraphQL transport with its in-process
// mock path, the cart and selling plan group services, and the presentation
// helpers used by the CLI.
//
// Services build GraphQL documents line-by-line in the exact shape the mock
// engine's scanner understands, so the same service code runs unchanged
// against the real Storefront API and against a mockapi.Router.
package storefront
