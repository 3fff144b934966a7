// Package cli implements the checkout command line interface: cart and
// selling plan group commands over the storefront services, runnable
// against a real shop or the in-process mock backend.
package cli
