// Package gid provides Shopify global identifier helpers.
//
// Raw identifiers carry a gid:// prefix naming the entity type, e.g.
// "gid://shopify/Cart/<token>". The Storefront API returns them as opaque
// base64 wrappers; Encode and Decode convert between the two forms and are
// exact inverses for any raw prefixed identifier.
package gid

import (
	"encoding/base64"
	"strings"
)

// Entity id prefixes used across the storefront API.
const (
	CartPrefix             = "gid://shopify/Cart/"
	CartLinePrefix         = "gid://shopify/CartLine/"
	ProductPrefix          = "gid://shopify/Product/"
	ProductVariantPrefix   = "gid://shopify/ProductVariant/"
	ProductImagePrefix     = "gid://shopify/ProductImage/"
	SellingPlanPrefix      = "gid://shopify/SellingPlan/"
	SellingPlanGroupPrefix = "gid://shopify/SellingPlanGroup/"
)

const rawMarker = "gid:"

// Encode wraps a raw prefixed identifier into its opaque form.
// Strings that do not carry the gid: marker are returned unchanged.
func Encode(id string) string {
	if id != "" && strings.HasPrefix(id, rawMarker) {
		return base64.StdEncoding.EncodeToString([]byte(id))
	}
	return id
}

// Decode unwraps an opaque identifier back to its raw prefixed form.
// Raw identifiers and strings that are not opaque wrappers pass through
// unchanged, so Decode(Encode(x)) == x and Decode is idempotent.
func Decode(id string) string {
	if id == "" || strings.HasPrefix(id, rawMarker) {
		return id
	}
	raw, err := base64.StdEncoding.DecodeString(id)
	if err != nil || !strings.HasPrefix(string(raw), rawMarker) {
		return id
	}
	return string(raw)
}

// IsEncoded reports whether id is an opaque wrapper of a raw prefixed
// identifier.
func IsEncoded(id string) bool {
	if id == "" || strings.HasPrefix(id, rawMarker) {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(id)
	return err == nil && strings.HasPrefix(string(raw), rawMarker)
}

// Normalize prepends prefix to a bare identifier. Identifiers that already
// carry a gid: marker are returned unchanged.
func Normalize(id, prefix string) string {
	if strings.HasPrefix(id, rawMarker) {
		return id
	}
	return prefix + id
}

// NormalizeVariant prepends the product variant prefix to a bare identifier.
func NormalizeVariant(id string) string {
	return Normalize(id, ProductVariantPrefix)
}

// Strip removes prefix from a raw identifier, returning the bare token.
func Strip(id, prefix string) string {
	return strings.TrimPrefix(id, prefix)
}
