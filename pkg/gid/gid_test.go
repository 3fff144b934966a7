package gid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw := []string{
		CartPrefix + "0123456789abcdef",
		ProductVariantPrefix + "40669967331517",
		SellingPlanGroupPrefix + "deadbeef",
	}
	for _, id := range raw {
		opaque := Encode(id)
		assert.NotEqual(t, id, opaque)
		assert.Equal(t, id, Decode(opaque))
	}
}

func TestEncodeLeavesNonPrefixedAlone(t *testing.T) {
	assert.Equal(t, "plain", Encode("plain"))
	assert.Equal(t, "", Encode(""))
}

func TestDecodePassThrough(t *testing.T) {
	// Raw ids and arbitrary strings are returned unchanged.
	assert.Equal(t, CartPrefix+"abc", Decode(CartPrefix+"abc"))
	assert.Equal(t, "not-base64!", Decode("not-base64!"))
	assert.Equal(t, "", Decode(""))
}

func TestDecodeIsIdempotent(t *testing.T) {
	opaque := Encode(CartPrefix + "abc")
	assert.Equal(t, Decode(opaque), Decode(Decode(opaque)))
}

func TestIsEncoded(t *testing.T) {
	assert.True(t, IsEncoded(Encode(CartPrefix+"abc")))
	assert.False(t, IsEncoded(CartPrefix+"abc"))
	assert.False(t, IsEncoded("not-base64!"))
	assert.False(t, IsEncoded(""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, ProductVariantPrefix+"123", NormalizeVariant("123"))
	assert.Equal(t, ProductVariantPrefix+"123", NormalizeVariant(ProductVariantPrefix+"123"))
	assert.Equal(t, ProductPrefix+"9", Normalize("9", ProductPrefix))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "tok", Strip(CartPrefix+"tok", CartPrefix))
	assert.Equal(t, "tok", Strip("tok", CartPrefix))
}
