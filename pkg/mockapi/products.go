package mockapi

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefrontkit/checkout/internal/id"
	"github.com/storefrontkit/checkout/internal/storage"
	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

var productNamePool = [3][]string{
	{"dry", "cold", "icy", "hot", "strong", "light", "heavy", "sweet", "bitter", "fresh"},
	{"red", "yellow", "white", "pale", "pink", "golden", "black", "brown", ""},
	{"whiskey", "gin", "beer", "cognac", "rum", "ale", "brandy", "vodka", "tequila", "aquavit"},
}

// Products is the fake product catalog. It fabricates a plausible-looking
// product/variant on first reference so that any variant id "just works",
// and returns the same fabricated data on every subsequent lookup.
type Products struct {
	store storage.Store
	ids   *id.Generator
}

// NewProducts creates a catalog backed by store and ids.
func NewProducts(store storage.Store, ids *id.Generator) *Products {
	return &Products{store: store, ids: ids}
}

func randomProductName() string {
	words := make([]string, 0, 3)
	for _, pool := range productNamePool {
		if w := pool[rand.Intn(len(pool))]; w != "" {
			words = append(words, w)
		}
	}
	name := strings.Join(words, " ")
	return strings.ToUpper(name[:1]) + name[1:]
}

func randomImageSrc() string {
	return fmt.Sprintf("https://cdn.shopify.com/s/files/%d/%04d/%04d/%04d/products/%010x.png?v=%d",
		1+rand.Intn(9), 1111+rand.Intn(8889), 1111+rand.Intn(8889), 1111+rand.Intn(8889),
		rand.Int63n(1<<40), time.Now().Unix())
}

func (p *Products) createVariant(productID, variantID string) (*types.Variant, error) {
	if variantID == "" {
		var err error
		if variantID, err = p.ids.Random(gid.ProductVariantPrefix); err != nil {
			return nil, err
		}
	}
	imageID, err := p.ids.Random(gid.ProductImagePrefix)
	if err != nil {
		return nil, err
	}
	return &types.Variant{
		ID:        variantID,
		Title:     randomProductName(),
		ProductID: productID,
		Price:     decimal.New(int64(1000+rand.Intn(19001)), -2),
		Currency:  "EUR",
		Images: []types.Image{
			{ID: imageID, Src: randomImageSrc(), AltText: nil},
		},
	}, nil
}

// ByVariant returns the fabricated variant for variantID, synthesizing and
// persisting it first when absent and createIfMissing is set. Calling twice
// with the same id returns the same data; line-item price stability within
// a scenario depends on this.
func (p *Products) ByVariant(variantID string, createIfMissing bool) (*types.Variant, error) {
	if !p.store.Has(gid.ProductVariantPrefix, variantID) && createIfMissing {
		productID, err := p.ids.Random(gid.ProductPrefix)
		if err != nil {
			return nil, err
		}
		variant, err := p.createVariant(productID, variantID)
		if err != nil {
			return nil, err
		}
		p.store.Set(gid.ProductVariantPrefix, variantID, variant)
	}
	variant, _ := p.store.Get(gid.ProductVariantPrefix, variantID).(*types.Variant)
	return variant, nil
}

// Product returns the fabricated product stored under entityID, creating
// one with a single variant when absent and createIfMissing is set.
func (p *Products) Product(entityID string, createIfMissing bool) (*types.Product, error) {
	if !p.store.Has(gid.ProductPrefix, entityID) && createIfMissing {
		productID, err := p.ids.Random(gid.ProductPrefix)
		if err != nil {
			return nil, err
		}
		variant, err := p.createVariant(productID, "")
		if err != nil {
			return nil, err
		}
		p.store.Set(gid.ProductPrefix, entityID, &types.Product{
			ID:       productID,
			Title:    randomProductName(),
			Variants: []*types.Variant{variant},
		})
	}
	product, _ := p.store.Get(gid.ProductPrefix, entityID).(*types.Product)
	return product, nil
}

// Variant returns the variant stored under variantID. When absent and
// createIfMissing is set, a variant is fabricated but not persisted; only
// ByVariant pins fabricated data to the id.
func (p *Products) Variant(variantID string, createIfMissing bool) (*types.Variant, error) {
	if !p.store.Has(gid.ProductVariantPrefix, variantID) && createIfMissing {
		productID, err := p.ids.Random(gid.ProductPrefix)
		if err != nil {
			return nil, err
		}
		return p.createVariant(productID, variantID)
	}
	variant, _ := p.store.Get(gid.ProductVariantPrefix, variantID).(*types.Variant)
	return variant, nil
}
