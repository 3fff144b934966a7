package mockapi

import "slices"

// DiscountCodes is the whitelist of discount codes the fake backend treats
// as applicable.
type DiscountCodes struct {
	codes []string
}

// NewDiscountCodes creates the whitelist with its built-in codes.
func NewDiscountCodes() *DiscountCodes {
	return &DiscountCodes{codes: []string{"FOC", "TENPERCENT"}}
}

// All returns every applicable code.
func (d *DiscountCodes) All() []string {
	return slices.Clone(d.codes)
}

// Has reports whether code is applicable.
func (d *DiscountCodes) Has(code string) bool {
	return slices.Contains(d.codes, code)
}
