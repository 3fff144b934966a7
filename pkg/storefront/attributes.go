package storefront

import (
	"sort"

	"github.com/storefrontkit/checkout/pkg/types"
)

// FormatAttributes converts an attribute map into the ordered key/value list
// the API expects. Keys are sorted so the output is deterministic.
func FormatAttributes(attributes map[string]string) []types.Attribute {
	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]types.Attribute, 0, len(keys))
	for _, key := range keys {
		out = append(out, types.Attribute{Key: key, Value: attributes[key]})
	}
	return out
}
