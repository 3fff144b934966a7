// Package id generates random entity identifiers under a type prefix.
package id

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// maxAttempts bounds the collision retry loop.
const maxAttempts = 20

// Generation failures. Both indicate an environment or configuration
// problem rather than a recoverable data condition.
var (
	ErrEmptyPrefix = errors.New("id: prefix is empty")
	ErrExhausted   = errors.New("id: reached max attempts")
)

// Generator produces collision-checked random identifiers. Generated ids
// are remembered for the lifetime of the Generator so the same token is
// never handed out twice. Not safe for concurrent use.
type Generator struct {
	seen map[string]struct{}
}

// NewGenerator returns an empty Generator.
func NewGenerator() *Generator {
	return &Generator{seen: make(map[string]struct{})}
}

// Random returns a new identifier under prefix, e.g.
// Random("gid://shopify/Cart/") -> "gid://shopify/Cart/<32 hex chars>".
// A missing trailing separator is added to the prefix.
func (g *Generator) Random(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrEmptyPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	for attempts := 0; attempts < maxAttempts; attempts++ {
		token := strings.ReplaceAll(uuid.NewString(), "-", "")
		if _, taken := g.seen[token]; taken {
			continue
		}
		g.seen[token] = struct{}{}
		return prefix + token, nil
	}
	return "", ErrExhausted
}

// Reset forgets all previously generated identifiers.
func (g *Generator) Reset() {
	g.seen = make(map[string]struct{})
}
