package mockapi

import (
	"log/slog"
	"time"

	"github.com/storefrontkit/checkout/internal/id"
	"github.com/storefrontkit/checkout/internal/storage"
	"github.com/storefrontkit/checkout/pkg/logging"
)

// DefaultShopBaseURL is the shop domain used when no override is given.
const DefaultShopBaseURL = "mock.myshopify.com"

// Backend aggregates the mock domain engines over a shared entity store,
// id generator and connection store. One Backend models one shop.
type Backend struct {
	store       storage.Store
	ids         *id.Generator
	markets     *Markets
	discounts   *DiscountCodes
	products    *Products
	connections *Connections
	carts       *Carts
	plans       *SellingPlans
	groups      *SellingPlanGroups

	shopBaseURL string
	now         func() time.Time
	logger      *slog.Logger
}

// BackendOption customizes a Backend.
type BackendOption func(*Backend)

// WithShopBaseURL sets the shop domain used for checkout URLs.
func WithShopBaseURL(url string) BackendOption {
	return func(b *Backend) { b.shopBaseURL = url }
}

// WithClock sets the time source used for entity timestamps.
func WithClock(now func() time.Time) BackendOption {
	return func(b *Backend) { b.now = now }
}

// WithBackendLogger sets the logger. Defaults to a no-op logger.
func WithBackendLogger(logger *slog.Logger) BackendOption {
	return func(b *Backend) { b.logger = logger }
}

// NewBackend creates a Backend with empty state.
func NewBackend(opts ...BackendOption) *Backend {
	b := &Backend{
		shopBaseURL: DefaultShopBaseURL,
		now:         time.Now,
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.store = storage.NewMemoryStore()
	b.ids = id.NewGenerator()
	b.markets = NewMarkets()
	b.discounts = NewDiscountCodes()
	b.products = NewProducts(b.store, b.ids)
	b.connections = NewConnections(b.store)
	b.carts = NewCarts(b.store, b.ids, b.markets, b.products, b.discounts, b.shopBaseURL, b.now)
	b.plans = NewSellingPlans(b.store, b.ids, b.now)
	b.groups = NewSellingPlanGroups(b.store, b.ids, b.connections, b.plans, b.products, b.now)

	return b
}

// Store returns the shared entity store.
func (b *Backend) Store() storage.Store { return b.store }

// IDs returns the shared id generator.
func (b *Backend) IDs() *id.Generator { return b.ids }

// Markets returns the market catalog.
func (b *Backend) Markets() *Markets { return b.markets }

// DiscountCodes returns the discount code whitelist.
func (b *Backend) DiscountCodes() *DiscountCodes { return b.discounts }

// Products returns the fake product catalog.
func (b *Backend) Products() *Products { return b.products }

// Connections returns the connection store.
func (b *Backend) Connections() *Connections { return b.connections }

// Carts returns the cart domain engine.
func (b *Backend) Carts() *Carts { return b.carts }

// SellingPlans returns the selling plan store.
func (b *Backend) SellingPlans() *SellingPlans { return b.plans }

// SellingPlanGroups returns the selling plan group domain engine.
func (b *Backend) SellingPlanGroups() *SellingPlanGroups { return b.groups }

// Reset wipes all entities, connections and the id collision set. Callers
// own test isolation between independent scenarios.
func (b *Backend) Reset() {
	b.store.Clear()
	b.ids.Reset()
	b.logger.Debug("backend reset")
}
