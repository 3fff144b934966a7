package mockapi

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/storefrontkit/checkout/pkg/logging"
)

// Operation identifies a mock endpoint: operation type plus root field,
// e.g. "mutation cartLinesAdd". It is the routing key matched against the
// first line of an incoming document.
type Operation string

// Operations served by the mock.
const (
	OpCartGet                 Operation = "query cart"
	OpCartCreate              Operation = "mutation cartCreate"
	OpCartBuyerIdentityUpdate Operation = "mutation cartBuyerIdentityUpdate"
	OpCartLinesAdd            Operation = "mutation cartLinesAdd"
	OpCartLinesUpdate         Operation = "mutation cartLinesUpdate"
	OpCartLinesRemove         Operation = "mutation cartLinesRemove"
	OpCartNoteUpdate          Operation = "mutation cartNoteUpdate"
	OpCartAttributesUpdate    Operation = "mutation cartAttributesUpdate"
	OpCartDiscountCodesUpdate Operation = "mutation cartDiscountCodesUpdate"

	OpSellingPlanGroupGet                Operation = "query sellingPlanGroup"
	OpSellingPlanGroupList               Operation = "query sellingPlanGroupsList"
	OpSellingPlanGroupCreate             Operation = "mutation sellingPlanGroupCreate"
	OpSellingPlanGroupAddProducts        Operation = "mutation sellingPlanGroupAddProducts"
	OpSellingPlanGroupAddProductVariants Operation = "mutation sellingPlanGroupAddProductVariants"
	OpSellingPlanGroupDelete             Operation = "mutation sellingPlanGroupDelete"
)

// Handler executes one mock endpoint. A nil response with a nil error is a
// business-level rejection; errors are hard failures that propagate to the
// caller.
type Handler func(query string, variables map[string]any) (map[string]any, error)

// The routing match is looser than the parser's endpoint signature: only
// the leading "type fieldName" before the argument list or selection brace
// is considered.
var (
	withArgsRe    = regexp.MustCompile(`^([A-Za-z ]+)\(`)
	withoutArgsRe = regexp.MustCompile(`^([A-Za-z ]+)\s*\{`)
)

// Router maps operations to handlers and dispatches raw query documents.
type Router struct {
	handlers map[Operation]Handler
	logger   *slog.Logger
}

// RouterOption customizes a Router.
type RouterOption func(*routerConfig)

type routerConfig struct {
	logger      *slog.Logger
	cartFactory bool
}

// WithRouterLogger sets the dispatch logger. Defaults to a no-op logger.
func WithRouterLogger(logger *slog.Logger) RouterOption {
	return func(c *routerConfig) { c.logger = logger }
}

// WithCartFactory makes cartBuyerIdentityUpdate create an unknown cart on
// the fly instead of rejecting it.
func WithCartFactory() RouterOption {
	return func(c *routerConfig) { c.cartFactory = true }
}

// NewRouter creates a Router with every backend endpoint registered.
func NewRouter(backend *Backend, opts ...RouterOption) *Router {
	cfg := &routerConfig{logger: logging.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Router{
		handlers: make(map[Operation]Handler),
		logger:   cfg.logger,
	}
	registerCartEndpoints(r, backend, cfg.cartFactory)
	registerSellingPlanGroupEndpoints(r, backend)

	return r
}

// Register binds a handler to an operation, replacing any previous one.
func (r *Router) Register(op Operation, handler Handler) {
	r.handlers[op] = handler
}

// operation extracts the routing key from the document's leading
// "type fieldName(" or "type fieldName {" pattern.
func operation(query string) Operation {
	query = strings.TrimSpace(query)
	for _, re := range []*regexp.Regexp{withArgsRe, withoutArgsRe} {
		if m := re.FindStringSubmatch(query); m != nil {
			return Operation(strings.TrimSpace(m[1]))
		}
	}
	return ""
}

// Dispatch routes a raw document to its handler. An unregistered operation
// yields a nil response with a nil error, distinct from a registered
// handler rejecting the request.
func (r *Router) Dispatch(query string, variables map[string]any) (map[string]any, error) {
	op := operation(query)
	handler, ok := r.handlers[op]
	if !ok {
		r.logger.Debug("no mock endpoint", "operation", string(op))
		return nil, nil
	}

	r.logger.Debug("dispatching", "operation", string(op))

	response, err := handler(query, variables)
	if err != nil {
		r.logger.Error("mock endpoint failed", "operation", string(op), "error", err)
		return nil, err
	}
	return response, nil
}
