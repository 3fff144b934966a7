// Package mockapi is a self-contained fake of the Shopify Storefront and
// Admin GraphQL endpoints used by this library. It parses the literal query
// documents the client emits, routes them to per-operation handlers, and
// keeps all domain state (carts, products, selling plan groups) in memory,
// so client code can be exercised end-to-end without a network dependency.
//
// The query parser is a line-oriented structural scanner, not a GraphQL
// grammar: it understands exactly the document shapes this library
// generates and must not be pointed at arbitrary third-party queries.
//
// The whole package is single-threaded by design. Stores carry no locks
// because the target of the simulation is a stateless HTTP API, and
// deterministic test execution is the goal. Callers own test isolation via
// Backend.Reset.
package mockapi
