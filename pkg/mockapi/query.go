package mockapi

import (
	"regexp"
	"strings"
)

var operationTypeRe = regexp.MustCompile(`^[a-z]*`)

// ParsedQuery is the structured form of a GraphQL document as understood by
// the mock: operation type, endpoint signature, directive-scoped context
// values and a two-level field selection tree.
type ParsedQuery struct {
	opType    string
	endpoint  string
	context   map[string]any
	groups    map[string][]string
	flat      []string
	variables map[string]any
}

// ParseQuery scans a raw GraphQL document plus its variable bindings.
//
// An empty or all-blank document yields an empty result, not an error. A
// document whose operation block contains nothing after stripping the outer
// braces fails with ErrEmptyQuery.
func ParseQuery(query string, variables map[string]any) (*ParsedQuery, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	parsed := &ParsedQuery{
		context:   map[string]any{},
		groups:    map[string][]string{},
		variables: variables,
	}

	if query == "" {
		return parsed, nil
	}

	var lines []string
	for _, line := range strings.Split(query, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return parsed, nil
	}

	parsed.opType = operationTypeRe.FindString(lines[0])

	// Strip the outer braces of the operation block.
	lines = lines[1 : len(lines)-1]
	if len(lines) == 0 {
		return nil, ErrEmptyQuery
	}

	if strings.HasPrefix(lines[0], "@inContext") {
		parsed.parseContext(lines[0])
		// Consume the directive line and its closing brace.
		lines = lines[1 : len(lines)-1]
	}

	parsed.endpoint = strings.TrimSpace(strings.ReplaceAll(lines[0], "{", ""))
	lines = lines[1:]
	if len(lines) > 0 && lines[len(lines)-1] == "}" {
		lines = lines[:len(lines)-1]
	}

	// Build the field tree: a line ending in "{" opens a named group that
	// collects subsequent lines until a bare "}".
	current := ""
	for _, line := range lines {
		switch {
		case strings.HasSuffix(line, "{"):
			current = strings.TrimSpace(strings.TrimSuffix(line, "{"))
			parsed.groups[current] = []string{}
		case line == "}":
			current = ""
		case current != "":
			parsed.groups[current] = append(parsed.groups[current], line)
		default:
			parsed.flat = append(parsed.flat, line)
		}
	}

	return parsed, nil
}

// parseContext extracts the comma-separated key: value pairs of an
// @inContext directive. A value carrying the variable sigil is resolved
// against the supplied variables map; other values are taken literally.
func (q *ParsedQuery) parseContext(line string) {
	line = strings.TrimSpace(strings.ReplaceAll(line, "{", ""))
	line = strings.TrimPrefix(line, "@inContext(")
	line = strings.TrimSuffix(line, ")")

	for _, pair := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if name, isVar := strings.CutPrefix(value, "$"); isVar {
			q.context[key] = q.variables[name]
		} else {
			q.context[key] = value
		}
	}
}

// Type returns the operation type, e.g. "query" or "mutation".
func (q *ParsedQuery) Type() string { return q.opType }

// Endpoint returns the endpoint signature: root field plus parenthesized
// arguments, verbatim.
func (q *ParsedQuery) Endpoint() string { return q.endpoint }

// Context returns the directive context value for key, or nil.
func (q *ParsedQuery) Context(key string) any { return q.context[key] }

// ContextString returns the directive context value for key as a string,
// or "" when absent or not a string.
func (q *ParsedQuery) ContextString(key string) string {
	s, _ := q.context[key].(string)
	return s
}

// Fields returns the named field groups of the selection tree.
func (q *ParsedQuery) Fields() map[string][]string { return q.groups }

// FlatFields returns the top-level field names outside any group.
func (q *ParsedQuery) FlatFields() []string { return q.flat }

// HasFieldGroup reports whether the selection tree contains a named group.
func (q *ParsedQuery) HasFieldGroup(name string) bool {
	_, ok := q.groups[name]
	return ok
}

// Variables returns the variable bindings supplied with the document.
func (q *ParsedQuery) Variables() map[string]any { return q.variables }
