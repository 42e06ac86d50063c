// Package ingest parses the line-oriented edge-list literal used by
// planarmesh's test fixtures and examples, e.g. "0-1, 1-2, 2-3", into a
// graphx edge list.
//
// This is a test/example convenience only (spec.md's Non-goals explicitly
// exclude a user-facing input format for the core); engine and witness
// never import this package. It is grounded on lnz-BalancedGo's
// lib/parser.go, which uses the same alecthomas/participle
// struct-tag grammar to turn a literal "(a,b,c)" edge listing into a
// Graph — here scaled down to a flat "u-v, u-v, ..." grammar.
package ingest

import (
	"strconv"

	"github.com/alecthomas/participle"

	"github.com/katalvlaran/planarmesh/graphx"
)

// parsedEdge is one "u-v" token in the literal.
type parsedEdge struct {
	U int `@Int "-"`
	V int `@Int`
}

// parsedList is the full comma-separated literal.
type parsedList struct {
	Edges []parsedEdge `@@ ("," @@)*`
}

var parser = participle.MustBuild(&parsedList{}, participle.UseLookahead(1))

// ParseEdgeList parses a literal such as "0-1, 1-2, 2-0" into a graphx
// edge list, in the order the pairs appear in the source text.
func ParseEdgeList(s string) ([]graphx.EdgePair, error) {
	var parsed parsedList
	if err := parser.ParseString(s, &parsed); err != nil {
		return nil, err
	}

	out := make([]graphx.EdgePair, 0, len(parsed.Edges))
	for _, e := range parsed.Edges {
		out = append(out, graphx.EdgePair{U: graphx.VertexID(e.U), V: graphx.VertexID(e.V)})
	}

	return out, nil
}

// FormatEdgeList renders pairs back into ParseEdgeList's literal syntax,
// mainly for table-test failure messages.
func FormatEdgeList(pairs []graphx.EdgePair) string {
	out := make([]byte, 0, len(pairs)*8)
	for i, p := range pairs {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = strconv.AppendInt(out, int64(p.U), 10)
		out = append(out, '-')
		out = strconv.AppendInt(out, int64(p.V), 10)
	}

	return string(out)
}
