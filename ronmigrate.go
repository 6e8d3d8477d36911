// Package ronmigrate rewrites RON animation graph assets from the old
// node schema to the new one.
//
// This module is a port of the Python conversion script shipped
// alongside the animation graph assets, with additional support for
// custom patterns, dry runs, and per-file match reporting.
package ronmigrate

import (
	"regexp"

	"github.com/tidwall/hashmap"
)

// oldNodePattern matches one old-schema node fragment, capturing the
// node name, the type tag, and the parenthesized inner payload.
// The inner capture stops at the first ')', so it is only correct when
// the payload contains no nested parentheses.
const oldNodePattern = `\(\s*name:\s*"([^"]+)",\s*ty:\s*"([^"]+)",\s*inner:\s*(\([^)]+\))`

// newNodeReplacement rebuilds a matched fragment with the type tag as
// a mapping key wrapping the inner payload. It opens the node group
// without closing it; the closing parenthesis of the original fragment
// sits just outside the matched span and is preserved verbatim.
const newNodeReplacement = "(\n            name: \"$1\",\n            inner: {\n                \"$2\": $3\n            }"

// Rewriter provides the Transform() function, to rewrite old-schema
// node fragments into the new schema, and accumulates per-file
// fragment counts as files are processed.
type Rewriter struct {
	pattern     *regexp.Regexp
	replacement string
	matchCounts hashmap.Map[string, int]
}

// RewriterParams contains parameters for overriding the node fragment
// pattern and its replacement template.
//
// Zero values select the built-in old-schema pattern and the
// new-schema replacement.
type RewriterParams struct {
	Pattern     string
	Replacement string
}

// New creates a new *Rewriter from p. It returns an error only when a
// custom pattern fails to compile.
func New(p RewriterParams) (*Rewriter, error) {
	if p.Pattern == "" {
		p.Pattern = oldNodePattern
	}
	if p.Replacement == "" {
		p.Replacement = newNodeReplacement
	}
	pattern, err := regexp.Compile(p.Pattern)
	if err != nil {
		return nil, err
	}
	return &Rewriter{pattern: pattern, replacement: p.Replacement}, nil
}

// Transform replaces every leftmost non-overlapping node fragment in
// text with its new-schema equivalent. Text outside matched fragments
// is preserved verbatim; text with zero matches is returned unchanged.
// Fragments that almost match (unbalanced quotes, reordered keys) pass
// through untouched without diagnostics.
func (r *Rewriter) Transform(text string) string {
	return r.pattern.ReplaceAllString(text, r.replacement)
}

// MatchCount reports the number of node fragments Transform would
// rewrite in text.
func (r *Rewriter) MatchCount(text string) int {
	return len(r.pattern.FindAllStringIndex(text, -1))
}

// recordMatches adds matches to the cumulative count for name.
func (r *Rewriter) recordMatches(name string, matches int) {
	if count, ok := r.matchCounts.Get(name); ok {
		matches += count
	}
	r.matchCounts.Set(name, matches)
}

// Stats reports the number of node fragments rewritten per processed
// file, keyed by the file's base name.
func (r *Rewriter) Stats() map[string]int {
	stats := make(map[string]int, r.matchCounts.Len())
	r.matchCounts.Scan(func(name string, matches int) bool {
		stats[name] = matches
		return true
	})
	return stats
}

// TotalMatches reports the number of node fragments rewritten across
// all processed files.
func (r *Rewriter) TotalMatches() int {
	var total int
	r.matchCounts.Scan(func(name string, matches int) bool {
		total += matches
		return true
	})
	return total
}
