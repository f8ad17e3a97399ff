package parser

import "github.com/Sang-it/wave/internal/lexer"

// parseCommaList parses a comma-separated list of elements up to (but not
// consuming) closing, honoring a trailing comma before it (spec §4.3
// "Argument & parameter lists": "trailing comma permitted before closing
// bracket"). Grounded on original_source's wave_parser::list generic list
// helper rather than duplicating the comma/trailing-comma loop at each call
// site (array elements, call arguments, parameters).
func parseCommaList[T any](p *Parser, closing lexer.Kind, parseElement func() T) []T {
	var items []T
	for !p.check(closing) && !p.check(lexer.EOF) {
		items = append(items, parseElement())
		if !p.match(lexer.Comma) {
			break
		}
	}
	return items
}
