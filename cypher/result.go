/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cypher

import (
	"strings"

	"github.com/krotik/cypherparser/cypher/parser"
)

/*
Node is an exported alias for the AST node type, so callers never need to
import the parser subpackage directly.
*/
type Node = parser.ASTNode

/*
Error is a single lexical/syntactic diagnostic.
*/
type Error = parser.Error

/*
Result wraps a completed parse: the directive forest plus every diagnostic
recorded while producing it. Grounded on eql's queryResult wrapping an
internal result type to hide implementation details behind a narrow
accessor surface.
*/
type Result struct {
	inner *parser.Result
}

/*
Directives returns the top-level AST nodes, one per parsed directive, in
source order. Returns nil once r has been Free'd.
*/
func (r *Result) Directives() []*Node {
	if r.inner == nil {
		return nil
	}
	return r.inner.Directives()
}

/*
Errors returns every diagnostic recorded during the parse, in source-
position order. Returns nil once r has been Free'd.
*/
func (r *Result) Errors() []*Error {
	if r.inner == nil {
		return nil
	}
	return r.inner.Errors()
}

// Source returns the original input text, or "" once r has been Free'd.
func (r *Result) Source() string {
	if r.inner == nil {
		return ""
	}
	return r.inner.Source()
}

/*
Print renders the full result (every directive, then every diagnostic) as
text, per cfg's colorization and output-width settings. Returns "" once r
has been Free'd.
*/
func (r *Result) Print(cfg Config) string {
	if r.inner == nil {
		return ""
	}
	var b strings.Builder
	cfg.printer().PrintResult(&b, r.inner)
	return b.String()
}

/*
Free releases r's backing AST arena. Go's garbage collector makes this
unnecessary for correctness; it is kept, as a documented no-op that drops
the internal reference, only to preserve the API shape for callers ported
from a manual-memory-management mental model. Every other accessor treats a
Free'd Result as empty rather than dereferencing the dropped arena.
*/
func (r *Result) Free() {
	r.inner = nil
}
