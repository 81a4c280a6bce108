/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

/*
Printer renders a Result's AST as indented structural blocks, one line per
node:

    @<ordinal>  <range>   <kind-name>   <detail-string>

indented two spaces per tree depth, per spec.md §4.G. Output width soft-
bounds only the detail string, against whatever width remains once the
structural prefix (ordinal, range, indent, kind name) has taken its share
of the line -- the prefix itself is never truncated. Grounded on
original_source/src/bin/cypher-lint.c's --ast dump and on
src/devt.de/eliasdb/graph/data's tabular formatting conventions for the
column layout.
*/
type Printer struct {
	Scheme      Scheme
	OutputWidth int // 0 disables detail-string truncation
}

// NewPrinter builds a Printer with the built-in defaults: no colorization
// and spec.md's default output width.
func NewPrinter() *Printer {
	return &Printer{Scheme: NoColorScheme, OutputWidth: defaultOutputWidth}
}

/*
PrintNode renders n and every descendant, depth-first, into b.
*/
func (p *Printer) PrintNode(b *strings.Builder, n *ASTNode) {
	p.printNode(b, n, 0)
}

/*
PrintResult renders every directive in r in sequence, then every recorded
diagnostic.
*/
func (p *Printer) PrintResult(b *strings.Builder, r *Result) {
	for _, d := range r.Directives() {
		p.PrintNode(b, d)
	}
	for _, e := range r.Errors() {
		p.PrintError(b, e)
	}
}

func (p *Printer) printNode(b *strings.Builder, n *ASTNode, depth int) {
	if n == nil {
		return
	}
	plainIndent := strings.Repeat("  ", depth)
	plainOrdinal := fmt.Sprintf("@%d", n.Ordinal)
	plainRange := formatRange(n.Range)
	plainKind := n.Kind.String()

	prefixWidth := runewidth.StringWidth(fmt.Sprintf("%s%s  %s   %s   ", plainIndent, plainOrdinal, plainRange, plainKind))
	detail := truncateToWidth(detailString(n), remainingWidth(p.OutputWidth, prefixWidth))

	indent := p.scheme().wrap(ElementASTIndent, plainIndent)
	ordinal := p.scheme().wrap(ElementASTOrdinal, plainOrdinal)
	rng := p.scheme().wrap(ElementASTRange, plainRange)
	kind := p.scheme().wrap(ElementASTType, plainKind)
	desc := p.scheme().wrap(ElementASTDesc, detail)

	fmt.Fprintf(b, "%s%s  %s   %s   %s\n", indent, ordinal, rng, kind, desc)

	for _, c := range n.Children {
		p.printNode(b, c, depth+1)
	}
}

/*
PrintError renders a single diagnostic using the error_message/error_context
scheme elements.
*/
func (p *Printer) PrintError(b *strings.Builder, e *Error) {
	b.WriteString(p.scheme().wrap(ElementErrorMessage, e.Error()))
	if e.Context != "" {
		b.WriteByte('\n')
		b.WriteString(p.scheme().wrap(ElementErrorContext, e.Context))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", e.CaretOffset))
		b.WriteByte('^')
	}
	b.WriteByte('\n')
}

func (p *Printer) scheme() Scheme {
	if p == nil {
		return NoColorScheme
	}
	return p.Scheme
}

func formatRange(r Range) string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
}
