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
	"sort"
	"strings"
)

/*
Error is a single lexical/syntactic diagnostic (spec.md §4.F), carrying
enough to render libcypher-parser's classic

    <message> (line N, column N, offset N)
    <context>
    <spaces>^

Grounded on src/devt.de/eliasdb/eql/parser/parsererrors.go's Error struct
(Source/Type/Detail/Line/Pos) and on original_source/src/bin/cypher-lint.c's
rendering of context + caret.
*/
type Error struct {
	Position      Position
	Message       string
	Context       string // the source line containing the error, possibly truncated
	CaretOffset   int    // byte offset within Context where '^' should point
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d, column %d, offset %d)", e.Message, e.Position.Line, e.Position.Column, e.Position.Offset)
}

/*
Render renders the full three-line diagnostic: message+position, context,
and a caret line.
*/
func (e *Error) Render() string {
	var b strings.Builder
	b.WriteString(e.Error())
	if e.Context != "" {
		b.WriteByte('\n')
		b.WriteString(e.Context)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", e.CaretOffset))
		b.WriteByte('^')
	}
	return b.String()
}

/*
ErrorList holds every diagnostic recorded during a single parse, in
strictly increasing source-position order (spec.md §8 invariant 4); ties are
broken by insertion order. Diagnostics are not necessarily appended in
position order -- newParser records every lexer error up front, before the
parser has produced any of its own -- so List sorts by Position.Offset
before returning rather than relying on append order alone.
*/
type ErrorList struct {
	errors []*Error
}

func (l *ErrorList) add(pos Position, msg string, source string) *Error {
	e := &Error{Position: pos, Message: msg}
	e.Context, e.CaretOffset = contextSnippet(source, pos)
	l.errors = append(l.errors, e)
	return e
}

func (l *ErrorList) List() []*Error {
	sort.SliceStable(l.errors, func(i, j int) bool {
		return l.errors[i].Position.Offset < l.errors[j].Position.Offset
	})
	return l.errors
}

func (l *ErrorList) Len() int {
	return len(l.errors)
}

// maxContextWidth bounds the context snippet (spec.md §4.F "possibly
// truncated to a reasonable width"). It equals the CLI's default
// --output-width but is fixed: the snippet does not follow that flag.
const maxContextWidth = 120

func contextSnippet(source string, pos Position) (string, int) {
	// Find the bounds of the line containing pos.Offset.
	lineStart := pos.Offset
	for lineStart > 0 && source[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := pos.Offset
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	line := strings.TrimRight(source[lineStart:lineEnd], "\r")
	caret := pos.Offset - lineStart

	if len(line) > maxContextWidth {
		// keep the caret visible after truncation
		start := caret - maxContextWidth/2
		if start < 0 {
			start = 0
		}
		end := start + maxContextWidth
		if end > len(line) {
			end = len(line)
			start = end - maxContextWidth
			if start < 0 {
				start = 0
			}
		}
		caret -= start
		line = line[start:end]
	}

	return line, caret
}
