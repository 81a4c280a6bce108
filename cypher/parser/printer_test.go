/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterRendersOrdinalRangeKindDetail(t *testing.T) {
	res := Parse("RETURN 1")
	require.Empty(t, res.Errors())

	var b strings.Builder
	p := NewPrinter()
	p.PrintResult(&b, res)
	out := b.String()

	assert.Contains(t, out, "@0")
	assert.Contains(t, out, "QUERY")
	assert.Contains(t, out, "RETURN")
	assert.Contains(t, out, "INTEGER")
}

func TestPrinterIndentsChildrenByDepth(t *testing.T) {
	res := Parse("RETURN 1")
	var b strings.Builder
	p := NewPrinter()
	p.PrintResult(&b, res)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 4) // QUERY, RETURN, PROJECTION, INTEGER

	// QUERY has no indent; each deeper level adds two spaces.
	assert.False(t, strings.HasPrefix(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.True(t, strings.HasPrefix(lines[2], "    "))
	assert.True(t, strings.HasPrefix(lines[3], "      "))
}

func TestPrinterNoColorSchemeEmitsPlainText(t *testing.T) {
	res := Parse("RETURN 1")
	var b strings.Builder
	p := NewPrinter()
	p.Scheme = NoColorScheme
	p.PrintResult(&b, res)
	assert.NotContains(t, b.String(), "\x1b[")
}

func TestPrinterANSISchemeEmitsEscapeCodes(t *testing.T) {
	res := Parse("RETURN 1")
	var b strings.Builder
	p := NewPrinter()
	p.Scheme = ANSIScheme
	p.PrintResult(&b, res)
	assert.Contains(t, b.String(), "\x1b[")
}

func TestPrinterTruncatesLongDetailStrings(t *testing.T) {
	res := Parse(`RETURN "` + strings.Repeat("x", 300) + `"`)
	var b strings.Builder
	p := NewPrinter()
	p.OutputWidth = 40
	p.PrintResult(&b, res)
	lines := strings.Split(b.String(), "\n")
	for _, l := range lines {
		if strings.Contains(l, "STRING") {
			assert.LessOrEqual(t, runewidth.StringWidth(l), p.OutputWidth)
		}
	}
}

func TestPrinterTruncationAccountsForStructuralPrefixWidth(t *testing.T) {
	// A deeply nested node has a long structural prefix (indent, ordinal,
	// range, kind name); the detail string must shrink to compensate so the
	// whole line still fits OutputWidth, not just the detail on its own.
	res := Parse(`RETURN [[[[["` + strings.Repeat("x", 100) + `"]]]]]`)
	var b strings.Builder
	p := NewPrinter()
	p.OutputWidth = 50
	p.PrintResult(&b, res)
	for _, l := range strings.Split(b.String(), "\n") {
		if l == "" {
			continue
		}
		assert.LessOrEqual(t, runewidth.StringWidth(l), p.OutputWidth,
			"line exceeds OutputWidth: %q", l)
	}
}
