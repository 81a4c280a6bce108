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

	"github.com/fatih/color"
)

// Scheme element names, spec.md §6's required colorization elements.
const (
	ElementErrorMessage = "error_message"
	ElementErrorContext = "error_context"
	ElementASTOrdinal   = "ast_ordinal"
	ElementASTRange     = "ast_range"
	ElementASTIndent    = "ast_indent"
	ElementASTType      = "ast_type"
	ElementASTDesc      = "ast_desc"
)

/*
Scheme maps a rendered element name to a (begin-escape, end-escape) pair.
A nil Scheme (NoColorScheme) renders every element as plain text.
*/
type Scheme map[string][2]string

func (s Scheme) wrap(element, text string) string {
	if s == nil {
		return text
	}
	pair, ok := s[element]
	if !ok {
		return text
	}
	return pair[0] + text + pair[1]
}

// NoColorScheme is the no-op scheme spec.md §6 requires alongside the ANSI
// one: every element passes through unwrapped.
var NoColorScheme Scheme

/*
ANSIScheme is the built-in ANSI colorization scheme. Each pair is derived
from github.com/fatih/color itself (wrapping a sentinel byte and splitting
around it) rather than hand-written escape constants, so the escape
sequences this module emits are exactly what that library would emit for
the same attributes.
*/
var ANSIScheme = Scheme{
	ElementErrorMessage: ansiPair(color.FgRed, color.Bold),
	ElementErrorContext: ansiPair(color.Faint),
	ElementASTOrdinal:   ansiPair(color.FgCyan),
	ElementASTRange:     ansiPair(color.Faint),
	ElementASTIndent:    ansiPair(color.Faint),
	ElementASTType:      ansiPair(color.FgYellow, color.Bold),
	ElementASTDesc:      ansiPair(color.FgGreen),
}

func ansiPair(attrs ...color.Attribute) [2]string {
	const sentinel = "\x00"
	c := color.New(attrs...)
	c.EnableColor() // ANSIScheme is only ever selected once a caller has already decided to colorize, so it must not defer to fatih/color's own terminal auto-detection.
	wrapped := c.Sprint(sentinel)
	idx := strings.IndexByte(wrapped, 0)
	if idx < 0 {
		return [2]string{"", ""}
	}
	return [2]string{wrapped[:idx], wrapped[idx+1:]}
}
