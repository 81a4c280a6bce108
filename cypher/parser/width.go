/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import "github.com/mattn/go-runewidth"

// defaultOutputWidth is used when a printer is constructed without an
// explicit width (spec.md §4.G's "soft" bound; zero disables truncation).
const defaultOutputWidth = 120

/*
truncateToWidth shortens s to fit within width display columns, appending an
ellipsis when it had to cut (except at a width of 1, where the cut string
gets no ellipsis), using github.com/mattn/go-runewidth since
detail strings may contain arbitrary Unicode identifiers/string literals and
a byte- or rune-count truncation would misjudge their on-screen width.
A width <= 0 disables truncation.
*/
func truncateToWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

/*
remainingWidth computes how many display columns are left for a detail
string once the line's fixed structural prefix (indent, ordinal, range,
kind name) has been accounted for (spec.md §4.G: the detail string is
truncated "if it would cause the line to exceed the remaining width", not
against the printer's full OutputWidth). A totalWidth <= 0 means truncation
is disabled outright, regardless of prefixWidth. Otherwise the result is
floored at 1 so an unusually wide prefix still leaves the detail string
something to render into rather than going negative.
*/
func remainingWidth(totalWidth, prefixWidth int) int {
	if totalWidth <= 0 {
		return 0
	}
	remaining := totalWidth - prefixWidth
	if remaining < 1 {
		remaining = 1
	}
	return remaining
}
