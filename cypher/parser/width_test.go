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
)

func TestTruncateToWidthLeavesShortStringsAlone(t *testing.T) {
	assert.Equal(t, "short", truncateToWidth("short", 40))
}

func TestTruncateToWidthAppendsEllipsis(t *testing.T) {
	s := strings.Repeat("a", 50)
	got := truncateToWidth(s, 10)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, runewidth.StringWidth(got), 10)
}

func TestTruncateToWidthZeroDisablesTruncation(t *testing.T) {
	s := strings.Repeat("a", 500)
	assert.Equal(t, s, truncateToWidth(s, 0))
}

func TestTruncateToWidthUsesDisplayWidthForWideRunes(t *testing.T) {
	// Each "全" is display-width 2; five of them are width 10, not length 5.
	s := strings.Repeat("全", 5)
	got := truncateToWidth(s, 6)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 6)
}

func TestRemainingWidthSubtractsPrefixFromTotal(t *testing.T) {
	assert.Equal(t, 30, remainingWidth(40, 10))
}

func TestRemainingWidthZeroTotalDisablesTruncation(t *testing.T) {
	assert.Equal(t, 0, remainingWidth(0, 10))
}

func TestRemainingWidthFloorsAtOneWhenPrefixExceedsTotal(t *testing.T) {
	assert.Equal(t, 1, remainingWidth(20, 25))
}
