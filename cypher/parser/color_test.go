/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestNoColorSchemeWrapIsIdentity(t *testing.T) {
	assert.Equal(t, "hello", NoColorScheme.wrap(ElementASTType, "hello"))
}

func TestANSISchemeWrapsWithBeginAndEndEscapes(t *testing.T) {
	wrapped := ANSIScheme.wrap(ElementASTType, "MATCH")
	assert.Contains(t, wrapped, "MATCH")
	assert.NotEqual(t, "MATCH", wrapped)
}

func TestANSISchemeCoversEveryRequiredElement(t *testing.T) {
	required := []string{
		ElementErrorMessage, ElementErrorContext, ElementASTOrdinal,
		ElementASTRange, ElementASTIndent, ElementASTType, ElementASTDesc,
	}
	for _, el := range required {
		_, ok := ANSIScheme[el]
		assert.True(t, ok, "missing scheme entry for %s", el)
	}
}

func TestAnsiPairMatchesFatihColorOutput(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	pair := ansiPair(color.FgRed)
	direct := color.New(color.FgRed).Sprint("x")
	assert.Equal(t, direct, pair[0]+"x"+pair[1])
}
