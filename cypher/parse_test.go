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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringReturnsDirectivesAndNoErrors(t *testing.T) {
	result := ParseString("MATCH (n:Person) RETURN n.name")
	require.Empty(t, result.Errors())
	require.Len(t, result.Directives(), 1)
}

func TestParseStringRecordsSyntaxErrors(t *testing.T) {
	result := ParseString("MATCH (n RETURN n")
	assert.NotEmpty(t, result.Errors())
}

func TestParseReadsFromIOReader(t *testing.T) {
	result, err := Parse(strings.NewReader("RETURN 1"))
	require.NoError(t, err)
	require.Len(t, result.Directives(), 1)
}

func TestParseStringWithCallbackHaltsEarly(t *testing.T) {
	var count int
	result := ParseStringWithCallback("RETURN 1; RETURN 2; RETURN 3", func(n *Node) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
	assert.Len(t, result.Directives(), 1)
}

func TestResultPrintProducesStructuralOutput(t *testing.T) {
	result := ParseString("RETURN 1")
	out := result.Print(DefaultConfig())
	assert.Contains(t, out, "QUERY")
	assert.Contains(t, out, "RETURN")
}

func TestResultPrintColorizedDiffersFromPlain(t *testing.T) {
	result := ParseString("RETURN 1")
	plain := result.Print(DefaultConfig())
	colored := result.Print(Config{Colorize: true, OutputWidth: 120})
	assert.NotEqual(t, plain, colored)
}

func TestResultFreeDropsReferences(t *testing.T) {
	result := ParseString("RETURN 1")
	result.Free()
	assert.Nil(t, result.Directives())
}

func TestResultSourceRoundTrips(t *testing.T) {
	result := ParseString("RETURN 1")
	assert.Equal(t, "RETURN 1", result.Source())
}
