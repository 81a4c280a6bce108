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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleMatchReturn(t *testing.T) {
	res := Parse("MATCH (n:Person) RETURN n")
	require.Empty(t, res.Errors())
	require.Len(t, res.Directives(), 1)

	query := res.Directives()[0]
	require.True(t, query.Kind.Is(KindQuery))
	require.Len(t, query.Children, 2)

	match := query.Children[0]
	assert.True(t, match.Kind.Is(KindMatch))
	assert.False(t, match.Flag)

	ret := query.Children[1]
	assert.True(t, ret.Kind.Is(KindReturn))
	require.Len(t, ret.Children, 1)
	proj := ret.Children[0]
	assert.True(t, proj.Kind.Is(KindProjection))
	assert.True(t, proj.Slot("expression").Kind.Is(KindIdentifier))
	assert.Equal(t, "n", proj.Slot("expression").Text)
}

func TestParseOptionalMatchKeepsFullRange(t *testing.T) {
	source := "OPTIONAL MATCH (n) RETURN n"
	res := Parse(source)
	require.Empty(t, res.Errors())

	match := res.Directives()[0].Children[0]
	require.True(t, match.Kind.Is(KindMatch))
	assert.True(t, match.Flag)
	assert.Equal(t, 0, match.Range.Start.Offset)
	assert.Equal(t, "OPTIONAL", source[match.Range.Start.Offset:match.Range.Start.Offset+8])
}

func TestParseMultipleDirectivesSeparatedBySemicolon(t *testing.T) {
	res := Parse("RETURN 1; RETURN 2")
	require.Empty(t, res.Errors())
	require.Len(t, res.Directives(), 2)
}

func TestParseUndirectedRelationshipPattern(t *testing.T) {
	res := Parse("MATCH (a)--(b) RETURN a")
	require.Empty(t, res.Errors())

	match := res.Directives()[0].Children[0]
	pattern := match.Slot("pattern")
	path := pattern.Children[0]
	require.True(t, path.Kind.Is(KindPatternPath))
	require.Len(t, path.Children, 3)

	rel := path.Children[1]
	assert.True(t, rel.Kind.Is(KindRelPattern))
	assert.Equal(t, "", rel.Text)
	assert.Len(t, rel.Children, 0)
}

func TestParseDirectedRelationshipPatternWithTypeAndVariable(t *testing.T) {
	res := Parse("MATCH (a)-[r:KNOWS]->(b) RETURN r")
	require.Empty(t, res.Errors())

	match := res.Directives()[0].Children[0]
	path := match.Slot("pattern").Children[0]
	rel := path.Children[1]
	require.True(t, rel.Kind.Is(KindRelPattern))
}

func TestParseRecoversAfterSyntaxErrorAtNextDirective(t *testing.T) {
	// Recovery stops at the RETURN clause keyword, so "RETURN n" is parsed
	// as a directive of its own, followed by "RETURN 1".
	res := Parse("MATCH (n RETURN n; RETURN 1")
	require.NotEmpty(t, res.Errors())
	require.Len(t, res.Directives(), 2)

	query := res.Directives()[0]
	require.True(t, query.Kind.Is(KindQuery))
	ret := query.Children[0]
	assert.True(t, ret.Kind.Is(KindReturn))
}

func TestParseClientCommandAndComment(t *testing.T) {
	res := Parse("// a comment\n:help\nMATCH (n) RETURN n")
	require.Empty(t, res.Errors())
	require.Len(t, res.Directives(), 3)
	assert.True(t, res.Directives()[0].Kind.Is(KindLineComment))
	assert.True(t, res.Directives()[1].Kind.Is(KindClientCommand))
	assert.Equal(t, "help", res.Directives()[1].Text)
}

func TestParseWithCallbackStopsEarly(t *testing.T) {
	var seen int
	res := ParseWithCallback("RETURN 1; RETURN 2; RETURN 3", func(n *ASTNode) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
	assert.Len(t, res.Directives(), 2)
}

func TestParseSchemaCommandCreateIndex(t *testing.T) {
	res := Parse("CREATE INDEX ON :Person(name)")
	require.Empty(t, res.Errors())
	require.Len(t, res.Directives(), 1)
	assert.True(t, res.Directives()[0].Kind.Is(KindCreateNodePropIndex))
}

func TestParseOrdinalsAreDenseAndDepthFirst(t *testing.T) {
	res := Parse("RETURN 1, 2")
	q := res.Directives()[0]
	assert.Equal(t, 0, q.Ordinal)
	assert.Equal(t, 1, q.Children[0].Ordinal) // RETURN
}
