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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// astShape projects an ASTNode onto the fields that matter for structural
// equality, modulo Range and Ordinal -- two parses of differently-spaced but
// otherwise identical source should compare equal.
type astShape struct {
	Kind     Kind
	Text     string
	Flag     bool
	Children []astShape
}

func shapeOf(n *ASTNode) astShape {
	if n == nil {
		return astShape{}
	}
	children := make([]astShape, len(n.Children))
	for i, c := range n.Children {
		children[i] = shapeOf(c)
	}
	return astShape{Kind: n.Kind, Text: n.Text, Flag: n.Flag, Children: children}
}

func TestStructuralEqualityIgnoresWhitespaceAndPosition(t *testing.T) {
	a := Parse("MATCH (n:Person) RETURN n.name")
	b := Parse("MATCH   (n:Person)\nRETURN\tn.name")
	require.Empty(t, a.Errors())
	require.Empty(t, b.Errors())
	require.Len(t, a.Directives(), 1)
	require.Len(t, b.Directives(), 1)

	if diff := cmp.Diff(shapeOf(a.Directives()[0]), shapeOf(b.Directives()[0])); diff != "" {
		t.Errorf("structural shapes differ (-want +got):\n%s", diff)
	}
}

func TestStructuralEqualityDetectsRealDifferences(t *testing.T) {
	a := Parse("RETURN n.name")
	b := Parse("RETURN n.age")

	diff := cmp.Diff(shapeOf(a.Directives()[0]), shapeOf(b.Directives()[0]))
	require.NotEmpty(t, diff)
}
