/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

// Literal and leaf-node constructors (Component C). Numeric literals store
// their verbatim source text in Text, per the supplemented behavior
// documented in SPEC_FULL.md, grounded on original_source/src/lib/ast_float.c's
// cypher_ast_float_value returning the stored string untouched. String
// literals store their decoded value (escapes resolved) and parameters their
// bare name, as the parser passes them in.

func (t *tree) newIdentifier(name string, rng Range) *ASTNode {
	n := t.newNode(KindIdentifier, rng)
	n.Text = name
	return n
}

func (t *tree) newParameter(name string, rng Range) *ASTNode {
	n := t.newNode(KindParameter, rng)
	n.Text = name
	return n
}

func (t *tree) newInteger(text string, rng Range) *ASTNode {
	n := t.newNode(KindInteger, rng)
	n.Text = text
	return n
}

func (t *tree) newFloat(text string, rng Range) *ASTNode {
	n := t.newNode(KindFloat, rng)
	n.Text = text
	return n
}

func (t *tree) newString(value string, rng Range) *ASTNode {
	n := t.newNode(KindString, rng)
	n.Text = value
	return n
}

func (t *tree) newBoolean(value bool, rng Range) *ASTNode {
	n := t.newNode(KindBoolean, rng)
	n.Flag = value
	return n
}

func (t *tree) newNullLiteral(rng Range) *ASTNode {
	return t.newNode(KindNullLiteral, rng)
}

func (t *tree) newListLiteral(items []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindListLiteral, rng, items...)
}

func (t *tree) newMapEntry(key string, value *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(value, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	n := t.newNode(KindMapEntry, rng, value)
	n.Text = key
	assertOk(n.setSlot("value", value))
	return n, nil
}

func (t *tree) newMapLiteral(entries []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindMapLiteral, rng, entries...)
}
