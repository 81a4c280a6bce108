/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

/*
newNodePropIndexCommand builds a CREATE/DROP INDEX ON :Label(prop) command.
*/
func (t *tree) newNodePropIndexCommand(drop bool, label, propName *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(label, KindLabel) {
		return nil, ErrInvalidChildKind
	}
	kind := KindCreateNodePropIndex
	if drop {
		kind = KindDropNodePropIndex
	}
	n := t.newNode(kind, rng, label, propName)
	assertOk(n.setSlot("label", label))
	assertOk(n.setSlot("propName", propName))
	return n, nil
}

/*
newUniqueNodePropConstraint builds a CREATE/DROP CONSTRAINT ON (id:Label)
ASSERT id.prop IS UNIQUE command. Grounded directly on
original_source/src/lib/ast_create_unique_constraint.c's
cypher_ast_create_unique_constraint, including its REQUIRE_TYPE checks on
identifier/label/expression.
*/
func (t *tree) newUniqueNodePropConstraint(drop bool, identifier, label, expression *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(identifier, KindIdentifier) || !requireKind(label, KindLabel) ||
		!requireKind(expression, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	kind := KindCreateUniqueNodePropConstraint
	if drop {
		kind = KindDropUniqueNodePropConstraint
	}
	n := t.newNode(kind, rng, identifier, label, expression)
	assertOk(n.setSlot("identifier", identifier))
	assertOk(n.setSlot("label", label))
	assertOk(n.setSlot("expression", expression))
	return n, nil
}

func (t *tree) newNodePropExistenceConstraint(drop bool, identifier, label, expression *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(identifier, KindIdentifier) || !requireKind(label, KindLabel) ||
		!requireKind(expression, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	kind := KindCreateNodePropExistenceConstraint
	if drop {
		kind = KindDropNodePropExistenceConstraint
	}
	n := t.newNode(kind, rng, identifier, label, expression)
	assertOk(n.setSlot("identifier", identifier))
	assertOk(n.setSlot("label", label))
	assertOk(n.setSlot("expression", expression))
	return n, nil
}

func (t *tree) newRelPropExistenceConstraint(drop bool, identifier, relType, expression *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(identifier, KindIdentifier) || !requireKind(relType, KindRelTypeName) ||
		!requireKind(expression, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	kind := KindCreateRelPropExistenceConstraint
	if drop {
		kind = KindDropRelPropExistenceConstraint
	}
	n := t.newNode(kind, rng, identifier, relType, expression)
	assertOk(n.setSlot("identifier", identifier))
	assertOk(n.setSlot("relType", relType))
	assertOk(n.setSlot("expression", expression))
	return n, nil
}
