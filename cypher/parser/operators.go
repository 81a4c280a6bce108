/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

// Operator and postfix-expression constructors. One BINARY_OPERATOR /
// UNARY_OPERATOR kind carries an Operator-in-Text field for every concrete
// operator, including the STARTS WITH/ENDS WITH/CONTAINS/IN string and list
// predicates — see DESIGN.md "Operator node shape" for why this collapses
// libcypher-parser's one-struct-per-operator C layout into a single Go kind.

func (t *tree) newBinaryOperator(op string, left, right *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(left, KindExpression) || !requireKind(right, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	n := t.newNode(KindBinaryOperator, rng, left, right)
	n.Text = op
	assertOk(n.setSlot("left", left))
	assertOk(n.setSlot("right", right))
	return n, nil
}

func (t *tree) newUnaryOperator(op string, operand *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(operand, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	n := t.newNode(KindUnaryOperator, rng, operand)
	n.Text = op
	assertOk(n.setSlot("operand", operand))
	return n, nil
}

func (t *tree) newPropertyAccess(subject *ASTNode, propName string, rng Range) (*ASTNode, error) {
	if !requireKind(subject, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	n := t.newNode(KindPropertyAccess, rng, subject)
	n.Text = propName
	assertOk(n.setSlot("subject", subject))
	return n, nil
}

func (t *tree) newIndexAccess(subject, index *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(subject, KindExpression) || !requireKind(index, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	n := t.newNode(KindIndexAccess, rng, subject, index)
	assertOk(n.setSlot("subject", subject))
	assertOk(n.setSlot("index", index))
	return n, nil
}

func (t *tree) newSlice(subject, from, to *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(subject, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	children := []*ASTNode{subject}
	if from != nil {
		children = append(children, from)
	}
	if to != nil {
		children = append(children, to)
	}
	n := t.newNode(KindSlice, rng, children...)
	assertOk(n.setSlot("subject", subject))
	assertOk(n.setSlot("from", from))
	assertOk(n.setSlot("to", to))
	return n, nil
}

func (t *tree) newLabelCheck(subject *ASTNode, labels []string, rng Range) (*ASTNode, error) {
	if !requireKind(subject, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	n := t.newNode(KindLabelCheck, rng, subject)
	n.Text = joinLabels(labels)
	assertOk(n.setSlot("subject", subject))
	return n, nil
}

func joinLabels(labels []string) string {
	s := ""
	for _, l := range labels {
		s += ":" + l
	}
	return s
}

func (t *tree) newFunctionInvocation(name string, distinct bool, args []*ASTNode, rng Range) *ASTNode {
	n := t.newNode(KindFunctionInvocation, rng, args...)
	n.Text = name
	n.Flag = distinct
	return n
}

func (t *tree) newCaseAlternative(when, then *ASTNode, rng Range) (*ASTNode, error) {
	if !requireKind(when, KindExpression) || !requireKind(then, KindExpression) {
		return nil, ErrInvalidChildKind
	}
	n := t.newNode(KindCaseAlternative, rng, when, then)
	assertOk(n.setSlot("when", when))
	assertOk(n.setSlot("then", then))
	return n, nil
}

func (t *tree) newCaseExpression(subject *ASTNode, alternatives []*ASTNode, elseExpr *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{}
	if subject != nil {
		children = append(children, subject)
	}
	children = append(children, alternatives...)
	if elseExpr != nil {
		children = append(children, elseExpr)
	}
	n := t.newNode(KindCaseExpression, rng, children...)
	assertOk(n.setSlot("subject", subject))
	assertOk(n.setSlot("else", elseExpr))
	return n
}

func (t *tree) newListComprehension(variable, inList, predicate, eval *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{variable, inList}
	if predicate != nil {
		children = append(children, predicate)
	}
	if eval != nil {
		children = append(children, eval)
	}
	n := t.newNode(KindListComprehension, rng, children...)
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("inList", inList))
	assertOk(n.setSlot("predicate", predicate))
	assertOk(n.setSlot("eval", eval))
	return n
}

func (t *tree) newPatternComprehension(variable, pattern, predicate, eval *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{}
	if variable != nil {
		children = append(children, variable)
	}
	children = append(children, pattern)
	if predicate != nil {
		children = append(children, predicate)
	}
	children = append(children, eval)
	n := t.newNode(KindPatternComprehension, rng, children...)
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("pattern", pattern))
	assertOk(n.setSlot("predicate", predicate))
	assertOk(n.setSlot("eval", eval))
	return n
}

func (t *tree) newPredicateFunction(function string, variable, inList, predicate *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{variable, inList}
	if predicate != nil {
		children = append(children, predicate)
	}
	n := t.newNode(KindPredicateFunction, rng, children...)
	n.Text = function
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("inList", inList))
	assertOk(n.setSlot("predicate", predicate))
	return n
}

func (t *tree) newReduceExpression(accumulator, init, variable, inList, eval *ASTNode, rng Range) *ASTNode {
	n := t.newNode(KindReduceExpression, rng, accumulator, init, variable, inList, eval)
	assertOk(n.setSlot("accumulator", accumulator))
	assertOk(n.setSlot("init", init))
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("inList", inList))
	assertOk(n.setSlot("eval", eval))
	return n
}
