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

func parseSingleExpr(t *testing.T, expr string) *ASTNode {
	res := Parse("RETURN " + expr)
	require.Empty(t, res.Errors(), "source %q", expr)
	require.Len(t, res.Directives(), 1)
	ret := res.Directives()[0].Children[0]
	return ret.Children[0].Slot("expression")
}

func TestExprUnaryMinusBindsTighterThanPower(t *testing.T) {
	// -2^2 == (-2)^2 per the precedence table (^ < unary -/+).
	n := parseSingleExpr(t, "-2^2")
	require.True(t, n.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "^", n.Text)
	left := n.Slot("left")
	require.True(t, left.Kind.Is(KindUnaryOperator))
	assert.Equal(t, "-", left.Text)
}

func TestExprPowerIsRightAssociative(t *testing.T) {
	// 2^3^2 == 2^(3^2)
	n := parseSingleExpr(t, "2^3^2")
	require.True(t, n.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "^", n.Text)
	assert.Equal(t, "2", n.Slot("left").Text)
	right := n.Slot("right")
	require.True(t, right.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "^", right.Text)
}

func TestExprNotBindsLooserThanComparison(t *testing.T) {
	// NOT a = b == NOT (a = b)
	n := parseSingleExpr(t, "NOT a = b")
	require.True(t, n.Kind.Is(KindUnaryOperator))
	assert.Equal(t, "NOT", n.Text)
	operand := n.Slot("operand")
	require.True(t, operand.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "=", operand.Text)
}

func TestExprOrLooserThanXorLooserThanAnd(t *testing.T) {
	// a OR b AND c XOR d == a OR ((b AND c) XOR d)
	n := parseSingleExpr(t, "a OR b AND c XOR d")
	require.True(t, n.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "OR", n.Text)
	right := n.Slot("right")
	require.True(t, right.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "XOR", right.Text)
	rightLeft := right.Slot("left")
	require.True(t, rightLeft.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "AND", rightLeft.Text)
}

func TestExprAdditiveLeftAssociative(t *testing.T) {
	// a - b - c == (a - b) - c
	n := parseSingleExpr(t, "a - b - c")
	require.True(t, n.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "-", n.Text)
	left := n.Slot("left")
	require.True(t, left.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "-", left.Text)
	assert.Equal(t, "a", left.Slot("left").Text)
	assert.Equal(t, "b", left.Slot("right").Text)
	assert.Equal(t, "c", n.Slot("right").Text)
}

func TestExprMultiplicativeTighterThanAdditive(t *testing.T) {
	// a + b * c == a + (b * c)
	n := parseSingleExpr(t, "a + b * c")
	require.True(t, n.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "+", n.Text)
	right := n.Slot("right")
	require.True(t, right.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "*", right.Text)
}

func TestExprStartsWithIsMultiTokenOperator(t *testing.T) {
	n := parseSingleExpr(t, "a STARTS WITH 'x'")
	require.True(t, n.Kind.Is(KindBinaryOperator))
	assert.Equal(t, "STARTS WITH", n.Text)
}

func TestExprIsNotNullIsPostfixUnary(t *testing.T) {
	n := parseSingleExpr(t, "a IS NOT NULL")
	require.True(t, n.Kind.Is(KindUnaryOperator))
	assert.Equal(t, "IS NOT NULL", n.Text)
	assert.Equal(t, "a", n.Slot("operand").Text)
}

func TestExprPropertyAndIndexAccessPostfix(t *testing.T) {
	n := parseSingleExpr(t, "a.b[0]")
	require.True(t, n.Kind.Is(KindIndexAccess))
	subj := n.Slot("subject")
	require.True(t, subj.Kind.Is(KindPropertyAccess))
	assert.Equal(t, "b", subj.Text)
	assert.Equal(t, "a", subj.Slot("subject").Text)
}

func TestExprLabelCheckInWhereClause(t *testing.T) {
	res := Parse("MATCH (n) WHERE n:Person:Admin RETURN n")
	require.Empty(t, res.Errors())
	match := res.Directives()[0].Children[0]
	where := match.Slot("where")
	require.True(t, where.Kind.Is(KindLabelCheck))
	assert.Equal(t, ":Person:Admin", where.Text)
}

func TestExprListComprehension(t *testing.T) {
	n := parseSingleExpr(t, "[x IN [1,2,3] WHERE x > 1 | x * 2]")
	require.True(t, n.Kind.Is(KindListComprehension))
	assert.Equal(t, "x", n.Slot("variable").Text)
	require.NotNil(t, n.Slot("predicate"))
	require.NotNil(t, n.Slot("eval"))
}

func TestExprCaseExpression(t *testing.T) {
	n := parseSingleExpr(t, "CASE WHEN a THEN 1 ELSE 2 END")
	require.True(t, n.Kind.Is(KindCaseExpression))
	require.Nil(t, n.Slot("subject"))
	require.NotNil(t, n.Slot("else"))
}

func TestExprFunctionInvocationDistinct(t *testing.T) {
	n := parseSingleExpr(t, "count(DISTINCT a)")
	require.True(t, n.Kind.Is(KindFunctionInvocation))
	assert.Equal(t, "count", n.Text)
	assert.True(t, n.Flag)
	require.Len(t, n.Children, 1)
}

func TestExprMapLiteral(t *testing.T) {
	n := parseSingleExpr(t, "{a: 1, b: 2}")
	require.True(t, n.Kind.Is(KindMapLiteral))
	require.Len(t, n.Children, 2)
	assert.Equal(t, "a", n.Children[0].Text)
}
