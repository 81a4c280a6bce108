/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

func (t *tree) newMatch(optional bool, pattern, where *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{pattern}
	if where != nil {
		children = append(children, where)
	}
	n := t.newNode(KindMatch, rng, children...)
	n.Flag = optional
	assertOk(n.setSlot("pattern", pattern))
	assertOk(n.setSlot("where", where))
	return n
}

func (t *tree) newCreate(pattern *ASTNode, rng Range) *ASTNode {
	n := t.newNode(KindCreate, rng, pattern)
	assertOk(n.setSlot("pattern", pattern))
	return n
}

func (t *tree) newMergeAction(on string, set *ASTNode, rng Range) *ASTNode {
	n := t.newNode(KindMergeAction, rng, set)
	n.Text = on // "CREATE" or "MATCH"
	assertOk(n.setSlot("set", set))
	return n
}

func (t *tree) newMerge(pattern *ASTNode, actions []*ASTNode, rng Range) *ASTNode {
	children := append([]*ASTNode{pattern}, actions...)
	n := t.newNode(KindMerge, rng, children...)
	assertOk(n.setSlot("pattern", pattern))
	return n
}

func (t *tree) newDelete(detach bool, expressions []*ASTNode, rng Range) *ASTNode {
	n := t.newNode(KindDelete, rng, expressions...)
	n.Flag = detach
	return n
}

func (t *tree) newRemoveItem(subject *ASTNode, labels []*ASTNode, rng Range) *ASTNode {
	children := append([]*ASTNode{subject}, labels...)
	n := t.newNode(KindRemoveItem, rng, children...)
	assertOk(n.setSlot("subject", subject))
	return n
}

func (t *tree) newRemove(items []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindRemove, rng, items...)
}

func (t *tree) newSetItem(op string, target, value *ASTNode, labels []*ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{target}
	if value != nil {
		children = append(children, value)
	}
	children = append(children, labels...)
	n := t.newNode(KindSetItem, rng, children...)
	n.Text = op // "=", "+=" or "LABELS"
	assertOk(n.setSlot("target", target))
	assertOk(n.setSlot("value", value))
	return n
}

func (t *tree) newSet(items []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindSet, rng, items...)
}

func (t *tree) newProjection(expr, alias *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{expr}
	if alias != nil {
		children = append(children, alias)
	}
	n := t.newNode(KindProjection, rng, children...)
	assertOk(n.setSlot("expression", expr))
	assertOk(n.setSlot("alias", alias))
	return n
}

func (t *tree) newSortItem(expr *ASTNode, ascending bool, rng Range) *ASTNode {
	n := t.newNode(KindSortItem, rng, expr)
	n.Flag = ascending
	assertOk(n.setSlot("expression", expr))
	return n
}

func (t *tree) newOrderBy(items []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindOrderBy, rng, items...)
}

/*
newProjectionClause builds either a WITH or a RETURN clause; the only
structural difference between the two in this grammar is the Kind itself
(WITH additionally chains into further clauses, which the grammar -- not
the node -- enforces).
*/
func (t *tree) newProjectionClause(kind Kind, distinct bool, star bool, projections []*ASTNode,
	orderBy *ASTNode, skip, limit *ASTNode, where *ASTNode, rng Range) *ASTNode {

	children := append([]*ASTNode{}, projections...)
	if orderBy != nil {
		children = append(children, orderBy)
	}
	if skip != nil {
		children = append(children, skip)
	}
	if limit != nil {
		children = append(children, limit)
	}
	if where != nil {
		children = append(children, where)
	}
	n := t.newNode(kind, rng, children...)
	n.Flag = distinct
	assertOk(n.setSlot("orderBy", orderBy))
	assertOk(n.setSlot("skip", skip))
	assertOk(n.setSlot("limit", limit))
	assertOk(n.setSlot("where", where))
	if star {
		n.Text = "*"
	}
	return n
}

func (t *tree) newUnwind(expr, variable *ASTNode, rng Range) *ASTNode {
	n := t.newNode(KindUnwind, rng, expr, variable)
	assertOk(n.setSlot("expression", expr))
	assertOk(n.setSlot("variable", variable))
	return n
}

func (t *tree) newForeach(variable, inList *ASTNode, updates []*ASTNode, rng Range) *ASTNode {
	children := append([]*ASTNode{variable, inList}, updates...)
	n := t.newNode(KindForeach, rng, children...)
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("inList", inList))
	return n
}

func (t *tree) newLoadCSV(withHeaders bool, url, variable, fieldTerminator *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{url, variable}
	if fieldTerminator != nil {
		children = append(children, fieldTerminator)
	}
	n := t.newNode(KindLoadCSV, rng, children...)
	n.Flag = withHeaders
	assertOk(n.setSlot("url", url))
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("fieldTerminator", fieldTerminator))
	return n
}

func (t *tree) newStartPoint(variable, expr *ASTNode, rng Range) *ASTNode {
	n := t.newNode(KindStartPoint, rng, variable, expr)
	assertOk(n.setSlot("variable", variable))
	return n
}

func (t *tree) newStart(points []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindStart, rng, points...)
}

func (t *tree) newUnion(all bool, rng Range) *ASTNode {
	n := t.newNode(KindUnion, rng)
	n.Flag = all
	return n
}

func (t *tree) newQuery(clauses []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindQuery, rng, clauses...)
}
