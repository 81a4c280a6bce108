/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

func (t *tree) newLabel(name string, rng Range) *ASTNode {
	n := t.newNode(KindLabel, rng)
	n.Text = name
	return n
}

func (t *tree) newRelTypeName(name string, rng Range) *ASTNode {
	n := t.newNode(KindRelTypeName, rng)
	n.Text = name
	return n
}

func (t *tree) newRangeLiteral(min, max string, rng Range) *ASTNode {
	n := t.newNode(KindRangeLiteral, rng)
	n.Text = min + ".." + max
	return n
}

/*
newNodePattern builds a "(variable:Label1:Label2 {props})" pattern element.
variable and properties may be nil.
*/
func (t *tree) newNodePattern(variable *ASTNode, labels []*ASTNode, properties *ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{}
	if variable != nil {
		children = append(children, variable)
	}
	children = append(children, labels...)
	if properties != nil {
		children = append(children, properties)
	}
	n := t.newNode(KindNodePattern, rng, children...)
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("properties", properties))
	return n
}

/*
newRelPattern builds a "-[variable:TYPE1|TYPE2*min..max {props}]->" pattern
element. direction is "->" ,"<-" or "" (undirected).
*/
func (t *tree) newRelPattern(variable *ASTNode, types []*ASTNode, rangeLit *ASTNode,
	properties *ASTNode, direction string, rng Range) *ASTNode {

	children := []*ASTNode{}
	if variable != nil {
		children = append(children, variable)
	}
	children = append(children, types...)
	if rangeLit != nil {
		children = append(children, rangeLit)
	}
	if properties != nil {
		children = append(children, properties)
	}
	n := t.newNode(KindRelPattern, rng, children...)
	n.Text = direction
	assertOk(n.setSlot("variable", variable))
	assertOk(n.setSlot("range", rangeLit))
	assertOk(n.setSlot("properties", properties))
	return n
}

/*
newPatternPath builds a path of alternating node/relationship pattern
elements, optionally bound to a variable (a named path, "p = (a)-->(b)").
*/
func (t *tree) newPatternPath(variable *ASTNode, elements []*ASTNode, rng Range) *ASTNode {
	children := []*ASTNode{}
	if variable != nil {
		children = append(children, variable)
	}
	children = append(children, elements...)
	n := t.newNode(KindPatternPath, rng, children...)
	assertOk(n.setSlot("variable", variable))
	return n
}

func (t *tree) newPattern(paths []*ASTNode, rng Range) *ASTNode {
	return t.newNode(KindPattern, rng, paths...)
}
