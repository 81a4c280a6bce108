/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

func (t *tree) newClientCommand(text string, rng Range) *ASTNode {
	n := t.newNode(KindClientCommand, rng)
	n.Text = text
	return n
}

func (t *tree) newLineComment(text string, rng Range) *ASTNode {
	n := t.newNode(KindLineComment, rng)
	n.Text = text
	return n
}

func (t *tree) newBlockComment(text string, rng Range) *ASTNode {
	n := t.newNode(KindBlockComment, rng)
	n.Text = text
	return n
}
