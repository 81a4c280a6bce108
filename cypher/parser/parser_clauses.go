/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

// clauseStarts reports whether k can open a clause inside a query, the
// grammar spec.md §4.E enumerates for the directive body.
func clauseStarts(k TokenKind) bool {
	switch k {
	case TokenMATCH, TokenOPTIONAL, TokenCREATE, TokenMERGE, TokenDELETE, TokenDETACH,
		TokenREMOVE, TokenSET, TokenWITH, TokenRETURN, TokenUNWIND, TokenFOREACH,
		TokenLOAD, TokenSTART, TokenUNION:
		return true
	}
	return false
}

func (p *parser) parseQuery() *ASTNode {
	start := p.cur().Range.Start
	var clauses []*ASTNode
	for clauseStarts(p.curKind()) {
		clauses = append(clauses, p.parseClause())
	}
	if len(clauses) == 0 {
		p.fail("expected a clause, found %s", p.describeCurrent())
	}
	return p.tree.newQuery(clauses, p.rangeFrom(start))
}

func (p *parser) parseClause() *ASTNode {
	switch p.curKind() {
	case TokenMATCH:
		return p.parseMatchClause(false)
	case TokenOPTIONAL:
		start := p.cur().Range.Start
		p.advance()
		p.expect(TokenMATCH, "MATCH")
		return p.parseMatchClauseBodyFrom(start, true)
	case TokenCREATE:
		start := p.cur().Range.Start
		p.advance()
		pattern := p.parsePattern()
		return p.tree.newCreate(pattern, p.rangeFrom(start))
	case TokenMERGE:
		return p.parseMergeClause()
	case TokenDELETE:
		start := p.cur().Range.Start
		p.advance()
		return p.parseDeleteBody(start, false)
	case TokenDETACH:
		start := p.cur().Range.Start
		p.advance()
		p.expect(TokenDELETE, "DELETE")
		return p.parseDeleteBody(start, true)
	case TokenREMOVE:
		return p.parseRemoveClause()
	case TokenSET:
		start := p.cur().Range.Start
		p.advance()
		return p.parseSetClauseBody(start)
	case TokenWITH:
		return p.parseProjectionClause(KindWith)
	case TokenRETURN:
		return p.parseProjectionClause(KindReturn)
	case TokenUNWIND:
		return p.parseUnwindClause()
	case TokenFOREACH:
		return p.parseForeachClause()
	case TokenLOAD:
		return p.parseLoadCSVClause()
	case TokenSTART:
		return p.parseStartClause()
	case TokenUNION:
		return p.parseUnionClause()
	default:
		p.fail("expected a clause, found %s", p.describeCurrent())
		return nil
	}
}

func (p *parser) parseMatchClause(optional bool) *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenMATCH, "MATCH")
	return p.parseMatchClauseBodyFrom(start, optional)
}

func (p *parser) parseMatchClauseBodyFrom(start Position, optional bool) *ASTNode {
	pattern := p.parsePattern()
	var where *ASTNode
	if p.at(TokenWHERE) {
		p.advance()
		where = p.parseExpression()
	}
	return p.tree.newMatch(optional, pattern, where, p.rangeFrom(start))
}

func (p *parser) parseMergeClause() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenMERGE, "MERGE")
	pattern := p.parsePattern()
	var actions []*ASTNode
	for p.at(TokenON) {
		onStart := p.cur().Range.Start
		p.advance()
		onKind := "MATCH"
		if p.at(TokenCREATE) {
			p.advance()
			onKind = "CREATE"
		} else {
			p.expect(TokenMATCH, "MATCH")
		}
		p.expect(TokenSET, "SET")
		setNode := p.parseSetClauseBody(onStart)
		actions = append(actions, p.tree.newMergeAction(onKind, setNode, p.rangeFrom(onStart)))
	}
	return p.tree.newMerge(pattern, actions, p.rangeFrom(start))
}

func (p *parser) parseDeleteBody(start Position, detach bool) *ASTNode {
	exprs := []*ASTNode{p.parseExpression()}
	for p.at(TokenComma) {
		p.advance()
		exprs = append(exprs, p.parseExpression())
	}
	return p.tree.newDelete(detach, exprs, p.rangeFrom(start))
}

// parseSetTarget parses a SET/REMOVE target: a postfix expression chain
// without the generic expression parser's trailing label-check, so
// "SET n:Label" and "REMOVE n:Label" can distinguish the label list from a
// LABEL_CHECK expression (see parsePostfix's allowLabelCheck parameter).
func (p *parser) parseSetTarget() *ASTNode {
	return p.parsePostfix(p.parsePrimary(), false)
}

func (p *parser) parseRemoveClause() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenREMOVE, "REMOVE")
	items := []*ASTNode{p.parseRemoveItem()}
	for p.at(TokenComma) {
		p.advance()
		items = append(items, p.parseRemoveItem())
	}
	return p.tree.newRemove(items, p.rangeFrom(start))
}

func (p *parser) parseRemoveItem() *ASTNode {
	start := p.cur().Range.Start
	subject := p.parseSetTarget()
	var labels []*ASTNode
	for p.at(TokenColon) {
		p.advance()
		labels = append(labels, p.parseLabel())
	}
	return p.tree.newRemoveItem(subject, labels, p.rangeFrom(start))
}

func (p *parser) parseSetClauseBody(start Position) *ASTNode {
	items := []*ASTNode{p.parseSetItem()}
	for p.at(TokenComma) {
		p.advance()
		items = append(items, p.parseSetItem())
	}
	return p.tree.newSet(items, p.rangeFrom(start))
}

func (p *parser) parseSetItem() *ASTNode {
	start := p.cur().Range.Start
	target := p.parseSetTarget()
	if p.at(TokenColon) {
		var labels []*ASTNode
		for p.at(TokenColon) {
			p.advance()
			labels = append(labels, p.parseLabel())
		}
		return p.tree.newSetItem("LABELS", target, nil, labels, p.rangeFrom(start))
	}
	op := "="
	if p.at(TokenPlusEquals) {
		op = "+="
		p.advance()
	} else {
		p.expect(TokenEquals, "'=' or '+='")
	}
	value := p.parseExpression()
	return p.tree.newSetItem(op, target, value, nil, p.rangeFrom(start))
}

func (p *parser) parseProjectionClause(kind Kind) *ASTNode {
	start := p.cur().Range.Start
	p.advance() // WITH or RETURN
	distinct := false
	if p.at(TokenDISTINCT) {
		p.advance()
		distinct = true
	}
	star := false
	var projections []*ASTNode
	if p.at(TokenStar) {
		p.advance()
		star = true
	} else {
		projections = append(projections, p.parseProjectionItem())
		for p.at(TokenComma) {
			p.advance()
			projections = append(projections, p.parseProjectionItem())
		}
	}
	var orderBy *ASTNode
	if p.at(TokenORDER) {
		obStart := p.cur().Range.Start
		p.advance()
		p.expect(TokenBY, "BY")
		items := []*ASTNode{p.parseSortItem()}
		for p.at(TokenComma) {
			p.advance()
			items = append(items, p.parseSortItem())
		}
		orderBy = p.tree.newOrderBy(items, p.rangeFrom(obStart))
	}
	var skip, limit *ASTNode
	if p.at(TokenSKIP) {
		p.advance()
		skip = p.parseExpression()
	}
	if p.at(TokenLIMIT) {
		p.advance()
		limit = p.parseExpression()
	}
	var where *ASTNode
	if kind == KindWith && p.at(TokenWHERE) {
		p.advance()
		where = p.parseExpression()
	}
	return p.tree.newProjectionClause(kind, distinct, star, projections, orderBy, skip, limit, where, p.rangeFrom(start))
}

func (p *parser) parseProjectionItem() *ASTNode {
	start := p.cur().Range.Start
	expr := p.parseExpression()
	var alias *ASTNode
	if p.at(TokenAS) {
		p.advance()
		tok := p.expect(TokenIdentifier, "an alias")
		alias = p.tree.newIdentifier(tok.Text, tok.Range)
	}
	return p.tree.newProjection(expr, alias, p.rangeFrom(start))
}

func (p *parser) parseSortItem() *ASTNode {
	start := p.cur().Range.Start
	expr := p.parseExpression()
	ascending := true
	switch p.curKind() {
	case TokenASC, TokenASCENDING:
		p.advance()
	case TokenDESC, TokenDESCENDING:
		p.advance()
		ascending = false
	}
	return p.tree.newSortItem(expr, ascending, p.rangeFrom(start))
}

func (p *parser) parseUnwindClause() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenUNWIND, "UNWIND")
	expr := p.parseExpression()
	p.expect(TokenAS, "AS")
	tok := p.expect(TokenIdentifier, "a variable")
	variable := p.tree.newIdentifier(tok.Text, tok.Range)
	return p.tree.newUnwind(expr, variable, p.rangeFrom(start))
}

func (p *parser) parseForeachClause() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenFOREACH, "FOREACH")
	p.expect(TokenLParen, "'('")
	tok := p.expect(TokenIdentifier, "a variable")
	variable := p.tree.newIdentifier(tok.Text, tok.Range)
	p.expect(TokenIN, "IN")
	inList := p.parseExpression()
	p.expect(TokenPipe, "'|'")
	updates := []*ASTNode{p.parseClause()}
	for clauseStarts(p.curKind()) {
		updates = append(updates, p.parseClause())
	}
	p.expect(TokenRParen, "')'")
	return p.tree.newForeach(variable, inList, updates, p.rangeFrom(start))
}

func (p *parser) parseLoadCSVClause() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenLOAD, "LOAD")
	p.expect(TokenCSV, "CSV")
	withHeaders := false
	if p.at(TokenWITH) {
		p.advance()
		p.expect(TokenHEADERS, "HEADERS")
		withHeaders = true
	}
	p.expect(TokenFROM, "FROM")
	url := p.parseExpression()
	p.expect(TokenAS, "AS")
	tok := p.expect(TokenIdentifier, "a variable")
	variable := p.tree.newIdentifier(tok.Text, tok.Range)
	var fieldTerminator *ASTNode
	if p.at(TokenFIELDTERMINATOR) {
		p.advance()
		fieldTerminator = p.parseExpression()
	}
	return p.tree.newLoadCSV(withHeaders, url, variable, fieldTerminator, p.rangeFrom(start))
}

func (p *parser) parseStartClause() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenSTART, "START")
	points := []*ASTNode{p.parseStartPoint()}
	for p.at(TokenComma) {
		p.advance()
		points = append(points, p.parseStartPoint())
	}
	return p.tree.newStart(points, p.rangeFrom(start))
}

func (p *parser) parseStartPoint() *ASTNode {
	start := p.cur().Range.Start
	tok := p.expect(TokenIdentifier, "a variable")
	variable := p.tree.newIdentifier(tok.Text, tok.Range)
	p.expect(TokenEquals, "'='")
	lookup := p.parseExpression()
	return p.tree.newStartPoint(variable, lookup, p.rangeFrom(start))
}

func (p *parser) parseUnionClause() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenUNION, "UNION")
	all := false
	if p.at(TokenALL) {
		p.advance()
		all = true
	}
	return p.tree.newUnion(all, p.rangeFrom(start))
}

// Patterns
// ========

func (p *parser) parsePattern() *ASTNode {
	start := p.cur().Range.Start
	paths := []*ASTNode{p.parsePatternPath()}
	for p.at(TokenComma) {
		p.advance()
		paths = append(paths, p.parsePatternPath())
	}
	return p.tree.newPattern(paths, p.rangeFrom(start))
}

func (p *parser) parsePatternPath() *ASTNode {
	start := p.cur().Range.Start
	var variable *ASTNode
	if isIdentToken(p.curKind()) && p.peekAhead(1).Kind == TokenEquals {
		tok := p.advance()
		variable = p.tree.newIdentifier(tok.Text, tok.Range)
		p.advance() // '='
	}
	elements := []*ASTNode{p.parseNodePattern()}
	for p.at(TokenArrowRight) || p.at(TokenArrowLeft) || p.at(TokenDashDash) || p.at(TokenMinus) {
		elements = append(elements, p.parseRelPattern())
		elements = append(elements, p.parseNodePattern())
	}
	return p.tree.newPatternPath(variable, elements, p.rangeFrom(start))
}

func (p *parser) parseNodePattern() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenLParen, "'('")
	var variable *ASTNode
	if isIdentToken(p.curKind()) {
		tok := p.advance()
		variable = p.tree.newIdentifier(tok.Text, tok.Range)
	}
	var labels []*ASTNode
	for p.at(TokenColon) {
		p.advance()
		labels = append(labels, p.parseLabel())
	}
	var properties *ASTNode
	if p.at(TokenLBrace) {
		properties = p.parseMapLiteral()
	}
	p.expect(TokenRParen, "')'")
	return p.tree.newNodePattern(variable, labels, properties, p.rangeFrom(start))
}

/*
parseRelPattern parses one relationship pattern element. The bracket-less
undirected form "--" lexes as a single TokenDashDash covering both dashes at
once (see lexer.go's multiCharSymbols), so it is a complete relationship
element on its own, or, when a '>' follows it directly, the directed form
"-->"; every other form opens with a single dash or "<-" and closes with a
single dash or "->", with an optional "[...]" in between.
*/
func (p *parser) parseRelPattern() *ASTNode {
	start := p.cur().Range.Start

	if p.at(TokenDashDash) {
		dashes := p.advance()
		direction := ""
		if p.at(TokenGt) && p.cur().Range.Start.Offset == dashes.Range.End.Offset {
			p.advance()
			direction = "->"
		}
		return p.tree.newRelPattern(nil, nil, nil, nil, direction, p.rangeFrom(start))
	}

	leftArrow := false
	if p.at(TokenArrowLeft) {
		p.advance()
		leftArrow = true
	} else {
		p.expect(TokenMinus, "'-'")
	}

	var variable *ASTNode
	var types []*ASTNode
	var rangeLit *ASTNode
	var properties *ASTNode
	if p.at(TokenLBracket) {
		p.advance()
		if isIdentToken(p.curKind()) {
			tok := p.advance()
			variable = p.tree.newIdentifier(tok.Text, tok.Range)
		}
		if p.at(TokenColon) {
			p.advance()
			types = append(types, p.parseRelTypeName())
			for p.at(TokenPipe) {
				p.advance()
				if p.at(TokenColon) {
					p.advance()
				}
				types = append(types, p.parseRelTypeName())
			}
		}
		if p.at(TokenStar) {
			rangeStart := p.cur().Range.Start
			p.advance()
			min, max := "", ""
			if p.at(TokenInteger) {
				min = p.advance().Text
			}
			if p.at(TokenDotDot) {
				p.advance()
				if p.at(TokenInteger) {
					max = p.advance().Text
				}
			} else {
				max = min
			}
			rangeLit = p.tree.newRangeLiteral(min, max, p.rangeFrom(rangeStart))
		}
		if p.at(TokenLBrace) {
			properties = p.parseMapLiteral()
		}
		p.expect(TokenRBracket, "']'")
	}

	rightArrow := false
	if p.at(TokenArrowRight) {
		p.advance()
		rightArrow = true
	} else {
		p.expect(TokenMinus, "'-'")
	}

	direction := ""
	switch {
	case leftArrow:
		direction = "<-"
	case rightArrow:
		direction = "->"
	}
	return p.tree.newRelPattern(variable, types, rangeLit, properties, direction, p.rangeFrom(start))
}

func (p *parser) parseLabel() *ASTNode {
	tok := p.expect(TokenIdentifier, "a label name")
	return p.tree.newLabel(tok.Text, tok.Range)
}

func (p *parser) parseRelTypeName() *ASTNode {
	tok := p.expect(TokenIdentifier, "a relationship type name")
	return p.tree.newRelTypeName(tok.Text, tok.Range)
}

// Schema commands
// ===============

func (p *parser) parseSchemaCommand() *ASTNode {
	start := p.cur().Range.Start
	drop := false
	if p.at(TokenDROP) {
		p.advance()
		drop = true
	} else {
		p.expect(TokenCREATE, "CREATE")
	}

	switch p.curKind() {
	case TokenINDEX:
		return p.parseNodePropIndexCommand(start, drop)
	case TokenCONSTRAINT:
		return p.parseConstraintCommand(start, drop)
	default:
		p.fail("expected INDEX or CONSTRAINT, found %s", p.describeCurrent())
		return nil
	}
}

func (p *parser) parseNodePropIndexCommand(start Position, drop bool) *ASTNode {
	p.expect(TokenINDEX, "INDEX")
	p.expect(TokenON, "ON")
	p.expect(TokenColon, "':'")
	label := p.parseLabel()
	p.expect(TokenLParen, "'('")
	tok := p.expect(TokenIdentifier, "a property name")
	propName := p.tree.newIdentifier(tok.Text, tok.Range)
	p.expect(TokenRParen, "')'")
	n, err := p.tree.newNodePropIndexCommand(drop, label, propName, p.rangeFrom(start))
	if err != nil {
		p.fail("%v", err)
	}
	return n
}

func (p *parser) parseConstraintCommand(start Position, drop bool) *ASTNode {
	p.expect(TokenCONSTRAINT, "CONSTRAINT")
	p.expect(TokenON, "ON")

	if p.at(TokenLParen) && p.peekAhead(1).Kind == TokenRParen {
		return p.parseRelPropExistenceConstraintCommand(start, drop)
	}

	p.expect(TokenLParen, "'('")
	idTok := p.expect(TokenIdentifier, "an identifier")
	identifier := p.tree.newIdentifier(idTok.Text, idTok.Range)
	p.expect(TokenColon, "':'")
	label := p.parseLabel()
	p.expect(TokenRParen, "')'")
	p.expect(TokenASSERT, "ASSERT")
	// stop below the IS NULL / IS NOT NULL level: the IS belongs to the command
	expr := p.parseExpr(precAdditive)
	p.expect(TokenIS, "IS")
	if p.at(TokenUNIQUE) {
		p.advance()
		n, err := p.tree.newUniqueNodePropConstraint(drop, identifier, label, expr, p.rangeFrom(start))
		if err != nil {
			p.fail("%v", err)
		}
		return n
	}
	p.expect(TokenNOT, "NOT")
	p.expect(TokenNULL, "NULL")
	n, err := p.tree.newNodePropExistenceConstraint(drop, identifier, label, expr, p.rangeFrom(start))
	if err != nil {
		p.fail("%v", err)
	}
	return n
}

func (p *parser) parseRelPropExistenceConstraintCommand(start Position, drop bool) *ASTNode {
	p.expect(TokenLParen, "'('")
	p.expect(TokenRParen, "')'")
	if p.at(TokenArrowLeft) {
		p.advance()
	} else {
		p.expect(TokenMinus, "'-'")
	}
	p.expect(TokenLBracket, "'['")
	idTok := p.expect(TokenIdentifier, "an identifier")
	identifier := p.tree.newIdentifier(idTok.Text, idTok.Range)
	p.expect(TokenColon, "':'")
	relType := p.parseRelTypeName()
	p.expect(TokenRBracket, "']'")
	if p.at(TokenArrowRight) {
		p.advance()
	} else {
		p.expect(TokenMinus, "'-'")
	}
	p.expect(TokenLParen, "'('")
	p.expect(TokenRParen, "')'")
	p.expect(TokenASSERT, "ASSERT")
	// stop below the IS NOT NULL level: the IS belongs to the command
	expr := p.parseExpr(precAdditive)
	p.expect(TokenIS, "IS")
	p.expect(TokenNOT, "NOT")
	p.expect(TokenNULL, "NULL")
	n, err := p.tree.newRelPropExistenceConstraint(drop, identifier, relType, expr, p.rangeFrom(start))
	if err != nil {
		p.fail("%v", err)
	}
	return n
}
