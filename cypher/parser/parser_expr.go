/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import "strings"

// Precedence levels, tightest-binds-highest, exactly the chain spec.md §4.E
// names: "OR < XOR < AND < NOT < comparison < string-pred (STARTS/ENDS/
// CONTAINS) < + - < * / % < ^ < unary + - < index/field/label".
const (
	precOr             = 1
	precXor            = 2
	precAnd            = 3
	precNot            = 4
	precComparison     = 5
	precStringPred     = 6
	precAdditive       = 7
	precMultiplicative = 8
	precPower          = 9
	precUnary          = 10
	_                  = 11 // postfix; parsePostfix runs outside the precedence table
)

func (p *parser) parseExpression() *ASTNode {
	return p.parseExpr(precOr)
}

/*
parseExpr is a standard precedence-climbing loop (cf. Crockford's TDOP
nud/led split, folded here into parseUnary for prefix position and the loop
body below for infix position).
*/
func (p *parser) parseExpr(minPrec int) *ASTNode {
	left := p.parseUnary()
	for {
		prec, rightAssoc, opText, ok := p.peekInfix()
		if !ok || prec < minPrec {
			return left
		}
		start := left.Range.Start
		p.consumeInfixTokens(opText)

		if opText == "IS NULL" || opText == "IS NOT NULL" {
			node, err := p.tree.newUnaryOperator(opText, left, p.rangeFrom(start))
			if err != nil {
				p.fail("%v", err)
			}
			left = node
			continue
		}

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right := p.parseExpr(nextMin)
		node, err := p.tree.newBinaryOperator(opText, left, right, p.rangeFrom(start))
		if err != nil {
			p.fail("%v", err)
		}
		left = node
	}
}

func (p *parser) peekInfix() (prec int, rightAssoc bool, opText string, ok bool) {
	switch p.curKind() {
	case TokenOR:
		return precOr, false, "OR", true
	case TokenXOR:
		return precXor, false, "XOR", true
	case TokenAND:
		return precAnd, false, "AND", true
	case TokenEquals:
		return precComparison, false, "=", true
	case TokenNeq:
		return precComparison, false, "<>", true
	case TokenLt:
		return precComparison, false, "<", true
	case TokenLe:
		return precComparison, false, "<=", true
	case TokenGt:
		return precComparison, false, ">", true
	case TokenGe:
		return precComparison, false, ">=", true
	case TokenSTARTS:
		if p.peekAhead(1).Kind == TokenWITH {
			return precStringPred, false, "STARTS WITH", true
		}
	case TokenENDS:
		if p.peekAhead(1).Kind == TokenWITH {
			return precStringPred, false, "ENDS WITH", true
		}
	case TokenCONTAINS:
		return precStringPred, false, "CONTAINS", true
	case TokenIN:
		return precStringPred, false, "IN", true
	case TokenIS:
		if p.peekAhead(1).Kind == TokenNOT && p.peekAhead(2).Kind == TokenNULL {
			return precStringPred, false, "IS NOT NULL", true
		}
		if p.peekAhead(1).Kind == TokenNULL {
			return precStringPred, false, "IS NULL", true
		}
	case TokenPlus:
		return precAdditive, false, "+", true
	case TokenMinus:
		return precAdditive, false, "-", true
	case TokenStar:
		return precMultiplicative, false, "*", true
	case TokenSlash:
		return precMultiplicative, false, "/", true
	case TokenPercent:
		return precMultiplicative, false, "%", true
	case TokenCaret:
		return precPower, true, "^", true
	}
	return 0, false, "", false
}

func (p *parser) consumeInfixTokens(opText string) {
	switch opText {
	case "STARTS WITH", "ENDS WITH":
		p.advance()
		p.advance()
	case "IS NOT NULL":
		p.advance()
		p.advance()
		p.advance()
	case "IS NULL":
		p.advance()
		p.advance()
	default:
		p.advance()
	}
}

func (p *parser) parseUnary() *ASTNode {
	switch p.curKind() {
	case TokenNOT:
		start := p.cur().Range.Start
		p.advance()
		operand := p.parseExpr(precComparison)
		node, err := p.tree.newUnaryOperator("NOT", operand, p.rangeFrom(start))
		if err != nil {
			p.fail("%v", err)
		}
		return node
	case TokenMinus:
		start := p.cur().Range.Start
		p.advance()
		operand := p.parseExpr(precUnary)
		node, err := p.tree.newUnaryOperator("-", operand, p.rangeFrom(start))
		if err != nil {
			p.fail("%v", err)
		}
		return node
	case TokenPlus:
		start := p.cur().Range.Start
		p.advance()
		operand := p.parseExpr(precUnary)
		node, err := p.tree.newUnaryOperator("+", operand, p.rangeFrom(start))
		if err != nil {
			p.fail("%v", err)
		}
		return node
	default:
		return p.parsePostfix(p.parsePrimary(), true)
	}
}

/*
parsePostfix chains field access, indexing/slicing and (optionally) label
checks onto primary. allowLabelCheck is false when called from a SET/REMOVE
target, where a trailing ":Label" belongs to the clause, not the
expression (see parser_clauses.go's parseSetTarget).
*/
func (p *parser) parsePostfix(primary *ASTNode, allowLabelCheck bool) *ASTNode {
	for {
		switch p.curKind() {
		case TokenDot:
			p.advance()
			tok := p.expect(TokenIdentifier, "a property name")
			node, err := p.tree.newPropertyAccess(primary, tok.Text, p.rangeFrom(primary.Range.Start))
			if err != nil {
				p.fail("%v", err)
			}
			primary = node

		case TokenLBracket:
			p.advance()
			if p.at(TokenDotDot) {
				p.advance()
				var to *ASTNode
				if !p.at(TokenRBracket) {
					to = p.parseExpression()
				}
				p.expect(TokenRBracket, "']'")
				node, err := p.tree.newSlice(primary, nil, to, p.rangeFrom(primary.Range.Start))
				if err != nil {
					p.fail("%v", err)
				}
				primary = node
				continue
			}
			idx := p.parseExpression()
			if p.at(TokenDotDot) {
				p.advance()
				var to *ASTNode
				if !p.at(TokenRBracket) {
					to = p.parseExpression()
				}
				p.expect(TokenRBracket, "']'")
				node, err := p.tree.newSlice(primary, idx, to, p.rangeFrom(primary.Range.Start))
				if err != nil {
					p.fail("%v", err)
				}
				primary = node
				continue
			}
			p.expect(TokenRBracket, "']'")
			node, err := p.tree.newIndexAccess(primary, idx, p.rangeFrom(primary.Range.Start))
			if err != nil {
				p.fail("%v", err)
			}
			primary = node

		case TokenColon:
			if !allowLabelCheck || p.peekAhead(1).Kind != TokenIdentifier {
				return primary
			}
			var labels []string
			for p.at(TokenColon) {
				p.advance()
				tok := p.expect(TokenIdentifier, "a label name")
				labels = append(labels, tok.Text)
			}
			node, err := p.tree.newLabelCheck(primary, labels, p.rangeFrom(primary.Range.Start))
			if err != nil {
				p.fail("%v", err)
			}
			primary = node

		default:
			return primary
		}
	}
}

func (p *parser) parsePrimary() *ASTNode {
	start := p.cur().Range.Start
	switch p.curKind() {
	case TokenInteger:
		tok := p.advance()
		return p.tree.newInteger(tok.Text, tok.Range)
	case TokenFloat:
		tok := p.advance()
		return p.tree.newFloat(tok.Text, tok.Range)
	case TokenString:
		tok := p.advance()
		return p.tree.newString(tok.Value, tok.Range)
	case TokenTRUE:
		p.advance()
		return p.tree.newBoolean(true, p.rangeFrom(start))
	case TokenFALSE:
		p.advance()
		return p.tree.newBoolean(false, p.rangeFrom(start))
	case TokenNULL:
		p.advance()
		return p.tree.newNullLiteral(p.rangeFrom(start))
	case TokenParameter:
		tok := p.advance()
		return p.tree.newParameter(tok.Value, tok.Range)
	case TokenLParen:
		p.advance()
		expr := p.parseExpression()
		p.expect(TokenRParen, "')'")
		return expr
	case TokenLBracket:
		return p.parseBracketExpr()
	case TokenLBrace:
		return p.parseMapLiteral()
	case TokenCASE:
		return p.parseCaseExpression()
	case TokenANY, TokenALL, TokenNONE, TokenSINGLE:
		return p.parsePredicateFunction()
	case TokenEXTRACT, TokenFILTER:
		return p.parseExtractOrFilter()
	case TokenREDUCE:
		return p.parseReduceExpression()
	case TokenIdentifier:
		tok := p.advance()
		if p.at(TokenLParen) {
			return p.parseFunctionCall(tok)
		}
		return p.tree.newIdentifier(tok.Text, tok.Range)
	default:
		p.fail("expected an expression, found %s", p.describeCurrent())
		return nil
	}
}

func (p *parser) parseFunctionCall(nameTok Token) *ASTNode {
	start := nameTok.Range.Start
	p.expect(TokenLParen, "'('")
	distinct := false
	if p.at(TokenDISTINCT) {
		p.advance()
		distinct = true
	}
	var args []*ASTNode
	if p.at(TokenStar) {
		tok := p.advance()
		args = append(args, p.tree.newIdentifier("*", tok.Range))
	} else if !p.at(TokenRParen) {
		args = append(args, p.parseExpression())
		for p.at(TokenComma) {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(TokenRParen, "')'")
	return p.tree.newFunctionInvocation(nameTok.Text, distinct, args, p.rangeFrom(start))
}

func (p *parser) parseBracketExpr() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenLBracket, "'['")
	if p.at(TokenRBracket) {
		p.advance()
		return p.tree.newListLiteral(nil, p.rangeFrom(start))
	}

	if isIdentToken(p.curKind()) && p.peekAhead(1).Kind == TokenEquals && p.peekAhead(2).Kind == TokenLParen {
		tok := p.advance()
		variable := p.tree.newIdentifier(tok.Text, tok.Range)
		p.advance() // '='
		pattern := p.parsePatternPath()
		return p.finishPatternComprehension(start, variable, pattern)
	}

	if isIdentToken(p.curKind()) && p.peekAhead(1).Kind == TokenIN {
		tok := p.advance()
		variable := p.tree.newIdentifier(tok.Text, tok.Range)
		p.advance() // IN
		inList := p.parseExpression()
		var pred *ASTNode
		if p.at(TokenWHERE) {
			p.advance()
			pred = p.parseExpression()
		}
		var eval *ASTNode
		if p.at(TokenPipe) {
			p.advance()
			eval = p.parseExpression()
		}
		p.expect(TokenRBracket, "']'")
		return p.tree.newListComprehension(variable, inList, pred, eval, p.rangeFrom(start))
	}

	if p.at(TokenLParen) {
		pattern := p.parsePatternPath()
		return p.finishPatternComprehension(start, nil, pattern)
	}

	items := []*ASTNode{p.parseExpression()}
	for p.at(TokenComma) {
		p.advance()
		items = append(items, p.parseExpression())
	}
	p.expect(TokenRBracket, "']'")
	return p.tree.newListLiteral(items, p.rangeFrom(start))
}

func (p *parser) finishPatternComprehension(start Position, variable, pattern *ASTNode) *ASTNode {
	var pred *ASTNode
	if p.at(TokenWHERE) {
		p.advance()
		pred = p.parseExpression()
	}
	p.expect(TokenPipe, "'|'")
	eval := p.parseExpression()
	p.expect(TokenRBracket, "']'")
	return p.tree.newPatternComprehension(variable, pattern, pred, eval, p.rangeFrom(start))
}

func (p *parser) parsePredicateFunction() *ASTNode {
	start := p.cur().Range.Start
	fnTok := p.advance()
	p.expect(TokenLParen, "'('")
	varTok := p.expect(TokenIdentifier, "a variable")
	variable := p.tree.newIdentifier(varTok.Text, varTok.Range)
	p.expect(TokenIN, "IN")
	inList := p.parseExpression()
	var pred *ASTNode
	if p.at(TokenWHERE) {
		p.advance()
		pred = p.parseExpression()
	}
	p.expect(TokenRParen, "')'")
	return p.tree.newPredicateFunction(strings.ToUpper(fnTok.Text), variable, inList, pred, p.rangeFrom(start))
}

func (p *parser) parseExtractOrFilter() *ASTNode {
	start := p.cur().Range.Start
	p.advance() // EXTRACT or FILTER
	p.expect(TokenLParen, "'('")
	varTok := p.expect(TokenIdentifier, "a variable")
	variable := p.tree.newIdentifier(varTok.Text, varTok.Range)
	p.expect(TokenIN, "IN")
	inList := p.parseExpression()
	var pred, eval *ASTNode
	if p.at(TokenWHERE) {
		p.advance()
		pred = p.parseExpression()
	}
	if p.at(TokenPipe) {
		p.advance()
		eval = p.parseExpression()
	}
	p.expect(TokenRParen, "')'")
	return p.tree.newListComprehension(variable, inList, pred, eval, p.rangeFrom(start))
}

func (p *parser) parseReduceExpression() *ASTNode {
	start := p.cur().Range.Start
	p.advance() // REDUCE
	p.expect(TokenLParen, "'('")
	accTok := p.expect(TokenIdentifier, "an accumulator")
	accumulator := p.tree.newIdentifier(accTok.Text, accTok.Range)
	p.expect(TokenEquals, "'='")
	init := p.parseExpression()
	p.expect(TokenComma, "','")
	varTok := p.expect(TokenIdentifier, "a variable")
	variable := p.tree.newIdentifier(varTok.Text, varTok.Range)
	p.expect(TokenIN, "IN")
	inList := p.parseExpression()
	p.expect(TokenPipe, "'|'")
	eval := p.parseExpression()
	p.expect(TokenRParen, "')'")
	return p.tree.newReduceExpression(accumulator, init, variable, inList, eval, p.rangeFrom(start))
}

func (p *parser) parseCaseExpression() *ASTNode {
	start := p.cur().Range.Start
	p.advance() // CASE
	var subject *ASTNode
	if !p.at(TokenWHEN) {
		subject = p.parseExpression()
	}
	var alternatives []*ASTNode
	for p.at(TokenWHEN) {
		altStart := p.cur().Range.Start
		p.advance()
		when := p.parseExpression()
		p.expect(TokenTHEN, "THEN")
		then := p.parseExpression()
		alt, err := p.tree.newCaseAlternative(when, then, p.rangeFrom(altStart))
		if err != nil {
			p.fail("%v", err)
		}
		alternatives = append(alternatives, alt)
	}
	if len(alternatives) == 0 {
		p.fail("expected at least one WHEN branch")
	}
	var elseExpr *ASTNode
	if p.at(TokenELSE) {
		p.advance()
		elseExpr = p.parseExpression()
	}
	p.expect(TokenEND, "END")
	return p.tree.newCaseExpression(subject, alternatives, elseExpr, p.rangeFrom(start))
}

func (p *parser) parseMapLiteral() *ASTNode {
	start := p.cur().Range.Start
	p.expect(TokenLBrace, "'{'")
	var entries []*ASTNode
	if !p.at(TokenRBrace) {
		entries = append(entries, p.parseMapEntry())
		for p.at(TokenComma) {
			p.advance()
			entries = append(entries, p.parseMapEntry())
		}
	}
	p.expect(TokenRBrace, "'}'")
	return p.tree.newMapLiteral(entries, p.rangeFrom(start))
}

func (p *parser) parseMapEntry() *ASTNode {
	start := p.cur().Range.Start
	keyTok := p.expect(TokenIdentifier, "a map key")
	p.expect(TokenColon, "':'")
	value := p.parseExpression()
	n, err := p.tree.newMapEntry(keyTok.Text, value, p.rangeFrom(start))
	if err != nil {
		p.fail("%v", err)
	}
	return n
}
