/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import "fmt"

/*
recoveryState is the explicit NORMAL/SYNCHRONIZING state spec.md §9 asks for
("keep this explicit rather than encoding via control-flow unwinding"). The
state itself only ever reads as NORMAL between directives and
SYNCHRONIZING while synchronize is skipping tokens; getting from "a
constructor deep in the call stack hit a syntax error" to "synchronize runs
at the directive boundary" still uses a local panic/recover (bailout),
mirrored on go/parser's own ParseFile, since threading an error return
through every one of this grammar's ~40 parse functions would bury the
control flow the state machine is meant to keep visible.
*/
type recoveryState int

const (
	stateNormal recoveryState = iota
	stateSynchronizing
)

// bailout unwinds to the nearest parseDirective call after fail records a
// diagnostic; it never escapes the parser package.
type bailout struct{}

/*
parser drives the recursive-descent, precedence-climbing grammar over a
pre-lexed, error-token-filtered stream (Component E). Grounded structurally
on src/devt.de/eliasdb/eql/parser's recursive-descent parser functions,
generalized from EQL's grammar to Cypher's per spec.md §4.E.
*/
type parser struct {
	tokens []Token
	pos    int
	tree   *tree
	errs   *ErrorList
	source string
	state  recoveryState
}

func newParser(source string) *parser {
	tokens := lexAll(source)
	errs := &ErrorList{}
	filtered := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == TokenError {
			errs.add(t.Range.Start, t.Text, source)
			continue
		}
		filtered = append(filtered, t)
	}
	return &parser{tokens: filtered, tree: newTree(), errs: errs, source: source}
}

func (p *parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *parser) curKind() TokenKind {
	return p.cur().Kind
}

func (p *parser) at(k TokenKind) bool {
	return p.curKind() == k
}

func (p *parser) atEOF() bool {
	return p.curKind() == TokenEOF
}

func (p *parser) peekAhead(n int) Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *parser) advance() Token {
	t := p.cur()
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(k TokenKind, what string) Token {
	if p.curKind() != k {
		p.fail("expected %s, found %s", what, p.describeCurrent())
	}
	return p.advance()
}

func (p *parser) describeCurrent() string {
	t := p.cur()
	if t.Kind == TokenEOF {
		return "end of input"
	}
	return t.String()
}

// rangeFrom closes a range that started at start, ending at the last
// consumed token.
func (p *parser) rangeFrom(start Position) Range {
	end := start
	if p.pos > 0 {
		end = p.tokens[p.pos-1].Range.End
	}
	return Range{Start: start, End: end}
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errs.add(p.cur().Range.Start, fmt.Sprintf(format, args...), p.source)
}

func (p *parser) fail(format string, args ...interface{}) {
	p.errorf(format, args...)
	panic(bailout{})
}

/*
synchronize implements the SYNCHRONIZING -> NORMAL transition: skip tokens
until a statement terminator or a token that can legally open a new
directive, per the Open Question decision recorded in DESIGN.md.
*/
func (p *parser) synchronize() {
	p.state = stateSynchronizing
	defer func() { p.state = stateNormal }()

	for {
		switch p.curKind() {
		case TokenEOF:
			return
		case TokenSemicolon:
			p.advance()
			return
		case TokenMATCH, TokenOPTIONAL, TokenCREATE, TokenMERGE, TokenDELETE, TokenDETACH,
			TokenREMOVE, TokenSET, TokenWITH, TokenUNWIND, TokenFOREACH, TokenLOAD,
			TokenRETURN, TokenSTART, TokenUNION,
			TokenLineComment, TokenBlockComment, TokenClientCommand:
			return
		case TokenDROP:
			if p.isSchemaCommandStart() {
				return
			}
			p.advance()
		default:
			p.advance()
		}
	}
}

/*
parseDirective parses exactly one top-level directive, recovering internally
on syntax error: it records a diagnostic, synchronizes, and returns
ok=false rather than letting a bailout escape to the caller.
*/
func (p *parser) parseDirective() (node *ASTNode, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); isBailout {
				p.synchronize()
				node, ok = nil, false
				return
			}
			panic(r)
		}
	}()
	return p.directiveBody(), true
}

func (p *parser) directiveBody() *ASTNode {
	switch p.curKind() {
	case TokenLineComment:
		tok := p.advance()
		return p.tree.newLineComment(tok.Value, tok.Range)
	case TokenBlockComment:
		tok := p.advance()
		return p.tree.newBlockComment(tok.Value, tok.Range)
	case TokenClientCommand:
		tok := p.advance()
		return p.tree.newClientCommand(tok.Value, tok.Range)
	case TokenCREATE, TokenDROP:
		if p.isSchemaCommandStart() {
			return p.parseSchemaCommand()
		}
		return p.parseQuery()
	default:
		return p.parseQuery()
	}
}

func (p *parser) isSchemaCommandStart() bool {
	k := p.peekAhead(1).Kind
	return k == TokenINDEX || k == TokenCONSTRAINT
}

func isIdentToken(k TokenKind) bool {
	return k == TokenIdentifier
}

/*
Result is the parse result, owning every AST node reachable from its
directives and every diagnostic recorded during the parse (spec.md §3
"Parse result"). Exported so the cypher package can build its public
Result type directly from this one without re-walking the tree.
*/
type Result struct {
	directives []*ASTNode
	errorList  *ErrorList
	source     string
}

func (r *Result) Directives() []*ASTNode {
	return r.directives
}

func (r *Result) Errors() []*Error {
	return r.errorList.List()
}

func (r *Result) Source() string {
	return r.source
}

/*
Parse tokenizes and parses source in full, returning every directive it
could recover, accumulated into a single Result (spec.md §6 batch API).
*/
func Parse(source string) *Result {
	return ParseWithCallback(source, nil)
}

/*
ParseWithCallback parses source directive-at-a-time, invoking callback
after each one; callback returning false halts further parsing (spec.md
§4.E "Streaming", §5 "cancellation is cooperative at the directive
boundary"). A nil callback behaves exactly like Parse.
*/
func ParseWithCallback(source string, callback func(*ASTNode) bool) *Result {
	p := newParser(source)
	for {
		for p.at(TokenSemicolon) {
			p.advance()
		}
		if p.atEOF() {
			break
		}
		node, ok := p.parseDirective()
		if ok && node != nil {
			p.tree.addDirective(node)
			if callback != nil && !callback(node) {
				break
			}
		}
	}
	p.tree.assignOrdinals()
	return &Result{directives: p.tree.directives, errorList: p.errs, source: source}
}
