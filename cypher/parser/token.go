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
TokenKind identifies the lexical category of a Token.
*/
type TokenKind int

/*
Token categories. Grouped the way eql/parser/const.go groups its LexTokenID
constants: errors/EOF, then values, then a separator, then symbols, then a
separator, then keywords.
*/
const (
	TokenError TokenKind = iota
	TokenEOF

	TokenIdentifier
	TokenParameter
	TokenInteger
	TokenFloat
	TokenString
	TokenLineComment
	TokenBlockComment
	TokenClientCommand // ":command ..." sigil line

	tokenSymbolsStart

	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenDot
	TokenDotDot
	TokenColon
	TokenSemicolon
	TokenPipe
	TokenEquals
	TokenPlusEquals
	TokenNeq
	TokenLt
	TokenLe
	TokenGt
	TokenGe
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenCaret
	TokenArrowLeft  // <-
	TokenArrowRight // ->
	TokenDashDash   // --  (undirected relationship dash)

	tokenKeywordsStart

	TokenAND
	TokenOR
	TokenXOR
	TokenNOT
	TokenTRUE
	TokenFALSE
	TokenNULL
	TokenIN
	TokenSTARTS
	TokenENDS
	TokenCONTAINS
	TokenWITH
	TokenAS
	TokenDISTINCT
	TokenORDER
	TokenBY
	TokenSKIP
	TokenLIMIT
	TokenASC
	TokenASCENDING
	TokenDESC
	TokenDESCENDING
	TokenMATCH
	TokenOPTIONAL
	TokenWHERE
	TokenRETURN
	TokenCREATE
	TokenMERGE
	TokenDELETE
	TokenDETACH
	TokenREMOVE
	TokenSET
	TokenUNWIND
	TokenFOREACH
	TokenLOAD
	TokenCSV
	TokenHEADERS
	TokenFROM
	TokenFIELDTERMINATOR
	TokenSTART
	TokenUNION
	TokenALL
	TokenON
	TokenCASE
	TokenWHEN
	TokenTHEN
	TokenELSE
	TokenEND
	TokenANY
	TokenNONE
	TokenSINGLE
	TokenEXTRACT
	TokenFILTER
	TokenREDUCE
	TokenINDEX
	TokenCONSTRAINT
	TokenDROP
	TokenASSERT
	TokenUNIQUE
	TokenEXISTS
	TokenIS
)

var keywordMap = map[string]TokenKind{
	"and": TokenAND, "or": TokenOR, "xor": TokenXOR, "not": TokenNOT,
	"true": TokenTRUE, "false": TokenFALSE, "null": TokenNULL,
	"in": TokenIN, "starts": TokenSTARTS, "ends": TokenENDS, "contains": TokenCONTAINS,
	"with": TokenWITH, "as": TokenAS, "distinct": TokenDISTINCT,
	"order": TokenORDER, "by": TokenBY, "skip": TokenSKIP, "limit": TokenLIMIT,
	"asc": TokenASC, "ascending": TokenASCENDING, "desc": TokenDESC, "descending": TokenDESCENDING,
	"match": TokenMATCH, "optional": TokenOPTIONAL, "where": TokenWHERE, "return": TokenRETURN,
	"create": TokenCREATE, "merge": TokenMERGE, "delete": TokenDELETE, "detach": TokenDETACH,
	"remove": TokenREMOVE, "set": TokenSET, "unwind": TokenUNWIND, "foreach": TokenFOREACH,
	"load": TokenLOAD, "csv": TokenCSV, "headers": TokenHEADERS, "from": TokenFROM,
	"fieldterminator": TokenFIELDTERMINATOR, "start": TokenSTART, "union": TokenUNION, "all": TokenALL,
	"on": TokenON, "case": TokenCASE, "when": TokenWHEN, "then": TokenTHEN, "else": TokenELSE,
	"end": TokenEND, "any": TokenANY, "none": TokenNONE, "single": TokenSINGLE,
	"extract": TokenEXTRACT, "filter": TokenFILTER, "reduce": TokenREDUCE,
	"index": TokenINDEX, "constraint": TokenCONSTRAINT, "drop": TokenDROP, "assert": TokenASSERT,
	"unique": TokenUNIQUE, "exists": TokenEXISTS, "is": TokenIS,
}

var tokenKindNames = map[TokenKind]string{
	TokenError: "error", TokenEOF: "EOF",
	TokenIdentifier: "identifier", TokenParameter: "parameter", TokenInteger: "integer",
	TokenFloat: "float", TokenString: "string", TokenLineComment: "line comment",
	TokenBlockComment: "block comment", TokenClientCommand: "client command",
	TokenLParen: "(", TokenRParen: ")", TokenLBracket: "[", TokenRBracket: "]",
	TokenLBrace: "{", TokenRBrace: "}", TokenComma: ",", TokenDot: ".", TokenDotDot: "..",
	TokenColon: ":", TokenSemicolon: ";", TokenPipe: "|", TokenEquals: "=", TokenPlusEquals: "+=",
	TokenNeq: "<>", TokenLt: "<", TokenLe: "<=", TokenGt: ">", TokenGe: ">=",
	TokenPlus: "+", TokenMinus: "-", TokenStar: "*", TokenSlash: "/", TokenPercent: "%",
	TokenCaret: "^", TokenArrowLeft: "<-", TokenArrowRight: "->", TokenDashDash: "--",
}

/*
String returns a human-readable name for a token kind, falling back to the
keyword spelling for keyword tokens.
*/
func (k TokenKind) String() string {
	if n, ok := tokenKindNames[k]; ok {
		return n
	}
	for word, kk := range keywordMap {
		if kk == k {
			return word
		}
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

func (k TokenKind) isKeyword() bool {
	return k > tokenKeywordsStart
}

/*
Token is a single lexical unit with its source range.
*/
type Token struct {
	Kind  TokenKind
	Text  string // literal source text (unprocessed, except value tokens below)
	Value string // decoded value for TokenString (escapes resolved) and comments (body text)
	Range Range
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "<EOF>"
	}
	if t.Kind == TokenError {
		return fmt.Sprintf("<error: %s>", t.Text)
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
