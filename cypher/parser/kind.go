/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

/*
Kind is the closed-set discriminator of an AST node, stable for a given
minor version per spec.md §6.

libcypher-parser gives every kind its own C struct and a per-kind vtable
listing abstract parent kinds (see original_source/src/lib/ast_float.c's
cypher_float_astnode_vt). Go has no inheritance, so this module represents
that "is-a" chain as a precomputed ancestor set attached to a single tagged
struct (ASTNode) instead — the same generalization the EQL teacher already
made by giving every one of its own node kinds the same ASTNode type.
*/
type Kind int

// Abstract parent kinds. No node is ever constructed with one of these as
// its own Kind; they exist only to appear in other kinds' ancestor sets.
const (
	KindInvalid Kind = iota

	KindDirective
	KindStatementBody
	KindClause
	KindExpression
	KindPatternElement
	KindSchemaCommand

	kindConcreteStart
)

// Concrete kinds, grouped as in SPEC_FULL.md §4.C.
const (
	// literals & leaves
	KindIdentifier Kind = kindConcreteStart + iota
	KindParameter
	KindInteger
	KindFloat
	KindString
	KindBoolean
	KindNullLiteral
	KindListLiteral
	KindMapLiteral
	KindMapEntry

	// operators & expression forms
	KindBinaryOperator
	KindUnaryOperator
	KindPropertyAccess
	KindIndexAccess
	KindSlice
	KindLabelCheck
	KindFunctionInvocation
	KindCaseExpression
	KindCaseAlternative
	KindListComprehension
	KindPatternComprehension
	KindPredicateFunction
	KindReduceExpression

	// pattern
	KindPattern
	KindPatternPath
	KindNodePattern
	KindRelPattern
	KindLabel
	KindRelTypeName
	KindRangeLiteral

	// clauses
	KindMatch
	KindCreate
	KindMerge
	KindMergeAction
	KindDelete
	KindRemove
	KindRemoveItem
	KindSet
	KindSetItem
	KindWith
	KindReturn
	KindProjection
	KindOrderBy
	KindSortItem
	KindUnwind
	KindForeach
	KindLoadCSV
	KindStart
	KindStartPoint
	KindUnion
	KindQuery

	// schema commands
	KindCreateNodePropIndex
	KindDropNodePropIndex
	KindCreateUniqueNodePropConstraint
	KindDropUniqueNodePropConstraint
	KindCreateNodePropExistenceConstraint
	KindDropNodePropExistenceConstraint
	KindCreateRelPropExistenceConstraint
	KindDropRelPropExistenceConstraint

	// commands & comments
	KindClientCommand
	KindLineComment
	KindBlockComment

	kindConcreteEnd
)

/*
kindInfo is the per-kind metadata record: name, declared parent kinds and
required named slots. Grounded on the (name, parents, detailstr) fields of
libcypher-parser's cypher_astnode_vt.
*/
type kindInfo struct {
	name    string
	parents []Kind
	slots   []string
}

var kindTable = map[Kind]*kindInfo{
	KindDirective:      {name: "DIRECTIVE"},
	KindStatementBody:  {name: "STATEMENT_BODY", parents: []Kind{KindDirective}},
	KindClause:         {name: "CLAUSE"},
	KindExpression:     {name: "EXPRESSION"},
	KindPatternElement: {name: "PATTERN_ELEMENT"},
	KindSchemaCommand:  {name: "SCHEMA_COMMAND", parents: []Kind{KindStatementBody}},

	KindIdentifier:  {name: "IDENTIFIER", parents: []Kind{KindExpression}},
	KindParameter:   {name: "PARAMETER", parents: []Kind{KindExpression}},
	KindInteger:     {name: "INTEGER", parents: []Kind{KindExpression}},
	KindFloat:       {name: "FLOAT", parents: []Kind{KindExpression}},
	KindString:      {name: "STRING", parents: []Kind{KindExpression}},
	KindBoolean:     {name: "BOOLEAN", parents: []Kind{KindExpression}},
	KindNullLiteral: {name: "NULL", parents: []Kind{KindExpression}},
	KindListLiteral: {name: "LIST", parents: []Kind{KindExpression}},
	KindMapLiteral:  {name: "MAP", parents: []Kind{KindExpression}},
	KindMapEntry:    {name: "MAP_ENTRY", slots: []string{"value"}},

	KindBinaryOperator:       {name: "BINARY_OPERATOR", parents: []Kind{KindExpression}, slots: []string{"left", "right"}},
	KindUnaryOperator:        {name: "UNARY_OPERATOR", parents: []Kind{KindExpression}, slots: []string{"operand"}},
	KindPropertyAccess:       {name: "PROPERTY_ACCESS", parents: []Kind{KindExpression}, slots: []string{"subject"}},
	KindIndexAccess:          {name: "INDEX_ACCESS", parents: []Kind{KindExpression}, slots: []string{"subject", "index"}},
	KindSlice:                {name: "SLICE", parents: []Kind{KindExpression}, slots: []string{"subject"}},
	KindLabelCheck:           {name: "LABEL_CHECK", parents: []Kind{KindExpression}, slots: []string{"subject"}},
	KindFunctionInvocation:   {name: "FUNCTION_INVOCATION", parents: []Kind{KindExpression}},
	KindCaseExpression:       {name: "CASE_EXPRESSION", parents: []Kind{KindExpression}},
	KindCaseAlternative:      {name: "CASE_ALTERNATIVE", slots: []string{"when", "then"}},
	KindListComprehension:    {name: "LIST_COMPREHENSION", parents: []Kind{KindExpression}, slots: []string{"variable", "inList"}},
	KindPatternComprehension: {name: "PATTERN_COMPREHENSION", parents: []Kind{KindExpression}, slots: []string{"pattern", "eval"}},
	KindPredicateFunction:    {name: "PREDICATE_FUNCTION", parents: []Kind{KindExpression}, slots: []string{"variable", "inList"}},
	KindReduceExpression:     {name: "REDUCE_EXPRESSION", parents: []Kind{KindExpression}, slots: []string{"accumulator", "init", "variable", "inList", "eval"}},

	KindPattern:     {name: "PATTERN"},
	KindPatternPath: {name: "PATTERN_PATH", parents: []Kind{KindPatternElement}},
	KindNodePattern: {name: "NODE_PATTERN", parents: []Kind{KindPatternElement}},
	KindRelPattern:  {name: "REL_PATTERN", parents: []Kind{KindPatternElement}},
	KindLabel:       {name: "LABEL"},
	KindRelTypeName: {name: "RELTYPE_NAME"},
	KindRangeLiteral: {name: "RANGE_LITERAL"},

	KindMatch:      {name: "MATCH", parents: []Kind{KindClause}, slots: []string{"pattern"}},
	KindCreate:     {name: "CREATE", parents: []Kind{KindClause}, slots: []string{"pattern"}},
	KindMerge:      {name: "MERGE", parents: []Kind{KindClause}, slots: []string{"pattern"}},
	KindMergeAction: {name: "MERGE_ACTION"},
	KindDelete:     {name: "DELETE", parents: []Kind{KindClause}},
	KindRemove:     {name: "REMOVE", parents: []Kind{KindClause}},
	KindRemoveItem: {name: "REMOVE_ITEM", slots: []string{"subject"}},
	KindSet:        {name: "SET", parents: []Kind{KindClause}},
	KindSetItem:    {name: "SET_ITEM", slots: []string{"target"}},
	KindWith:       {name: "WITH", parents: []Kind{KindClause}},
	KindReturn:     {name: "RETURN", parents: []Kind{KindClause}},
	KindProjection: {name: "PROJECTION", slots: []string{"expression"}},
	KindOrderBy:    {name: "ORDER_BY"},
	KindSortItem:   {name: "SORT_ITEM", slots: []string{"expression"}},
	KindUnwind:     {name: "UNWIND", parents: []Kind{KindClause}, slots: []string{"expression", "variable"}},
	KindForeach:    {name: "FOREACH", parents: []Kind{KindClause}, slots: []string{"variable", "inList"}},
	KindLoadCSV:    {name: "LOAD_CSV", parents: []Kind{KindClause}, slots: []string{"url", "variable"}},
	KindStart:      {name: "START", parents: []Kind{KindClause}},
	KindStartPoint: {name: "START_POINT", slots: []string{"variable"}},
	KindUnion:      {name: "UNION", parents: []Kind{KindClause}},
	KindQuery:      {name: "QUERY", parents: []Kind{KindStatementBody}},

	KindCreateNodePropIndex:               {name: "CREATE_NODE_PROP_INDEX", parents: []Kind{KindSchemaCommand}, slots: []string{"label", "propName"}},
	KindDropNodePropIndex:                 {name: "DROP_NODE_PROP_INDEX", parents: []Kind{KindSchemaCommand}, slots: []string{"label", "propName"}},
	KindCreateUniqueNodePropConstraint:    {name: "CREATE_UNIQUE_NODE_PROP_CONSTRAINT", parents: []Kind{KindSchemaCommand}, slots: []string{"identifier", "label", "expression"}},
	KindDropUniqueNodePropConstraint:      {name: "DROP_UNIQUE_NODE_PROP_CONSTRAINT", parents: []Kind{KindSchemaCommand}, slots: []string{"identifier", "label", "expression"}},
	KindCreateNodePropExistenceConstraint: {name: "CREATE_NODE_PROP_EXISTENCE_CONSTRAINT", parents: []Kind{KindSchemaCommand}, slots: []string{"identifier", "label", "expression"}},
	KindDropNodePropExistenceConstraint:   {name: "DROP_NODE_PROP_EXISTENCE_CONSTRAINT", parents: []Kind{KindSchemaCommand}, slots: []string{"identifier", "label", "expression"}},
	KindCreateRelPropExistenceConstraint:  {name: "CREATE_REL_PROP_EXISTENCE_CONSTRAINT", parents: []Kind{KindSchemaCommand}, slots: []string{"identifier", "relType", "expression"}},
	KindDropRelPropExistenceConstraint:    {name: "DROP_REL_PROP_EXISTENCE_CONSTRAINT", parents: []Kind{KindSchemaCommand}, slots: []string{"identifier", "relType", "expression"}},

	KindClientCommand: {name: "CLIENT_COMMAND", parents: []Kind{KindDirective}},
	KindLineComment:   {name: "LINE_COMMENT", parents: []Kind{KindDirective}},
	KindBlockComment:  {name: "BLOCK_COMMENT", parents: []Kind{KindDirective}},
}

// ancestorSets holds the transitive closure of each kind's declared parents,
// computed once in init() the way original_source's vtables are fixed at
// compile time.
var ancestorSets = map[Kind]map[Kind]bool{}

func init() {
	for k := range kindTable {
		ancestorSets[k] = closeAncestors(k, map[Kind]bool{})
	}
}

func closeAncestors(k Kind, seen map[Kind]bool) map[Kind]bool {
	info := kindTable[k]
	if info == nil {
		return seen
	}
	for _, p := range info.parents {
		if seen[p] {
			continue
		}
		seen[p] = true
		closeAncestors(p, seen)
	}
	return seen
}

/*
String returns the kind's stable uppercase name, e.g. "BINARY_OPERATOR".
*/
func (k Kind) String() string {
	if info := kindTable[k]; info != nil {
		return info.name
	}
	return "INVALID"
}

/*
Is reports whether k is exactly other.
*/
func (k Kind) Is(other Kind) bool {
	return k == other
}

/*
IsA reports whether other is k itself or a declared ancestor of k, i.e.
whether a node of kind k may be used wherever a node "of kind other" is
required (spec.md §3 "Parent-kind chain").
*/
func (k Kind) IsA(other Kind) bool {
	if k == other {
		return true
	}
	return ancestorSets[k][other]
}

func requiredSlots(k Kind) []string {
	if info := kindTable[k]; info != nil {
		return info.slots
	}
	return nil
}
