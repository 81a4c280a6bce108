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

func parseSingleDirective(t *testing.T, source string) *ASTNode {
	res := Parse(source)
	require.Empty(t, res.Errors(), "unexpected parse errors for %q: %v", source, res.Errors())
	require.Len(t, res.Directives(), 1)
	return res.Directives()[0]
}

func TestClauseMergeWithOnCreateAndOnMatch(t *testing.T) {
	query := parseSingleDirective(t, "MERGE (n:Person) ON CREATE SET n.created = true ON MATCH SET n.seen = n.seen + 1 RETURN n")
	merge := query.Children[0]
	require.Equal(t, KindMerge, merge.Kind)
	require.Len(t, merge.Children, 3) // pattern, ON CREATE action, ON MATCH action

	onCreate := merge.Children[1]
	onMatch := merge.Children[2]
	assert.Equal(t, KindMergeAction, onCreate.Kind)
	assert.Equal(t, "CREATE", onCreate.Text)
	assert.Equal(t, KindMergeAction, onMatch.Kind)
	assert.Equal(t, "MATCH", onMatch.Text)
}

func TestClauseMergeWithoutActionsHasOnlyPattern(t *testing.T) {
	query := parseSingleDirective(t, "MERGE (n:Person) RETURN n")
	merge := query.Children[0]
	require.Len(t, merge.Children, 1)
}

func TestClauseSetPropertyAssignment(t *testing.T) {
	query := parseSingleDirective(t, "MATCH (n) SET n.name = 'x' RETURN n")
	match := query.Children[0]
	require.Equal(t, KindMatch, match.Kind)
	setClause := query.Children[1]
	require.Equal(t, KindSet, setClause.Kind)
	item := setClause.Children[0]
	assert.Equal(t, KindSetItem, item.Kind)
	assert.Equal(t, "=", item.Text)
}

func TestClauseSetAdditivePropertyAssignment(t *testing.T) {
	query := parseSingleDirective(t, "MATCH (n) SET n.counter += 1 RETURN n")
	setClause := query.Children[1]
	item := setClause.Children[0]
	assert.Equal(t, "+=", item.Text)
}

func TestClauseSetLabelsIsDistinctFromLabelCheck(t *testing.T) {
	query := parseSingleDirective(t, "MATCH (n) SET n:Person:Employee RETURN n")
	setClause := query.Children[1]
	item := setClause.Children[0]
	require.Equal(t, KindSetItem, item.Kind)
	assert.Equal(t, "LABELS", item.Text)
	// target + two labels
	require.Len(t, item.Children, 3)
}

func TestClauseRemoveLabels(t *testing.T) {
	query := parseSingleDirective(t, "MATCH (n) REMOVE n:Person:Employee RETURN n")
	removeClause := query.Children[1]
	require.Equal(t, KindRemove, removeClause.Kind)
	item := removeClause.Children[0]
	require.Equal(t, KindRemoveItem, item.Kind)
	require.Len(t, item.Children, 3) // subject + 2 labels
}

func TestClauseUnwindBindsVariable(t *testing.T) {
	query := parseSingleDirective(t, "UNWIND [1, 2, 3] AS x RETURN x")
	unwind := query.Children[0]
	require.Equal(t, KindUnwind, unwind.Kind)
	variable := unwind.Slot("variable")
	require.NotNil(t, variable)
	assert.Equal(t, "x", variable.Text)
}

func TestClauseForeachRunsUpdatingClauses(t *testing.T) {
	query := parseSingleDirective(t, "FOREACH (x IN [1, 2] | SET n.v = x) ")
	foreach := query.Children[0]
	require.Equal(t, KindForeach, foreach.Kind)
	variable := foreach.Slot("variable")
	require.Equal(t, "x", variable.Text)
	// variable + inList + one update clause
	require.Len(t, foreach.Children, 3)
	assert.Equal(t, KindSet, foreach.Children[2].Kind)
}

func TestClauseLoadCSVWithHeaders(t *testing.T) {
	query := parseSingleDirective(t, "LOAD CSV WITH HEADERS FROM 'file:///x.csv' AS row RETURN row")
	loadCSV := query.Children[0]
	require.Equal(t, KindLoadCSV, loadCSV.Kind)
	assert.True(t, loadCSV.Flag)
	assert.Nil(t, loadCSV.Slot("fieldTerminator"))
}

func TestClauseLoadCSVWithFieldTerminator(t *testing.T) {
	query := parseSingleDirective(t, "LOAD CSV FROM 'file:///x.csv' AS row FIELDTERMINATOR ';' RETURN row")
	loadCSV := query.Children[0]
	assert.False(t, loadCSV.Flag)
	assert.NotNil(t, loadCSV.Slot("fieldTerminator"))
}

func TestClauseStartPointsWithLookup(t *testing.T) {
	query := parseSingleDirective(t, "START n = node(1) RETURN n")
	start := query.Children[0]
	require.Equal(t, KindStart, start.Kind)
	require.Len(t, start.Children, 1)
	point := start.Children[0]
	require.Equal(t, KindStartPoint, point.Kind)
	assert.Equal(t, "n", point.Slot("variable").Text)
}

func TestClauseUnionWithoutAll(t *testing.T) {
	query := parseSingleDirective(t, "RETURN 1 UNION RETURN 2")
	require.Len(t, query.Children, 3)
	union := query.Children[1]
	require.Equal(t, KindUnion, union.Kind)
	assert.False(t, union.Flag)
}

func TestClauseUnionAll(t *testing.T) {
	query := parseSingleDirective(t, "RETURN 1 UNION ALL RETURN 2")
	union := query.Children[1]
	assert.True(t, union.Flag)
}

func TestSchemaCommandCreateUniqueNodePropertyConstraint(t *testing.T) {
	res := Parse("CREATE CONSTRAINT ON (p:Person) ASSERT p.email IS UNIQUE")
	require.Empty(t, res.Errors())
	require.Len(t, res.Directives(), 1)
	cmd := res.Directives()[0]
	assert.Equal(t, KindCreateUniqueNodePropConstraint, cmd.Kind)
}

func TestSchemaCommandCreateNodePropertyExistenceConstraint(t *testing.T) {
	res := Parse("CREATE CONSTRAINT ON (p:Person) ASSERT p.email IS NOT NULL")
	require.Empty(t, res.Errors())
	cmd := res.Directives()[0]
	assert.Equal(t, KindCreateNodePropExistenceConstraint, cmd.Kind)
}

func TestSchemaCommandCreateRelationshipPropertyExistenceConstraint(t *testing.T) {
	res := Parse("CREATE CONSTRAINT ON ()-[r:KNOWS]-() ASSERT r.since IS NOT NULL")
	require.Empty(t, res.Errors())
	cmd := res.Directives()[0]
	assert.Equal(t, KindCreateRelPropExistenceConstraint, cmd.Kind)
}

func TestSchemaCommandDropConstraint(t *testing.T) {
	res := Parse("DROP CONSTRAINT ON (p:Person) ASSERT p.email IS UNIQUE")
	require.Empty(t, res.Errors())
	cmd := res.Directives()[0]
	assert.Equal(t, KindDropUniqueNodePropConstraint, cmd.Kind)
}
