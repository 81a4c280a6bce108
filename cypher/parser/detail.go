/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

/*
detailString renders a node's one-line, human-readable detail string, citing
children by ordinal rather than by value (spec.md §4.C, e.g.
"ON=(@u:@v), IS UNIQUE=(@w)"). Not every child is cited: the labels of a
node pattern, the relationship types of a relationship pattern, the ON
CREATE/ON MATCH actions of a MERGE and the FIELDTERMINATOR of a LOAD CSV
appear only as their own child lines in the printer output. Grounded on
eql/parser/prettyprinter.go's prettyPrinterMap + special-cased visit switch,
generalized from Go templates keyed by node name to a single switch keyed by
Kind, since this grammar has far more concrete kinds than EQL's.

detailString assumes ordinals have already been assigned by
tree.assignOrdinals; calling it before that walk produces meaningless @0
citations for every node.
*/
func detailString(n *ASTNode) string {
	if n == nil {
		return "_"
	}
	switch n.Kind {
	case KindIdentifier, KindParameter, KindLabel, KindRelTypeName, KindRangeLiteral:
		return n.Text
	case KindInteger, KindFloat:
		return n.Text
	case KindString:
		return strconv.Quote(n.Text)
	case KindBoolean:
		return strconv.FormatBool(n.Flag)
	case KindNullLiteral:
		return "NULL"
	case KindListLiteral:
		return "[" + citeChildren(n, ", ") + "]"
	case KindMapLiteral:
		return "{" + citeChildren(n, ", ") + "}"
	case KindMapEntry:
		return fmt.Sprintf("%s: %s", n.Text, cite(n.Slot("value")))

	case KindBinaryOperator:
		return fmt.Sprintf("%s %s %s", cite(n.Slot("left")), n.Text, cite(n.Slot("right")))
	case KindUnaryOperator:
		return fmt.Sprintf("%s%s", n.Text, cite(n.Slot("operand")))
	case KindPropertyAccess:
		return fmt.Sprintf("%s.%s", cite(n.Slot("subject")), n.Text)
	case KindIndexAccess:
		return fmt.Sprintf("%s[%s]", cite(n.Slot("subject")), cite(n.Slot("index")))
	case KindSlice:
		return fmt.Sprintf("%s[%s..%s]", cite(n.Slot("subject")), cite(n.Slot("from")), cite(n.Slot("to")))
	case KindLabelCheck:
		return fmt.Sprintf("%s%s", cite(n.Slot("subject")), n.Text)
	case KindFunctionInvocation:
		distinct := ""
		if n.Flag {
			distinct = "DISTINCT "
		}
		return fmt.Sprintf("%s(%s%s)", n.Text, distinct, citeChildren(n, ", "))
	case KindCaseExpression:
		parts := []string{}
		if subj := n.Slot("subject"); subj != nil {
			parts = append(parts, "subject="+cite(subj))
		}
		for _, c := range n.Children {
			if c == n.Slot("subject") || c == n.Slot("else") {
				continue
			}
			parts = append(parts, cite(c))
		}
		if els := n.Slot("else"); els != nil {
			parts = append(parts, "ELSE="+cite(els))
		}
		return strings.Join(parts, ", ")
	case KindCaseAlternative:
		return fmt.Sprintf("WHEN %s THEN %s", cite(n.Slot("when")), cite(n.Slot("then")))
	case KindListComprehension:
		s := fmt.Sprintf("%s IN %s", cite(n.Slot("variable")), cite(n.Slot("inList")))
		if p := n.Slot("predicate"); p != nil {
			s += " WHERE " + cite(p)
		}
		if e := n.Slot("eval"); e != nil {
			s += " | " + cite(e)
		}
		return "[" + s + "]"
	case KindPatternComprehension:
		s := cite(n.Slot("pattern"))
		if v := n.Slot("variable"); v != nil {
			s = cite(v) + " = " + s
		}
		if p := n.Slot("predicate"); p != nil {
			s += " WHERE " + cite(p)
		}
		return "[" + s + " | " + cite(n.Slot("eval")) + "]"
	case KindPredicateFunction:
		s := fmt.Sprintf("%s(%s IN %s", n.Text, cite(n.Slot("variable")), cite(n.Slot("inList")))
		if p := n.Slot("predicate"); p != nil {
			s += " WHERE " + cite(p)
		}
		return s + ")"
	case KindReduceExpression:
		return fmt.Sprintf("REDUCE(%s=%s, %s IN %s | %s)", cite(n.Slot("accumulator")), cite(n.Slot("init")),
			cite(n.Slot("variable")), cite(n.Slot("inList")), cite(n.Slot("eval")))

	case KindPattern:
		return citeChildren(n, ", ")
	case KindPatternPath:
		s := citeChildren(n, "")
		if v := n.Slot("variable"); v != nil {
			s = cite(v) + "=" + s
		}
		return s
	case KindNodePattern:
		s := "(" + cite(n.Slot("variable"))
		if p := n.Slot("properties"); p != nil {
			s += " " + cite(p)
		}
		return s + ")"
	case KindRelPattern:
		arrow := "--"
		if n.Text == "->" {
			arrow = "-->"
		} else if n.Text == "<-" {
			arrow = "<--"
		}
		s := "[" + cite(n.Slot("variable"))
		if r := n.Slot("range"); r != nil {
			s += "*" + cite(r)
		}
		if p := n.Slot("properties"); p != nil {
			s += " " + cite(p)
		}
		return s + "]" + arrow

	case KindMatch:
		s := fmt.Sprintf("pattern=%s", cite(n.Slot("pattern")))
		if n.Flag {
			s = "OPTIONAL " + s
		}
		if w := n.Slot("where"); w != nil {
			s += fmt.Sprintf(", WHERE=%s", cite(w))
		}
		return s
	case KindCreate, KindMerge:
		return fmt.Sprintf("pattern=%s", cite(n.Slot("pattern")))
	case KindMergeAction:
		return fmt.Sprintf("ON %s SET=%s", n.Text, cite(n.Slot("set")))
	case KindDelete:
		s := citeChildren(n, ", ")
		if n.Flag {
			s = "DETACH " + s
		}
		return s
	case KindRemoveItem:
		return fmt.Sprintf("subject=%s, labels=[%s]", cite(n.Slot("subject")), citeExcept(n, n.Slot("subject")))
	case KindRemove:
		return citeChildren(n, ", ")
	case KindSetItem:
		if n.Text == "LABELS" {
			return fmt.Sprintf("target=%s, labels=[%s]", cite(n.Slot("target")), citeExcept(n, n.Slot("target")))
		}
		return fmt.Sprintf("target=%s %s value=%s", cite(n.Slot("target")), n.Text, cite(n.Slot("value")))
	case KindSet:
		return citeChildren(n, ", ")
	case KindWith, KindReturn:
		s := citeChildren(n, ", ")
		if n.Flag {
			s = "DISTINCT " + s
		}
		return s
	case KindProjection:
		s := fmt.Sprintf("expression=%s", cite(n.Slot("expression")))
		if a := n.Slot("alias"); a != nil {
			s += fmt.Sprintf(", AS=%s", cite(a))
		}
		return s
	case KindOrderBy:
		return citeChildren(n, ", ")
	case KindSortItem:
		dir := "DESC"
		if n.Flag {
			dir = "ASC"
		}
		return fmt.Sprintf("%s %s", cite(n.Slot("expression")), dir)
	case KindUnwind:
		return fmt.Sprintf("expression=%s, AS=%s", cite(n.Slot("expression")), cite(n.Slot("variable")))
	case KindForeach:
		return fmt.Sprintf("variable=%s, inList=%s, updates=[%s]", cite(n.Slot("variable")), cite(n.Slot("inList")),
			citeExceptMany(n, n.Slot("variable"), n.Slot("inList")))
	case KindLoadCSV:
		s := fmt.Sprintf("url=%s, AS=%s", cite(n.Slot("url")), cite(n.Slot("variable")))
		if n.Flag {
			s = "WITH HEADERS " + s
		}
		return s
	case KindStartPoint:
		return fmt.Sprintf("variable=%s, lookup=%s", cite(n.Slot("variable")), citeExcept(n, n.Slot("variable")))
	case KindStart:
		return citeChildren(n, ", ")
	case KindUnion:
		if n.Flag {
			return "ALL"
		}
		return ""
	case KindQuery:
		return citeChildren(n, "; ")

	case KindCreateNodePropIndex, KindDropNodePropIndex:
		return fmt.Sprintf("ON=(:%s.%s)", cite(n.Slot("label")), cite(n.Slot("propName")))
	case KindCreateUniqueNodePropConstraint, KindDropUniqueNodePropConstraint:
		return fmt.Sprintf("ON=(%s:%s), IS UNIQUE=(%s)", cite(n.Slot("identifier")), cite(n.Slot("label")), cite(n.Slot("expression")))
	case KindCreateNodePropExistenceConstraint, KindDropNodePropExistenceConstraint:
		return fmt.Sprintf("ON=(%s:%s), EXISTS=(%s)", cite(n.Slot("identifier")), cite(n.Slot("label")), cite(n.Slot("expression")))
	case KindCreateRelPropExistenceConstraint, KindDropRelPropExistenceConstraint:
		return fmt.Sprintf("ON=()-[%s:%s]-(), EXISTS=(%s)", cite(n.Slot("identifier")), cite(n.Slot("relType")), cite(n.Slot("expression")))

	case KindClientCommand:
		return n.Text
	case KindLineComment, KindBlockComment:
		return strconv.Quote(n.Text)
	}
	assertTrue(n.Kind >= kindConcreteStart && n.Kind < kindConcreteEnd,
		"detailString: node has an abstract kind, never constructed directly")
	return citeChildren(n, ", ")
}

func cite(n *ASTNode) string {
	if n == nil {
		return "_"
	}
	return fmt.Sprintf("@%d", n.Ordinal)
}

func citeChildren(n *ASTNode, sep string) string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = cite(c)
	}
	return strings.Join(parts, sep)
}

func citeExcept(n *ASTNode, skip *ASTNode) string {
	return citeExceptMany(n, skip)
}

func citeExceptMany(n *ASTNode, skip ...*ASTNode) string {
	parts := []string{}
	for _, c := range n.Children {
		skipped := false
		for _, s := range skip {
			if c == s {
				skipped = true
				break
			}
		}
		if !skipped {
			parts = append(parts, cite(c))
		}
	}
	return strings.Join(parts, ", ")
}
