/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

// assertOk and assertTrue guard invariants that a bug in this package, not
// in caller input, would have to violate (spec.md §7 tier 3, "contract
// violations"). Lexical/syntactic problems in user input never reach these;
// they are reported through the error list instead (errors.go).
//
// Grounded on devt.de/common/errorutil.AssertOk/AssertTrue (eql/parser's
// prettyprinter.go calls errorutil.AssertOk on template execution).

func assertOk(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func assertTrue(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
