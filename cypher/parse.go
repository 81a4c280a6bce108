/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cypher

import (
	"io"

	"github.com/krotik/cypherparser/cypher/parser"
)

/*
ParseString parses source in full and returns every directive it could
recover, together with any diagnostics. Grounded on eql's package-level
ParseQuery wrapping parser.Parse.
*/
func ParseString(source string) *Result {
	return &Result{inner: parser.Parse(source)}
}

/*
ParseStringWithCallback parses source directive-at-a-time, invoking callback
immediately after each one is recovered. Returning false from callback stops
parsing early; the returned Result holds only the directives seen so far.
*/
func ParseStringWithCallback(source string, callback func(*Node) bool) *Result {
	return &Result{inner: parser.ParseWithCallback(source, callback)}
}

/*
Parse reads all of r and parses it in full, as ParseString does. Reading
happens eagerly: this grammar has no construct that can be parsed from a
partial prefix, so there is no benefit to threading io.Reader further down
than this entry point.
*/
func Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data)), nil
}
