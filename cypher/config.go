/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package cypher is the public API: parsing a Cypher source string into an AST
forest (Parse/ParseString), walking and printing the result (Result), and
choosing the structural printer's output width and colorization (Config).

Example:

	result := cypher.ParseString("MATCH (n) RETURN n")
	for _, err := range result.Errors() {
	    fmt.Println(err)
	}
	fmt.Println(result.Print(cypher.DefaultConfig()))
*/
package cypher

import "github.com/krotik/cypherparser/cypher/parser"

/*
Config controls how a Result is rendered by Print. The zero Config renders
plain, untruncated text.
*/
type Config struct {
	// Colorize selects the ANSI colorization scheme instead of plain text.
	Colorize bool

	// OutputWidth soft-bounds each node's rendered detail string; 0 disables
	// truncation.
	OutputWidth int
}

// DefaultConfig renders without color at the CLI's default output width
// (120).
func DefaultConfig() Config {
	return Config{Colorize: false, OutputWidth: 120}
}

func (c Config) printer() *parser.Printer {
	p := parser.NewPrinter()
	p.OutputWidth = c.OutputWidth
	if c.Colorize {
		p.Scheme = parser.ANSIScheme
	}
	return p
}
