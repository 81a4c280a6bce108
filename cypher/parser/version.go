/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

// Version identifies this grammar/AST revision. Kind values and their names
// are stable for a given minor version (spec.md §6).
const Version = "0.1.0"
