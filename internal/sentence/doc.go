// Package sentence decides whether a block of subtitle text ends at a
// sentence boundary.
//
// The check is purely lexical: surrounding whitespace is trimmed and the
// remainder must end with one of a fixed set of terminal markers. There is no
// locale awareness and no quote tracking beyond the literal suffixes.
package sentence
