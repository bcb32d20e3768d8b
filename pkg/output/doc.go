// Package output renders traversal results for the command line.
//
// Three formats are supported:
//
//	text  one path per line, merge results as "path<TAB>root"
//	yaml  a document with the root and its files
//	toml  the same document encoded as TOML
//
// Styling is applied to text output only, through a lipgloss renderer bound
// to the destination writer, so piping output elsewhere drops the escape
// codes unless color is forced.
package output
