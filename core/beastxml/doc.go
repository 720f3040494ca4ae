// Package beastxml serializes per-feature distance sequences as the XML
// fragment a BEAST configuration embeds.
//
// The output is deliberately compact: no indentation, no whitespace between
// elements, and no trailing newline. Each feature contributes a comment node
// holding its name followed by an element holding one value child per
// distance.
package beastxml
