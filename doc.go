// Package linefold builds a document from a stream of "path:value" lines.
//
// Each line read by an Engine looks like
//
//	;a.b.c:value
//
// The leading ";" (the sentinel) marks the line as meant for the engine and
// everything else is ignored. The dotted path up to the first ":" (the
// delimiter) names where the value goes. The value is trimmed and typed as
// an integer, a float or a string. The engine turns the path into a nested
// mapping holding the value and merges it into its document with
// [mergeop.Merge].
//
// Lines with the path prefix "stdout.loop" are commands:
//
//	;stdout.loop:clear   empty the document
//	;stdout.loop:flush   serialize then empty the document
//	;stdout.loop:end     flush and ask the caller to stop
//
// AddLine reports flush and end through its Signal; the caller prints
// Emitted and decides when to stop.
package linefold
