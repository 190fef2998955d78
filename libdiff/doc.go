// Package libdiff computes line diffs between document encodings, used for
// tracing how each input line changes the document.
//
//	fmt.Print(libdiff.Documents(before, after))
package libdiff
