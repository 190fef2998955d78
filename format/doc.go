// Package format names the text encodings a document can be emitted in.
//
//	f, err := format.ParseFormat("yaml")
package format
