// Package encode writes documents as text.
//
// JSON is the default format and is written on a single line unless an
// indent is given:
//
//	err := encode.Encode(doc, w)
//	err := encode.Encode(doc, w, encode.EncodeIndent(2))
//	err := encode.Encode(doc, w, encode.EncodeFormat(format.YAMLFormat))
//
// Mapping keys are always written in sorted order. Floats keep a decimal
// point or exponent so that decoding the output yields floats again.
// Non-finite floats, which JSON cannot express, are written as the strings
// "+Inf", "-Inf" and "NaN".
package encode
