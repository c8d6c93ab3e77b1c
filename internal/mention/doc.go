// Package mention provides parsing and formatting of resource mentions
// embedded in prose.
//
// A mention is a textual reference to an external resource, written as
//
//	@resource://<server>[/<path>][?<k=v>&...][#<fragment>]
//
// or with the short alias @res://. The package extracts every mention
// from a piece of text with exact byte offsets, collapses overlapping
// matches into a single ordered list, and renders mentions back into
// their canonical textual form.
//
// Parsing is lossless with respect to position: each Mention records
// the raw matched text and its start/end offsets, which allows callers
// to substitute resolved content back into the original text safely.
package mention
