// Package gdoc models the subset of the Google Docs API document resource
// that the renderer understands.
//
// The API represents unions as objects where exactly one field is set
// (a structural element is a paragraph, a table, a section break or a table
// of contents). This package keeps that shape for JSON compatibility but
// validates it while decoding: an element with no variant or more than one
// variant is rejected instead of silently picking the first one. Callers
// dispatch on Kind() rather than probing nil fields.
//
// Optional scalars are pointers so that "absent" never decodes to a default
// that changes rendering (an absent nesting level is not level 0 of a list
// that does not exist; an absent color channel is not black).
//
// Reference: https://developers.google.com/docs/api/reference/rest/v1/documents
package gdoc
