// Package tweaks implements the DOM passes applied to rendered pages before
// they are published.
//
// The renderer output is parsed back into an x/net/html tree, then:
//   - the <head> element is removed (the site template provides its own)
//   - link targets are cleaned: redirects through google.com are unwrapped,
//     links to other documents of the site point to their slug, and external
//     links open in a named window per host
//   - the first <h1> becomes the page title, the content above it the summary,
//     and the first image above it the banner; all of them are removed
//
// Serialization back to text is done by the serialize package.
package tweaks
