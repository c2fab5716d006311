// Package urlenc parses URLs and implements query escaping.
//
// Parsing follows RFC 3986 except where it deviates for compatibility with
// URLs found in the wild. A parsed [URL] keeps both the decoded and the
// original encoding of its path and fragment, so that a URL can be written
// back out exactly as it was read. Query strings are decoded into [Values],
// an ordered-by-key multimap that the form subpackage builds on.
package urlenc
