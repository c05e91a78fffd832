// Package render serializes a live host tree to HTML.
//
// It writes what is currently attached, after patching, not a virtual tree:
//
//	r := render.New(render.Config{Pretty: true})
//	html, err := r.RenderToString(doc.Body())
//
// Text and attribute values are always escaped. Void elements are written
// without a closing tag, and boolean attributes without a value. Event
// listeners have no markup form and are omitted.
package render
