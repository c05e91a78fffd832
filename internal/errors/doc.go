// Package errors provides structured, coded errors for ffui.
//
// Every error carries a code (e.g. "F001") registered with a category, a short
// message and a longer detail. Callers compare errors with the standard
// library's errors.Is against the exported sentinels; matching is by code, so a
// sentinel matches any *Error built from the same code, with or without extra
// detail or a wrapped cause.
//
// # Categories
//
//   - precondition: programming errors in the caller (absent diff input)
//   - runtime: live tree state that does not match the previous virtual tree
//   - state: reactive state misuse (undeclared fields)
//   - config: configuration file problems
//   - protocol: live host wire messages
//   - export: snapshot upload failures
//
// # Usage
//
//	if _, err := vdom.Differs(nil, next); errors.Is(err, errors.ErrAbsentNode) {
//	    // caller bug
//	}
//
//	fmt.Print(errors.New(errors.CodeUndeclaredField).
//	    WithDetail(`field "title" is not part of the component state`).
//	    Format())
package errors
