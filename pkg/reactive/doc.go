// Package reactive turns a component's plain state into reactive fields.
//
// A Component is a template: an identifier, an initial State and a render
// function. MakeReactive gives it owned state storage (a deep copy of the
// template's State) and intercepts every write to a declared field:
//
//  1. render with the current state (the old tree)
//  2. commit the value
//  3. render with the updated state (the new tree)
//  4. hand both trees to the bound sink, normally mount.Driver.Refresh
//
// All four steps run synchronously in the caller's goroutine, so one write is
// fully rendered and patched before Set returns. Writes to fields that were
// not declared in the initial State are rejected instead of silently skipping
// the re-render.
package reactive
