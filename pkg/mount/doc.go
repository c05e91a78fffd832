// Package mount attaches a reactive component to a live tree and keeps the
// tree in sync with the component's state.
//
// Mount performs the first paint by patching the component's tree into the
// caller-supplied root element. Afterwards every write to a reactive field
// calls Driver.Refresh with the trees before and after the write; Refresh
// finds the component's live root by its identifier attribute and patches it
// in place. A Driver owns one mount for the life of the process and has no
// unmount; several Drivers may coexist, each with its own root.
//
//	doc := memdom.New()
//	app := doc.CreateElement("div")
//	doc.Body().AppendChild(app)
//
//	d, err := mount.Mount(app, todo.New(), mount.WithLogger(logger))
//	...
//	d.Instance().Set("task", "write docs")
package mount
