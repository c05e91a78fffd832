package main

import (
	"log/slog"
	"strings"

	"github.com/vango-dev/ffui/internal/todo"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/dom/memdom"
	"github.com/vango-dev/ffui/pkg/mount"
	"github.com/vango-dev/ffui/pkg/render"
)

// snapshotOptions describe an in-memory run of the demo app.
type snapshotOptions struct {
	tasks   []string
	add     []string
	pretty  bool
	omitIDs bool
}

// snapshot mounts the todo app into a memdom document, adds each task in
// opts.add through simulated input and click events, and returns the markup
// of the mounted tree.
func snapshot(opts snapshotOptions, logger *slog.Logger) (string, error) {
	doc := memdom.New()
	root := doc.Body()

	var failed firstError
	if _, err := mount.Mount(root, todo.New(opts.tasks...),
		mount.WithLogger(logger),
		mount.WithErrorHandler(failed.record),
	); err != nil {
		return "", err
	}
	if err := addTasks(root, opts.add, &failed); err != nil {
		return "", err
	}

	var sb strings.Builder
	r := render.New(render.Config{Pretty: opts.pretty, OmitIDs: opts.omitIDs})
	if err := r.RenderChildren(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// firstError keeps the first error reported by a mount driver. Listeners
// cannot return errors, so refresh failures inside AddTask only surface here.
type firstError struct {
	err error
}

func (f *firstError) record(err error) {
	if f.err == nil {
		f.err = err
	}
}

// addTasks adds each task through simulated events and stops at the first
// failed refresh.
func addTasks(root dom.Element, tasks []string, failed *firstError) error {
	for _, task := range tasks {
		if err := todo.AddTask(root, task); err != nil {
			return err
		}
		if failed.err != nil {
			return failed.err
		}
	}
	return nil
}

// seedTasks returns the tasks flag when set, then the configured tasks, then
// the built-in defaults.
func seedTasks(flag []string, configured []string) []string {
	switch {
	case len(flag) > 0:
		return flag
	case configured != nil:
		return configured
	}
	return todo.DefaultTasks
}
