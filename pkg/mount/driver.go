package mount

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/metrics"
	"github.com/vango-dev/ffui/pkg/patch"
	"github.com/vango-dev/ffui/pkg/reactive"
	"github.com/vango-dev/ffui/pkg/vdom"
)

const tracerName = "github.com/vango-dev/ffui/pkg/mount"

// Driver owns one mounted component.
type Driver struct {
	root     dom.Element
	instance *reactive.Instance
	patcher  *patch.Patcher
	tree     *vdom.VNode

	ctx      context.Context
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *metrics.Collector
	observer patch.Observer
	onError  func(error)
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the driver's logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithTracer sets the tracer used for refresh spans.
// Default: the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(d *Driver) {
		d.tracer = t
	}
}

// WithMetrics records patch operations and refresh timings in m.
func WithMetrics(m *metrics.Collector) Option {
	return func(d *Driver) {
		d.metrics = m
	}
}

// WithObserver reports every patch operation to o in addition to metrics.
func WithObserver(o patch.Observer) Option {
	return func(d *Driver) {
		d.observer = o
	}
}

// WithErrorHandler calls fn with every failed mount or refresh, in addition
// to returning the error to the caller.
func WithErrorHandler(fn func(error)) Option {
	return func(d *Driver) {
		d.onError = fn
	}
}

// WithContext sets the parent context for spans. Refresh never blocks on it.
func WithContext(ctx context.Context) Option {
	return func(d *Driver) {
		d.ctx = ctx
	}
}

// Mount makes c reactive, renders it and appends the result to root.
func Mount(root dom.Element, c *reactive.Component, opts ...Option) (*Driver, error) {
	if root == nil {
		return nil, errors.New(errors.CodeMountRootMissing).WithDetail("mount root is nil")
	}

	d := &Driver{
		root:   root,
		ctx:    context.Background(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default().With("component", "mount")
	}
	if c != nil {
		d.logger = d.logger.With("id", c.ID)
	}

	instance, err := reactive.MakeReactive(c)
	if err != nil {
		return nil, err
	}
	instance.SetLogger(d.logger)
	instance.Bind(vdom.ComponentBuilder(c.ID), d.Refresh)
	d.instance = instance

	var observers []patch.Observer
	if d.metrics != nil {
		observers = append(observers, d.metrics)
	}
	if d.observer != nil {
		observers = append(observers, d.observer)
	}
	popts := []patch.Option{patch.WithLogger(d.logger)}
	if len(observers) > 0 {
		popts = append(popts, patch.WithObserver(patch.Multi(observers...)))
	}
	d.patcher = patch.New(popts...)

	tree := instance.Render()
	if err := d.run("ffui.mount", func() error {
		return d.patcher.Patch(root, nil, tree, 0)
	}); err != nil {
		return nil, err
	}
	d.tree = tree
	d.logger.Info("component mounted", "root", root.Tag())
	return d, nil
}

// Refresh patches the live tree from old to next. The component's live root
// is the mount root's child carrying its identifier attribute; when there is
// none the mount root is patched at position 0.
func (d *Driver) Refresh(old, next *vdom.VNode) error {
	parent, index := d.locate()
	err := d.run("ffui.refresh", func() error {
		return d.patcher.Patch(parent, old, next, index)
	})
	if err != nil {
		return err
	}
	d.tree = next
	return nil
}

// locate returns the parent of the component's live root and the root's
// position within it. Only children of the mount root are considered, so
// mounts sharing a component id stay independent.
func (d *Driver) locate() (dom.Element, int) {
	id := d.instance.ID()
	for i, child := range d.root.ChildNodes() {
		el, ok := child.(dom.Element)
		if !ok {
			continue
		}
		if v, ok := el.GetAttribute(vdom.IDAttr); ok && v == id {
			return d.root, i
		}
	}
	return d.root, 0
}

// WithinContext runs fn with ctx as the parent of the spans the driver
// starts, then restores the previous parent. Listeners dispatched inside fn
// refresh under the caller's span.
func (d *Driver) WithinContext(ctx context.Context, fn func()) {
	prev := d.ctx
	d.ctx = ctx
	defer func() { d.ctx = prev }()
	fn()
}

// run executes one patch pass under a span and records its outcome.
func (d *Driver) run(name string, fn func() error) error {
	_, span := d.tracer.Start(d.ctx, name,
		trace.WithAttributes(attribute.String("ffui.component_id", d.instance.ID())),
	)
	defer span.End()

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	d.metrics.RecordRefresh(elapsed, errors.CodeOf(err), err != nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger.Error("patch failed", "op", name, "error", err)
		if d.onError != nil {
			d.onError(err)
		}
		return err
	}
	span.SetStatus(codes.Ok, "")
	d.logger.Debug("patched", "op", name, "duration", elapsed)
	return nil
}

// Instance returns the mounted component's reactive instance.
func (d *Driver) Instance() *reactive.Instance { return d.instance }

// Root returns the mount root supplied to Mount.
func (d *Driver) Root() dom.Element { return d.root }

// Tree returns the most recently patched virtual tree.
func (d *Driver) Tree() *vdom.VNode { return d.tree }
