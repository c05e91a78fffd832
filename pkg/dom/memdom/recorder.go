package memdom

import "github.com/vango-dev/ffui/pkg/dom"

// Recorder collects the mutations of a document.
type Recorder struct {
	muts   []dom.Mutation
	cancel func()
}

// Record starts recording mutations of d.
func Record(d *Document) *Recorder {
	r := &Recorder{}
	r.cancel = d.Observe(func(m dom.Mutation) {
		r.muts = append(r.muts, m)
	})
	return r
}

// Mutations returns everything recorded since the last Reset.
func (r *Recorder) Mutations() []dom.Mutation {
	return r.muts
}

// Structural returns the recorded append, remove and replace mutations.
func (r *Recorder) Structural() []dom.Mutation {
	var out []dom.Mutation
	for _, m := range r.muts {
		if m.Op.Structural() {
			out = append(out, m)
		}
	}
	return out
}

// Reset drops recorded mutations.
func (r *Recorder) Reset() {
	r.muts = nil
}

// Stop detaches the recorder from its document.
func (r *Recorder) Stop() {
	r.cancel()
}
