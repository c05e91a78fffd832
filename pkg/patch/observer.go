package patch

// Op is a live tree operation performed by the patcher.
type Op string

const (
	OpCreate     Op = "create"
	OpAppend     Op = "append"
	OpRemove     Op = "remove"
	OpReplace    Op = "replace"
	OpSetAttr    Op = "set_attr"
	OpRemoveAttr Op = "remove_attr"
	OpSetProp    Op = "set_prop"
)

// Ops lists every Op.
var Ops = []Op{OpCreate, OpAppend, OpRemove, OpReplace, OpSetAttr, OpRemoveAttr, OpSetProp}

// Structural reports whether op creates, attaches or detaches nodes.
func (op Op) Structural() bool {
	switch op {
	case OpCreate, OpAppend, OpRemove, OpReplace:
		return true
	}
	return false
}

// Observer is notified of each operation a Patcher performs.
type Observer interface {
	Observe(op Op)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(op Op)

// Observe implements Observer.
func (f ObserverFunc) Observe(op Op) { f(op) }

// Counter tallies operations.
type Counter map[Op]int

// Observe implements Observer.
func (c Counter) Observe(op Op) { c[op]++ }

// Structural returns the number of structural operations counted.
func (c Counter) Structural() int {
	n := 0
	for op, count := range c {
		if op.Structural() {
			n += count
		}
	}
	return n
}

// Multi fans operations out to several observers.
func Multi(observers ...Observer) Observer {
	return ObserverFunc(func(op Op) {
		for _, o := range observers {
			if o != nil {
				o.Observe(op)
			}
		}
	})
}
