package reactive

import (
	"bytes"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// cloneState returns an independent deep copy of s by round-tripping it
// through msgpack. Values come back in msgpack's generic shapes: integers as
// int64/uint64, floats as float64, slices as []any and maps as map[string]any.
func cloneState(s State) (State, error) {
	if s == nil {
		return State{}, nil
	}
	packed, err := msgpack.Marshal(map[string]any(s))
	if err != nil {
		return nil, err
	}
	dec := msgpack.NewDecoder(bytes.NewReader(packed))
	dec.UseLooseInterfaceDecoding(true)

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return State(out), nil
}

// cloneValue copies container values so callers cannot edit state in place.
// []any and map[string]any are copied deeply, other slices and maps one
// level deep. Scalars are returned as is.
func cloneValue(v any) any {
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	}
	return v
}
