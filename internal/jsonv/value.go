package jsonv

import (
	"fmt"
)

// Value is a sealed interface representing a parsed JSON value.
// Only Null, Bool, Number, String, Array and *Object implement it.
type Value interface {
	jsonValue() // Sealed - only these types implement it
}

// Null represents a JSON null.
type Null struct{}

func (Null) jsonValue() {}

// Bool represents a JSON boolean.
type Bool bool

func (Bool) jsonValue() {}

// Number represents a JSON number. Lottie mixes integer frame numbers with
// fractional coordinates, so every number is held as float64.
type Number float64

func (Number) jsonValue() {}

// String represents a JSON string.
type String string

func (String) jsonValue() {}

// Array represents a JSON array.
type Array []Value

func (Array) jsonValue() {}

// Object represents a JSON object with keys kept in insertion order.
// The zero value is an empty object ready to use.
type Object struct {
	keys []string
	vals map[string]Value
}

func (*Object) jsonValue() {}

// Pair is a key-value pair used for Object construction.
type Pair struct {
	Key   string
	Value Value
}

// P is a shorthand for Pair.
// Example: NewObject(P("nm", String("placeholder")), P("ty", String("gr")))
func P(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// NewObject builds an Object from pairs, in order.
func NewObject(pairs ...Pair) *Object {
	obj := &Object{vals: make(map[string]Value, len(pairs))}
	for _, p := range pairs {
		obj.Set(p.Key, p.Value)
	}
	return obj
}

// Set assigns a value to key. A new key is appended to the key order; an
// existing key keeps its position and takes the new value.
func (o *Object) Set(key string, v Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// GetOr returns the value stored under key, or def when the key is absent.
func (o *Object) GetOr(key string, def Value) Value {
	if v, ok := o.Get(key); ok {
		return v
	}
	return def
}

// Keys returns the keys in insertion order. The slice must not be modified.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Kind returns a short name for the JSON kind of v, for diagnostics.
func Kind(v Value) string {
	switch v.(type) {
	case nil:
		return "missing"
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case *Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Truthy reports whether v counts as set: null, false, 0, "" and empty
// containers do not.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, Null:
		return false
	case Bool:
		return bool(val)
	case Number:
		return val != 0
	case String:
		return val != ""
	case Array:
		return len(val) > 0
	case *Object:
		return val.Len() > 0
	default:
		return false
	}
}

// Equal reports whether a and b hold the same JSON value. Object comparison
// ignores key order.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			other, ok := bv.Get(k)
			if !ok || !Equal(av.vals[k], other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
