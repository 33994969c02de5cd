package jsonv

import (
	"log/slog"
)

// Find returns the first object, in breadth-first order, that has key set to
// a value equal to want.
//
// Levels are visited top-down and each level left to right: an object's keys
// in insertion order, an array's elements by index. Only objects and arrays are
// queued; scalars can never hold a match.
func Find(root Value, key string, want Value) (*Object, bool) {
	switch root.(type) {
	case *Object, Array:
	default:
		slog.Debug("find: root is not a container", "kind", Kind(root))
		return nil, false
	}

	frontier := []Value{root}
	for len(frontier) > 0 {
		curr := frontier[0]
		frontier = frontier[1:]

		switch node := curr.(type) {
		case *Object:
			for _, k := range node.Keys() {
				v := node.vals[k]
				if k == key && Equal(v, want) {
					return node, true
				}
				if isContainer(v) {
					frontier = append(frontier, v)
				}
			}
		case Array:
			for _, elem := range node {
				if isContainer(elem) {
					frontier = append(frontier, elem)
				}
			}
		}
	}
	return nil, false
}

func isContainer(v Value) bool {
	switch v.(type) {
	case *Object, Array:
		return true
	default:
		return false
	}
}
