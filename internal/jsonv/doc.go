// Package jsonv provides an order-preserving JSON value model.
//
// Lottie documents are walked generically: the layer we care about can sit at
// any depth inside layers, shapes and groups. Value is a sealed interface with
// one implementation per JSON kind, so every walk over a document is an
// exhaustive type switch rather than a chain of map[string]any assertions.
//
// Objects remember key insertion order. Breadth-first search relies on that
// order to decide which of several matching objects is found first.
//
// This package imports nothing internal.
package jsonv
