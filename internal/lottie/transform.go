// Package lottie reads the animated transform of a placeholder layer out of a
// Lottie document.
//
// Only the fields needed to chart motion are interpreted. Everything else in
// the document is left alone; nothing is validated beyond what is read.
//
// Ref https://lottiefiles.github.io/lottie-docs/concepts/#animated-property
package lottie

import (
	"errors"
	"fmt"

	"github.com/roach88/motiondump/internal/jsonv"
)

// DefaultPlaceholder is the layer name templates use for the animated group.
const DefaultPlaceholder = "placeholder"

// Skip conditions. These end processing of one file or one field; the run
// continues with the next item.
var (
	ErrNoPlaceholder = errors.New("no placeholder")
	ErrNotTransform  = errors.New("last item is not a transform")
	ErrFieldMissing  = errors.New("field missing")
	ErrNotAnimated   = errors.New("field not animated")
	ErrNoKeyframes   = errors.New("field animated without keyframes")
)

// ErrMalformedKeyframe is fatal: the keyframe list cannot be charted.
var ErrMalformedKeyframe = errors.New("malformed keyframe")

// IsSkippable reports whether err only skips the current file or field.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrNoPlaceholder) ||
		errors.Is(err, ErrNotTransform) ||
		errors.Is(err, ErrFieldMissing) ||
		errors.Is(err, ErrNotAnimated) ||
		errors.Is(err, ErrNoKeyframes)
}

// Field describes one animatable transform property.
type Field struct {
	Key        string   // property key inside the transform, e.g. "p"
	Name       string   // display name, used in file names and titles
	Components []string // one name per scalar in a keyframe value
}

// TransformFields lists the charted transform properties in report order.
// This is not every animatable field of a transform, just the basics.
var TransformFields = []Field{
	{Key: "p", Name: "position", Components: []string{"x", "y"}},
	{Key: "s", Name: "scale", Components: []string{"sx", "sy"}},
	{Key: "r", Name: "rotation", Components: []string{""}},
}

// Keyframe is one sampled value of an animated property.
type Keyframe struct {
	Time   float64   // frame number
	Values []float64 // start value, one entry per component
}

// FindPlaceholder returns the first object, breadth-first, whose "nm" is name.
func FindPlaceholder(doc jsonv.Value, name string) (*jsonv.Object, error) {
	obj, ok := jsonv.Find(doc, "nm", jsonv.String(name))
	if !ok {
		return nil, fmt.Errorf("%w named %q", ErrNoPlaceholder, name)
	}
	return obj, nil
}

// TransformOf returns the transform that closes the placeholder's item list.
// A missing "it" is read as a single empty item.
func TransformOf(placeholder *jsonv.Object) (*jsonv.Object, error) {
	items, ok := placeholder.GetOr("it", jsonv.Array{jsonv.NewObject()}).(jsonv.Array)
	if !ok || len(items) == 0 {
		return nil, ErrNotTransform
	}

	last, ok := items[len(items)-1].(*jsonv.Object)
	if !ok {
		return nil, fmt.Errorf("%w: last item is %s", ErrNotTransform, jsonv.Kind(items[len(items)-1]))
	}
	if ty := last.GetOr("ty", jsonv.String("?")); !jsonv.Equal(ty, jsonv.String("tr")) {
		return nil, ErrNotTransform
	}
	return last, nil
}

// Keyframes reads the keyframes of field from transform. The returned slice
// is in document order.
func Keyframes(transform *jsonv.Object, field Field) ([]Keyframe, error) {
	raw, ok := transform.Get(field.Key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", field.Name, ErrFieldMissing)
	}

	// A bare value is a static property.
	prop, ok := raw.(*jsonv.Object)
	if !ok || !jsonv.Truthy(prop.GetOr("a", jsonv.Number(0))) {
		return nil, fmt.Errorf("%s: %w", field.Name, ErrNotAnimated)
	}

	k := prop.GetOr("k", jsonv.Array{})
	if !jsonv.Truthy(k) {
		return nil, fmt.Errorf("%s: %w", field.Name, ErrNoKeyframes)
	}
	list, ok := k.(jsonv.Array)
	if !ok {
		return nil, fmt.Errorf("%s: %w: k is %s, want array", field.Name, ErrMalformedKeyframe, jsonv.Kind(k))
	}

	keyframes := make([]Keyframe, 0, len(list))
	for i, elem := range list {
		kf, err := parseKeyframe(elem)
		if err != nil {
			return nil, fmt.Errorf("%s keyframe %d: %w", field.Name, i, err)
		}
		keyframes = append(keyframes, kf)
	}
	return keyframes, nil
}

func parseKeyframe(v jsonv.Value) (Keyframe, error) {
	obj, ok := v.(*jsonv.Object)
	if !ok {
		return Keyframe{}, fmt.Errorf("%w: keyframe is %s", ErrMalformedKeyframe, jsonv.Kind(v))
	}

	t, ok := obj.GetOr("t", nil).(jsonv.Number)
	if !ok {
		return Keyframe{}, fmt.Errorf("%w: t is %s, want number", ErrMalformedKeyframe, jsonv.Kind(obj.GetOr("t", nil)))
	}

	s, ok := obj.GetOr("s", nil).(jsonv.Array)
	if !ok {
		return Keyframe{}, fmt.Errorf("%w: s is %s, want array", ErrMalformedKeyframe, jsonv.Kind(obj.GetOr("s", nil)))
	}

	values := make([]float64, len(s))
	for i, elem := range s {
		n, ok := elem.(jsonv.Number)
		if !ok {
			return Keyframe{}, fmt.Errorf("%w: s[%d] is %s, want number", ErrMalformedKeyframe, i, jsonv.Kind(elem))
		}
		values[i] = float64(n)
	}

	return Keyframe{Time: float64(t), Values: values}, nil
}
