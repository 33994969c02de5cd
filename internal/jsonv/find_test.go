package jsonv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestFindRootMatch(t *testing.T) {
	doc := mustParse(t, `{"nm": "placeholder", "id": 0}`)

	obj, ok := Find(doc, "nm", String("placeholder"))
	require.True(t, ok)
	assert.Equal(t, Number(0), obj.GetOr("id", nil))
}

func TestFindNested(t *testing.T) {
	doc := mustParse(t, `{
		"layers": [
			{"nm": "background", "shapes": []},
			{"nm": "icon", "shapes": [
				{"ty": "gr", "it": [{"nm": "placeholder", "id": 7}]}
			]}
		]
	}`)

	obj, ok := Find(doc, "nm", String("placeholder"))
	require.True(t, ok)
	assert.Equal(t, Number(7), obj.GetOr("id", nil))
}

func TestFindNotFound(t *testing.T) {
	doc := mustParse(t, `{"layers": [{"nm": "icon"}, [1, 2, {"nm": "other"}]]}`)

	obj, ok := Find(doc, "nm", String("placeholder"))
	assert.False(t, ok)
	assert.Nil(t, obj)
}

func TestFindBreadthFirstPrefersShallowMatch(t *testing.T) {
	// The deep match appears first in document order but sits one level lower.
	doc := mustParse(t, `{
		"a": {"b": {"nm": "placeholder", "id": "deep"}},
		"c": {"nm": "placeholder", "id": "shallow"}
	}`)

	obj, ok := Find(doc, "nm", String("placeholder"))
	require.True(t, ok)
	assert.Equal(t, String("shallow"), obj.GetOr("id", nil))
}

func TestFindLeftToRightWithinLevel(t *testing.T) {
	doc := mustParse(t, `[
		{"nm": "other"},
		{"nm": "placeholder", "id": "first"},
		{"nm": "placeholder", "id": "second"}
	]`)

	obj, ok := Find(doc, "nm", String("placeholder"))
	require.True(t, ok)
	assert.Equal(t, String("first"), obj.GetOr("id", nil))
}

func TestFindValueMustMatch(t *testing.T) {
	doc := mustParse(t, `{"x": {"nm": "placeholder2"}, "y": {"nm": 5}, "z": {"nm": "placeholder", "id": 1}}`)

	obj, ok := Find(doc, "nm", String("placeholder"))
	require.True(t, ok)
	assert.Equal(t, Number(1), obj.GetOr("id", nil))
}

func TestFindNonStringTarget(t *testing.T) {
	doc := mustParse(t, `{"items": [{"ty": "tr", "a": 1}, {"ty": "gr", "a": 0}]}`)

	obj, ok := Find(doc, "a", Number(0))
	require.True(t, ok)
	assert.Equal(t, String("gr"), obj.GetOr("ty", nil))
}

func TestFindScalarRoot(t *testing.T) {
	obj, ok := Find(Number(3), "nm", String("placeholder"))
	assert.False(t, ok)
	assert.Nil(t, obj)
}

func TestFindThroughNestedArrays(t *testing.T) {
	doc := mustParse(t, `[[[{"nm": "placeholder", "id": 3}]], 1, "s"]`)

	obj, ok := Find(doc, "nm", String("placeholder"))
	require.True(t, ok)
	assert.Equal(t, Number(3), obj.GetOr("id", nil))
}
