package jsonv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeys(t *testing.T) {
	obj := NewObject(P("ty", String("tr")), P("a", Number(1)), P("k", Array{Number(0), Number(2.5)}))

	data, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"k":[0,2.5],"ty":"tr"}`, string(data))
}

func TestMarshalCanonicalScalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, `null`},
		{"true", Bool(true), `true`},
		{"int", Number(100), `100`},
		{"negative fraction", Number(-0.25), `-0.25`},
		{"no html escaping", String("<a&b>"), `"<a&b>"`},
		{"escaped quote", String(`say "hi"`), `"say \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalCanonical(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestMarshalCanonicalNFC(t *testing.T) {
	// "e" followed by a combining acute accent normalizes to U+00E9.
	data, err := MarshalCanonical(String("e\u0301"))
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(data))
}

func TestMarshalCanonicalKeyOrderIndependent(t *testing.T) {
	a, err := MarshalCanonical(mustParse(t, `{"b": 1, "a": {"d": 2, "c": 3}}`))
	require.NoError(t, err)
	b, err := MarshalCanonical(mustParse(t, `{"a": {"c": 3, "d": 2}, "b": 1}`))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshalCanonicalRejectsNil(t *testing.T) {
	_, err := MarshalCanonical(nil)
	assert.Error(t, err)
}
