package ir

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalIRValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected IRValue
	}{
		{"string", `"hi"`, IRString("hi")},
		{"int", `42`, IRInt(42)},
		{"negative int", `-7`, IRInt(-7)},
		{"float", `1.5`, IRFloat(1.5)},
		{"integral float", `2.0`, IRFloat(2)},
		{"exponent", `1e3`, IRFloat(1000)},
		{"int overflow", `18446744073709551616`, IRFloat(18446744073709551616)},
		{"bool", `true`, IRBool(true)},
		{"null", `null`, IRNull{}},
		{"array", `[1, 0.5, "x"]`, IRArray{IRInt(1), IRFloat(0.5), IRString("x")}},
		{"object", `{"a": {"b": false}}`, IRObject{"a": IRObject{"b": IRBool(false)}}},
		{"ref", `{"$ref": "bpy.data.speakers[0]"}`, IRRef{Path: "bpy.data.speakers[0]"}},
		{"ref with siblings", `{"$ref": "x", "y": 1}`, IRObject{"$ref": IRString("x"), "y": IRInt(1)}},
		{"ref not a string", `{"$ref": 1}`, IRObject{"$ref": IRInt(1)}},
		{"nested ref", `[{"$ref": "bpy.context.object"}]`, IRArray{IRRef{Path: "bpy.context.object"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalIRValue([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUnmarshalIRValueErrors(t *testing.T) {
	for _, input := range []string{``, `   `, `{`, `[1,`, `nope`} {
		_, err := UnmarshalIRValue([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestMarshalIRValueRoundTripKinds(t *testing.T) {
	values := []IRValue{
		IRInt(3),
		IRFloat(3),
		IRFloat(0.1),
		IRRef{Path: "bpy.context.scene"},
		IRObject{"k": IRArray{IRNull{}}},
	}
	for _, v := range values {
		data, err := MarshalIRValue(v)
		require.NoError(t, err)
		back, err := UnmarshalIRValue(data)
		require.NoError(t, err)
		assert.Equal(t, v, back, "json %s", data)
	}
}

func TestIRValueInsideStruct(t *testing.T) {
	msg := struct {
		Value IRValue `json:"value"`
	}{Value: IRFloat(4)}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":4.0}`, string(data))
	assert.Contains(t, string(data), "4.0")
}

type fakeProxy struct{ path string }

func (p fakeProxy) Accessor() string { return p.path }

type nodeColor string

func TestFromGo(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected IRValue
	}{
		{"nil", nil, IRNull{}},
		{"string", "x", IRString("x")},
		{"named string", nodeColor("RED"), IRString("RED")},
		{"bool", true, IRBool(true)},
		{"int", 5, IRInt(5)},
		{"int32", int32(-5), IRInt(-5)},
		{"uint8", uint8(9), IRInt(9)},
		{"float64", 0.5, IRFloat(0.5)},
		{"float32", float32(0.25), IRFloat(0.25)},
		{"float slice", []float64{1, 2}, IRArray{IRFloat(1), IRFloat(2)}},
		{"fixed array", [3]bool{true, false, true}, IRArray{IRBool(true), IRBool(false), IRBool(true)}},
		{"nil slice", []int64(nil), IRArray{}},
		{"string set", []nodeColor{"A", "B"}, IRArray{IRString("A"), IRString("B")}},
		{"map", map[string]int{"a": 1}, IRObject{"a": IRInt(1)}},
		{"any map", map[string]any{"a": []any{"b"}}, IRObject{"a": IRArray{IRString("b")}}},
		{"proxy", fakeProxy{path: "bpy.data.textures[\"Clouds\"]"}, IRRef{Path: "bpy.data.textures[\"Clouds\"]"}},
		{"ir value", IRInt(1), IRInt(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromGoErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"uint overflow", uint64(math.MaxUint64)},
		{"int map key", map[int]string{1: "a"}},
		{"func", func() {}},
		{"nested nan", []any{1, math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGo(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestToGo(t *testing.T) {
	v := IRObject{
		"a": IRArray{IRInt(1), IRFloat(1.5), IRNull{}},
		"r": IRRef{Path: "bpy.context"},
	}
	assert.Equal(t, map[string]any{
		"a": []any{int64(1), 1.5, nil},
		"r": map[string]any{"$ref": "bpy.context"},
	}, ToGo(v))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "null", Kind(nil))
	assert.Equal(t, "float", Kind(IRFloat(1)))
	assert.Equal(t, "ref", Kind(IRRef{}))
	assert.Equal(t, "object", Kind(IRObject{}))
}

func TestSortedKeys(t *testing.T) {
	obj := IRObject{"b": IRNull{}, "a": IRNull{}, "C": IRNull{}}
	assert.Equal(t, []string{"C", "a", "b"}, obj.SortedKeys())
}
