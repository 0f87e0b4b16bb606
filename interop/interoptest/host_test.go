package interoptest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

func speakersHost() *Host {
	h := NewHost()
	h.Add("bpy.data.speakers", &Object{
		Class: "BlendDataSpeakers",
		Items: []Item{
			{Key: "Speaker", Object: &Object{Class: "Speaker", Props: map[string]ir.IRValue{
				"volume": ir.IRFloat(1),
				"name":   ir.IRString("Speaker"),
			}}},
			{Key: "Speaker.001", Object: &Object{Class: "Speaker", Props: map[string]ir.IRValue{
				"volume": ir.IRFloat(0.5),
			}}},
		},
	})
	h.Add("bpy.context", &Object{Class: "Context", Props: map[string]ir.IRValue{
		"speaker": ir.IRRef{Path: `bpy.data.speakers["Speaker"]`},
		"object":  ir.IRNull{},
	}})
	return h
}

func handle(h *Host, op interop.Op, path string) interop.Response {
	return h.Handle(interop.Request{ID: "x", Op: op, Path: path})
}

func TestHostGet(t *testing.T) {
	h := speakersHost()

	tests := []struct {
		path string
		want ir.IRValue
	}{
		{`bpy.data.speakers["Speaker"].volume`, ir.IRFloat(1)},
		{`bpy.data.speakers[1].volume`, ir.IRFloat(0.5)},
		{`bpy.data.speakers[-1].volume`, ir.IRFloat(0.5)},
		{`bpy.data.speakers[0]`, ir.IRRef{Path: `bpy.data.speakers["Speaker"]`}},
		{`bpy.context.speaker.name`, ir.IRString("Speaker")},
		{`bpy.context.object`, ir.IRNull{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := handle(h, interop.OpGet, tt.path)
			require.True(t, resp.OK, "%+v", resp.Error)
			assert.Equal(t, tt.want, resp.Value)
			assert.Equal(t, "x", resp.ID)
		})
	}
}

func TestHostErrors(t *testing.T) {
	h := speakersHost()

	tests := []struct {
		op   interop.Op
		path string
		typ  string
	}{
		{interop.OpGet, `bpy.data.speakers["Nope"].volume`, "KeyError"},
		{interop.OpGet, `bpy.data.speakers[5]`, "IndexError"},
		{interop.OpGet, `bpy.data.speakers[0].pitch`, "AttributeError"},
		{interop.OpGet, `bpy.context.object.name`, "AttributeError"},
		{interop.OpGet, `nothing`, "NameError"},
		{interop.OpCall, `bpy.data.speakers.new`, "AttributeError"},
		{interop.OpLen, `bpy.context`, "TypeError"},
		{"exec", `bpy`, "ValueError"},
	}
	for _, tt := range tests {
		t.Run(string(tt.op)+" "+tt.path, func(t *testing.T) {
			resp := handle(h, tt.op, tt.path)
			assert.False(t, resp.OK)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.typ, resp.Error.Type, resp.Error.Message)
		})
	}
}

func TestHostSet(t *testing.T) {
	h := speakersHost()
	h.Add("bpy.context.scene", &Object{
		Class:    "Scene",
		Props:    map[string]ir.IRValue{"frame_current": ir.IRInt(1), "camera": ir.IRNull{}, "cursor": ir.IRArray{ir.IRFloat(0), ir.IRFloat(0)}, "tags": ir.IRArray{}},
		Readonly: map[string]bool{"frame_current": false},
	})

	set := func(path string, v ir.IRValue) interop.Response {
		return h.Handle(interop.Request{ID: "s", Op: interop.OpSet, Path: path, Value: v})
	}

	assert.True(t, set(`bpy.data.speakers[0].volume`, ir.IRInt(2)).OK)
	v, ok := h.Prop(`bpy.data.speakers["Speaker"].volume`)
	require.True(t, ok)
	assert.Equal(t, ir.IRFloat(2), v, "ints widen to floats")

	assert.True(t, set("bpy.context.scene.camera", ir.IRRef{Path: `bpy.data.speakers[1]`}).OK)
	assert.Equal(t, "ReferenceError", set("bpy.context.scene.camera", ir.IRRef{Path: "bpy.data.gone"}).Error.Type)
	assert.Equal(t, "TypeError", set("bpy.context.scene.frame_current", ir.IRString("x")).Error.Type)
	assert.Equal(t, "ValueError", set("bpy.context.scene.cursor", ir.IRArray{ir.IRFloat(1)}).Error.Type)
	assert.True(t, set("bpy.context.scene.cursor", ir.IRArray{ir.IRInt(1), ir.IRFloat(2)}).OK)
	assert.True(t, set("bpy.context.scene.tags", ir.IRArray{ir.IRString("A"), ir.IRString("B"), ir.IRString("C")}).OK)
	assert.Equal(t, "AttributeError", set("bpy.context.scene.nope", ir.IRInt(1)).Error.Type)
	assert.Equal(t, "TypeError", set("bpy.data.speakers[0]", ir.IRInt(1)).Error.Type)
}

func TestHostReadonly(t *testing.T) {
	h := NewHost()
	h.Add("bpy.context.object", &Object{
		Class:    "Object",
		Props:    map[string]ir.IRValue{"type": ir.IRString("MESH")},
		Readonly: map[string]bool{"type": true},
	})

	resp := h.Handle(interop.Request{Op: interop.OpSet, Path: "bpy.context.object.type", Value: ir.IRString("EMPTY")})
	require.False(t, resp.OK)
	assert.Equal(t, "AttributeError", resp.Error.Type)
	assert.Contains(t, resp.Error.Message, "read-only")
}

func TestHostCollectionOps(t *testing.T) {
	h := speakersHost()

	assert.Equal(t, ir.IRInt(2), handle(h, interop.OpLen, "bpy.data.speakers").Value)
	assert.Equal(t, ir.IRArray{ir.IRString("Speaker"), ir.IRString("Speaker.001")},
		handle(h, interop.OpKeys, "bpy.data.speakers").Value)

	find := func(key string) ir.IRValue {
		return h.Handle(interop.Request{Op: interop.OpFind, Path: "bpy.data.speakers",
			Args: ir.IRObject{"key": ir.IRString(key)}}).Value
	}
	assert.Equal(t, ir.IRInt(1), find("Speaker.001"))
	assert.Equal(t, ir.IRInt(-1), find("Missing"))
}

func TestHostMethods(t *testing.T) {
	h := NewHost()
	var got ir.IRObject
	h.Add("bpy.ops.mesh", &Object{Class: "OpsModule", Methods: map[string]Method{
		"rip_edge": func(args ir.IRObject) (ir.IRValue, error) {
			got = args
			return ir.IRArray{ir.IRString("FINISHED")}, nil
		},
		"fail": func(ir.IRObject) (ir.IRValue, error) {
			return nil, &Raise{Type: "RuntimeError", Message: "Operator bpy.ops.mesh.fail.poll() failed, context is incorrect"}
		},
	}})

	resp := h.Handle(interop.Request{Op: interop.OpCall, Path: "bpy.ops.mesh.rip_edge",
		Args: ir.IRObject{"mirror": ir.IRBool(true)}})
	require.True(t, resp.OK)
	assert.Equal(t, ir.IRArray{ir.IRString("FINISHED")}, resp.Value)
	assert.Equal(t, ir.IRObject{"mirror": ir.IRBool(true)}, got)

	resp = h.Handle(interop.Request{Op: interop.OpCall, Path: "bpy.ops.mesh.fail"})
	require.False(t, resp.OK)
	assert.Equal(t, "RuntimeError", resp.Error.Type)
}

func TestHostRecordsCalls(t *testing.T) {
	h := speakersHost()
	handle(h, interop.OpHello, "")
	handle(h, interop.OpLen, "bpy.data.speakers")

	assert.Equal(t, []string{"", "bpy.data.speakers"}, h.Paths())
	assert.Len(t, h.Calls(), 2)

	h.Reset()
	assert.Empty(t, h.Calls())
	_, ok := h.Object("bpy.data.speakers")
	assert.True(t, ok, "Reset keeps objects")
}
