package interop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

// stubCaller answers every request with value and remembers the requests.
type stubCaller struct {
	value ir.IRValue
	err   error
	reqs  []interop.Request
}

func (s *stubCaller) Invoke(_ context.Context, req interop.Request) (ir.IRValue, error) {
	s.reqs = append(s.reqs, req)
	return s.value, s.err
}

type speaker struct {
	interop.Proxy
}

func newSpeaker(c interop.Caller, accessor string) speaker {
	return speaker{Proxy: interop.NewProxy(c, accessor)}
}

type nodeColorTag string

func TestTypedGetters(t *testing.T) {
	ctx := context.Background()

	t.Run("boolean", func(t *testing.T) {
		s := &stubCaller{value: ir.IRBool(true)}
		v, err := interop.GetBoolean(ctx, s, "n.hide")
		require.NoError(t, err)
		assert.True(t, v)
		assert.Equal(t, interop.Request{Op: interop.OpGet, Path: "n.hide"}, s.reqs[0])
	})

	t.Run("float accepts int", func(t *testing.T) {
		v, err := interop.GetFloat(ctx, &stubCaller{value: ir.IRInt(2)}, "n.width")
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	})

	t.Run("integer rejects float", func(t *testing.T) {
		_, err := interop.GetInteger(ctx, &stubCaller{value: ir.IRFloat(2.5)}, "n.count")
		var ke *interop.KindError
		require.ErrorAs(t, err, &ke)
		assert.Equal(t, "int", ke.Want)
		assert.Equal(t, "float", ke.Got)
	})

	t.Run("enum", func(t *testing.T) {
		v, err := interop.GetEnum[nodeColorTag](ctx, &stubCaller{value: ir.IRString("INPUT")}, "n.color_tag")
		require.NoError(t, err)
		assert.Equal(t, nodeColorTag("INPUT"), v)
	})

	t.Run("enum set", func(t *testing.T) {
		s := &stubCaller{value: ir.IRArray{ir.IRString("LIBRARY_EDITABLE"), ir.IRString("OUTPUT")}}
		v, err := interop.GetEnumSet[string](ctx, s, "p.tags")
		require.NoError(t, err)
		assert.Equal(t, []string{"LIBRARY_EDITABLE", "OUTPUT"}, v)
	})

	t.Run("array", func(t *testing.T) {
		s := &stubCaller{value: ir.IRArray{ir.IRFloat(1), ir.IRInt(2)}}
		v, err := interop.GetArray[float64](ctx, s, "n.location", 2)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, v)
	})

	t.Run("array wrong length", func(t *testing.T) {
		s := &stubCaller{value: ir.IRArray{ir.IRFloat(1), ir.IRFloat(2), ir.IRFloat(3)}}
		_, err := interop.GetArray[float64](ctx, s, "n.location", 2)
		var le *interop.LengthError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, 2, le.Want)
		assert.Equal(t, 3, le.Got)
	})

	t.Run("array wrong element", func(t *testing.T) {
		s := &stubCaller{value: ir.IRArray{ir.IRBool(true), ir.IRInt(1)}}
		_, err := interop.GetArray[bool](ctx, s, "n.flags", 0)
		var ke *interop.KindError
		require.ErrorAs(t, err, &ke)
		assert.Equal(t, "n.flags[1]", ke.Path)
	})

	t.Run("class uses host path", func(t *testing.T) {
		s := &stubCaller{value: ir.IRRef{Path: `bpy.data.speakers["Speaker"]`}}
		v, err := interop.GetClass(ctx, s, "bpy.context.object.data", newSpeaker)
		require.NoError(t, err)
		assert.Equal(t, `bpy.data.speakers["Speaker"]`, v.Accessor())
		assert.Equal(t, interop.Caller(s), v.Caller())
	})

	t.Run("class falls back to read path", func(t *testing.T) {
		v, err := interop.GetClass(ctx, &stubCaller{value: ir.IRRef{}}, "bpy.context.object.data", newSpeaker)
		require.NoError(t, err)
		assert.Equal(t, "bpy.context.object.data", v.Accessor())
	})

	t.Run("class none", func(t *testing.T) {
		_, err := interop.GetClass(ctx, &stubCaller{value: ir.IRNull{}}, "bpy.context.object", newSpeaker)
		assert.ErrorIs(t, err, interop.ErrNone)
		assert.True(t, interop.IsNone(err))
	})

	t.Run("void", func(t *testing.T) {
		assert.NoError(t, interop.GetVoid(ctx, &stubCaller{value: ir.IRNull{}}, "n.select"))
	})
}

func TestTypedSetters(t *testing.T) {
	ctx := context.Background()
	s := &stubCaller{value: ir.IRNull{}}

	require.NoError(t, interop.SetFloat(ctx, s, "n.width", 140))
	require.NoError(t, interop.SetEnum(ctx, s, "n.color_tag", nodeColorTag("OUTPUT")))
	require.NoError(t, interop.SetEnumSet(ctx, s, "p.tags", []string{"A", "B"}))
	require.NoError(t, interop.SetArray(ctx, s, "n.location", []float64{1, 2}))
	require.NoError(t, interop.SetClass(ctx, s, "n.parent", newSpeaker(s, "bpy.data.speakers[0]")))
	require.NoError(t, interop.SetClass(ctx, s, "n.parent", nil))

	values := make([]ir.IRValue, len(s.reqs))
	for i, r := range s.reqs {
		assert.Equal(t, interop.OpSet, r.Op)
		values[i] = r.Value
	}
	assert.Equal(t, []ir.IRValue{
		ir.IRFloat(140),
		ir.IRString("OUTPUT"),
		ir.IRArray{ir.IRString("A"), ir.IRString("B")},
		ir.IRArray{ir.IRFloat(1), ir.IRFloat(2)},
		ir.IRRef{Path: "bpy.data.speakers[0]"},
		ir.IRNull{},
	}, values)
}

func TestSetFloatRejectsNaN(t *testing.T) {
	s := &stubCaller{}
	zero := 0.0
	err := interop.SetFloat(context.Background(), s, "n.width", zero/zero)
	assert.Error(t, err)
	assert.Empty(t, s.reqs, "nothing is sent")
}

func TestTypedCalls(t *testing.T) {
	ctx := context.Background()

	t.Run("options", func(t *testing.T) {
		s := &stubCaller{value: ir.IRNull{}}
		err := interop.CallVoid(ctx, s, "links.new", interop.Options{
			"input":         newSpeaker(s, "a.inputs[0]"),
			"verify_limits": true,
			"unset":         nil,
		})
		require.NoError(t, err)
		assert.Equal(t, interop.Request{
			Op:   interop.OpCall,
			Path: "links.new",
			Args: ir.IRObject{"input": ir.IRRef{Path: "a.inputs[0]"}, "verify_limits": ir.IRBool(true)},
		}, s.reqs[0])
	})

	t.Run("no options", func(t *testing.T) {
		s := &stubCaller{value: ir.IRBool(true)}
		ok, err := interop.CallBoolean(ctx, s, "op.poll", nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Nil(t, s.reqs[0].Args)
	})

	t.Run("enum set result", func(t *testing.T) {
		s := &stubCaller{value: ir.IRArray{ir.IRString("FINISHED")}}
		v, err := interop.CallEnumSet[string](ctx, s, "bpy.ops.mesh.rip_edge", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"FINISHED"}, v)
	})

	t.Run("class result", func(t *testing.T) {
		s := &stubCaller{value: ir.IRRef{Path: `bpy.data.speakers["New"]`}}
		v, err := interop.CallClass(ctx, s, "bpy.data.speakers.new", interop.Options{"name": "New"}, newSpeaker)
		require.NoError(t, err)
		assert.Equal(t, `bpy.data.speakers["New"]`, v.String())
	})

	t.Run("class none", func(t *testing.T) {
		_, err := interop.CallClass(ctx, &stubCaller{value: ir.IRNull{}}, "x.get", nil, newSpeaker)
		assert.ErrorIs(t, err, interop.ErrNone)
	})

	t.Run("bad option", func(t *testing.T) {
		s := &stubCaller{}
		_, err := interop.CallString(ctx, s, "x.f", interop.Options{"f": func() {}})
		assert.Error(t, err)
		assert.Empty(t, s.reqs)
	})

	t.Run("numeric results", func(t *testing.T) {
		n, err := interop.CallInteger(ctx, &stubCaller{value: ir.IRInt(3)}, "x.count", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		f, err := interop.CallFloat(ctx, &stubCaller{value: ir.IRFloat(0.5)}, "x.evaluate", interop.Options{"position": 0.25})
		require.NoError(t, err)
		assert.Equal(t, 0.5, f)
	})
}

func TestCollectionOps(t *testing.T) {
	ctx := context.Background()

	s := &stubCaller{value: ir.IRInt(3)}
	n, err := interop.Len(ctx, s, "bpy.data.speakers")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	s = &stubCaller{value: ir.IRArray{ir.IRString("A"), ir.IRString("B")}}
	keys, err := interop.Keys(ctx, s, "bpy.data.speakers")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, keys)

	s = &stubCaller{value: ir.IRInt(-1)}
	idx, err := interop.Find(ctx, s, "bpy.data.speakers", "Z")
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
	assert.Equal(t, interop.Request{
		Op:   interop.OpFind,
		Path: "bpy.data.speakers",
		Args: ir.IRObject{"key": ir.IRString("Z")},
	}, s.reqs[0])
}
