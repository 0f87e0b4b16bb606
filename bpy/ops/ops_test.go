package ops_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/bpy/ops"
	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/interop/interoptest"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

func meshOps(t *testing.T, canRun bool) (*interoptest.Host, *interop.Client, *ir.IRObject) {
	t.Helper()
	var got ir.IRObject
	h := interoptest.NewHost()
	h.Add("bpy.ops.mesh", &interoptest.Object{
		Class: "BPyOpsSubMod",
		Methods: map[string]interoptest.Method{
			"rip_edge": func(args ir.IRObject) (ir.IRValue, error) {
				got = args
				if !canRun {
					return ir.IRArray{ir.IRString("CANCELLED")}, nil
				}
				return ir.IRArray{ir.IRString("FINISHED")}, nil
			},
		},
	})
	h.Add(ops.MeshRipEdgePath, &interoptest.Object{
		Class: "BPyOpsSubModOp",
		Methods: map[string]interoptest.Method{
			"poll": func(ir.IRObject) (ir.IRValue, error) {
				return ir.IRBool(canRun), nil
			},
		},
	})
	c := interop.New(interoptest.Transport(h))
	t.Cleanup(func() { c.Close() })
	return h, c, &got
}

func TestOperatorPaths(t *testing.T) {
	tests := []struct {
		accessor string
		want     string
	}{
		{ops.ArmatureDuplicatePath, "bpy.ops.armature.duplicate"},
		{ops.GpencilExtrudePath, "bpy.ops.gpencil.extrude"},
		{ops.MeshExtrudeEdgesIndivPath, "bpy.ops.mesh.extrude_edges_indiv"},
		{ops.MeshRipEdgePath, "bpy.ops.mesh.rip_edge"},
		{ops.NodeSelectPath, "bpy.ops.node.select"},
		{ops.TransformTranslatePath, "bpy.ops.transform.translate"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.accessor)
		})
	}
}

func TestOperatorCall(t *testing.T) {
	ctx := context.Background()
	h, c, got := meshOps(t, true)
	op := ops.NewMeshRipEdge(c, ops.MeshRipEdgePath)

	ok, err := op.Poll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	flags, err := op.Call(ctx, interop.Options{"use_fill": true, "mirror": nil})
	require.NoError(t, err)
	assert.Equal(t, []string{"FINISHED"}, flags)
	assert.Equal(t, ir.IRObject{"use_fill": ir.IRBool(true)}, *got, "nil options are not sent")

	assert.Equal(t, []string{"bpy.ops.mesh.rip_edge.poll", "bpy.ops.mesh.rip_edge"}, h.Paths())
}

func TestOperatorCancelled(t *testing.T) {
	ctx := context.Background()
	_, c, _ := meshOps(t, false)
	op := ops.NewMeshRipEdge(c, ops.MeshRipEdgePath)

	ok, err := op.Poll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	flags, err := op.Call(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"CANCELLED"}, flags)
}

func TestOperatorMissing(t *testing.T) {
	ctx := context.Background()
	_, c, _ := meshOps(t, true)
	op := ops.NewMeshExtrudeEdgesIndiv(c, ops.MeshExtrudeEdgesIndivPath)

	_, err := op.Call(ctx, nil)
	assert.True(t, interop.IsAttributeError(err))
}
