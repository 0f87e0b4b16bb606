package codegen

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

func nodeClasses() []ir.ClassSpec {
	return []ir.ClassSpec{
		{Name: "bpy_struct", Kind: ir.KindType, Description: "built-in base class for all classes in bpy.types"},
		{Name: "NodeSocket", Kind: ir.KindType, Base: "bpy_struct", Properties: []ir.PropertySpec{
			{Name: "name", Type: ir.TypeString},
		}},
		{Name: "NodeLink", Kind: ir.KindType, Base: "bpy_struct"},
		{Name: "NodeInputs", Kind: ir.KindType, CollectionOf: "NodeSocket", Functions: []ir.FunctionSpec{
			{Name: "new", Params: []ir.ParamSpec{{Name: "type", Type: ir.TypeString}, {Name: "name", Type: ir.TypeString}}, Returns: ir.TypeClass, ReturnClass: "NodeSocket"},
			{Name: "clear"},
		}},
		{
			Name: "Node", Kind: ir.KindType, Base: "bpy_struct", Description: "Node in a node tree",
			Properties: []ir.PropertySpec{
				{Name: "location", Type: ir.TypeFloat, ArrayLength: 2, Detail: "float array of 2 items in [-100000, 100000], default (0.0, 0.0)"},
				{Name: "inputs", Type: ir.TypeCollection, Class: "NodeSocket", Wrapper: "NodeInputs", Readonly: true},
				{Name: "internal_links", Type: ir.TypeCollection, Class: "NodeLink", Readonly: true},
				{Name: "type", Type: ir.TypeEnum, Items: []string{"CUSTOM"}, Readonly: true},
				{Name: "parent", Type: ir.TypeClass, Class: "Node"},
				{Name: "hide", Type: ir.TypeBoolean},
				{Name: "users_material", Type: ir.TypeVoid, Readonly: true},
				{Name: "keys", Type: ir.TypeInt},
			},
			Functions: []ir.FunctionSpec{
				{Name: "update", Description: "Update on editor changes"},
				{Name: "draw_label", Returns: ir.TypeString},
				{Name: "poll_instance", Params: []ir.ParamSpec{{Name: "node_tree", Type: ir.TypeClass}}, Returns: ir.TypeBoolean},
			},
		},
		{Name: "MESH_OT_rip_edge", Kind: ir.KindOperator, Description: "Extend vertices along the edge closest to the cursor"},
	}
}

func generate(t *testing.T, classes []ir.ClassSpec) map[string]string {
	t.Helper()
	files, err := New().Generate(context.Background(), classes)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Path] = string(f.Content)
	}
	return out
}

func TestGenerateFileSet(t *testing.T) {
	files, err := New().Generate(context.Background(), nodeClasses())
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"ops/doc.go",
		"ops/mesh_rip_edge.go",
		"types/bpy_struct.go",
		"types/doc.go",
		"types/enums.go",
		"types/node.go",
		"types/node_inputs.go",
		"types/node_link.go",
		"types/node_socket.go",
	}, paths)
}

func TestGenerateParsesAndHasHeader(t *testing.T) {
	fset := token.NewFileSet()
	for path, src := range generate(t, nodeClasses()) {
		assert.True(t, strings.HasPrefix(src, Header+"\n"), path)
		_, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		assert.NoError(t, err, path)
	}
}

func TestGenerateNode(t *testing.T) {
	src := generate(t, nodeClasses())["types/node.go"]

	for _, want := range []string{
		"package types",
		"// Node wraps bpy.types.Node.\n// Node in a node tree\n//\n// https://docs.blender.org/api/current/bpy.types.Node.html\ntype Node struct {\n\tBpyStruct\n}",
		"func NewNode(c interop.Caller, accessor string) Node {\n\treturn Node{BpyStruct: NewBpyStruct(c, accessor)}\n}",
		`return interop.GetArray[float64](ctx, n.Caller(), n.Path("location"), 2)`,
		`return interop.SetArray(ctx, n.Caller(), n.Path("location"), value)`,
		"func (n Node) Inputs() NodeInputs {\n\treturn NewNodeInputs(n.Caller(), n.Path(\"inputs\"))\n}",
		"func (n Node) InternalLinks() collection.Collection[NodeLink] {",
		`return collection.New(n.Caller(), n.Path("internal_links"), NewNodeLink)`,
		"func (n Node) Type(ctx context.Context) (NodeType, error) {",
		`return interop.GetEnum[NodeType](ctx, n.Caller(), n.Path("type"))`,
		`return interop.GetClass(ctx, n.Caller(), n.Path("parent"), NewNode)`,
		"func (n Node) SetParent(ctx context.Context, value interop.Accessor) error {",
		"func (n Node) SetHide(ctx context.Context, value bool) error {",
		"func (n Node) UsersMaterial(ctx context.Context) error {",
		"func (n Node) Keys_(ctx context.Context) (int64, error) {",
		"func (n Node) SetKeys_(ctx context.Context, value int64) error {",
		"func (n Node) Update(ctx context.Context) error {\n\treturn interop.CallVoid(ctx, n.Caller(), n.Path(\"update\"), nil)\n}",
		"func (n Node) DrawLabel(ctx context.Context) (string, error) {",
		"func (n Node) PollInstance(ctx context.Context, opts interop.Options) (bool, error) {\n\treturn interop.CallBoolean(ctx, n.Caller(), n.Path(\"poll_instance\"), opts)\n}",
		"//   - node_tree: class",
	} {
		assert.Contains(t, src, want)
	}

	// readonly properties have no setter
	assert.NotContains(t, src, "SetType(")
	assert.NotContains(t, src, "SetInputs(")
	assert.NotContains(t, src, "SetUsersMaterial(")
}

func TestGenerateSpecializedCollection(t *testing.T) {
	src := generate(t, nodeClasses())["types/node_inputs.go"]

	assert.Contains(t, src, "type NodeInputs struct {\n\tcollection.Collection[NodeSocket]\n}")
	assert.Contains(t, src, "return NodeInputs{Collection: collection.New(c, accessor, NewNodeSocket)}")
	assert.Contains(t, src, "func (n NodeInputs) New(ctx context.Context, opts interop.Options) (NodeSocket, error) {")
	assert.Contains(t, src, `return interop.CallClass(ctx, n.Caller(), n.Path("new"), opts, NewNodeSocket)`)
	assert.Contains(t, src, "func (n NodeInputs) Clear(ctx context.Context) error {")
}

func TestGenerateRootProxy(t *testing.T) {
	src := generate(t, nodeClasses())["types/bpy_struct.go"]

	assert.Contains(t, src, "type BpyStruct struct {\n\tinterop.Proxy\n}")
	assert.Contains(t, src, "return BpyStruct{Proxy: interop.NewProxy(c, accessor)}")
	assert.NotContains(t, src, `"context"`, "unused imports are dropped")
	assert.NotContains(t, src, "bpy/collection")
}

func TestGenerateOperator(t *testing.T) {
	src := generate(t, nodeClasses())["ops/mesh_rip_edge.go"]

	assert.Contains(t, src, "package ops")
	assert.Contains(t, src, "// MeshRipEdge is the bpy.ops.mesh.rip_edge operator (MESH_OT_rip_edge).")
	assert.Contains(t, src, `const MeshRipEdgePath = "bpy.ops.mesh.rip_edge"`)
	assert.Contains(t, src, "func (m MeshRipEdge) Call(ctx context.Context, opts interop.Options) ([]string, error) {")
	assert.Contains(t, src, "return interop.CallEnumSet[string](ctx, m.Caller(), m.Accessor(), opts)")
	assert.Contains(t, src, `return interop.CallBoolean(ctx, m.Caller(), m.Path("poll"), nil)`)
}

func TestGenerateEnums(t *testing.T) {
	src := generate(t, nodeClasses())["types/enums.go"]

	assert.Contains(t, src, "type NodeType string")
	assert.Contains(t, src, `NodeTypeCustom NodeType = "CUSTOM"`)
	assert.Contains(t, src, "func (e NodeType) Valid() bool {")
	assert.Contains(t, src, "case NodeTypeCustom:")
}

func TestGenerateEnumSetWithoutItemsUsesStrings(t *testing.T) {
	src := generate(t, []ir.ClassSpec{{
		Name: "Property", Kind: ir.KindType,
		Properties: []ir.PropertySpec{{Name: "tags", Type: ir.TypeEnumSet, Readonly: true}},
	}})

	assert.Contains(t, src["types/property.go"], `return interop.GetEnumSet[string](ctx, p.Caller(), p.Path("tags"))`)
	_, ok := src["types/enums.go"]
	assert.False(t, ok)
}

func TestGenerateUnknownClass(t *testing.T) {
	_, err := New().Generate(context.Background(), []ir.ClassSpec{{
		Name: "A", Kind: ir.KindType,
		Properties: []ir.PropertySpec{{Name: "b", Type: ir.TypeClass, Class: "Missing"}},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown class "Missing"`)
}

func TestGenerateCustomModule(t *testing.T) {
	files, err := New(WithModule("example.com/bpy")).Generate(context.Background(), []ir.ClassSpec{{
		Name: "Speaker", Kind: ir.KindType,
		Properties: []ir.PropertySpec{{Name: "volume", Type: ir.TypeFloat}},
	}})
	require.NoError(t, err)

	for _, f := range files {
		if f.Path == "types/speaker.go" {
			assert.Contains(t, string(f.Content), `"example.com/bpy/interop"`)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	files := []File{
		{Path: "types/a.go", Content: []byte("package types\n")},
		{Path: "ops/b.go", Content: []byte("package ops\n")},
	}
	require.NoError(t, Write(dir, files))

	got, err := os.ReadFile(filepath.Join(dir, "types", "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "package types\n", string(got))
	_, err = os.Stat(filepath.Join(dir, "ops", "b.go"))
	assert.NoError(t, err)
}

func TestWriteRemovesStaleGeneratedFiles(t *testing.T) {
	dir := t.TempDir()

	first, err := New().Generate(context.Background(), nodeClasses())
	require.NoError(t, err)
	require.NoError(t, Write(dir, first))
	require.FileExists(t, filepath.Join(dir, "types", "node.go"))
	require.FileExists(t, filepath.Join(dir, "types", "enums.go"))

	handWritten := filepath.Join(dir, "types", "extra.go")
	require.NoError(t, os.WriteFile(handWritten, []byte("package types\n"), 0o644))
	testFile := filepath.Join(dir, "types", "node_test.go")
	require.NoError(t, os.WriteFile(testFile, []byte(Header+"\n\npackage types_test\n"), 0o644))

	var withoutNode []ir.ClassSpec
	for _, c := range nodeClasses() {
		if c.Name != "Node" {
			withoutNode = append(withoutNode, c)
		}
	}
	second, err := New().Generate(context.Background(), withoutNode)
	require.NoError(t, err)
	require.NoError(t, Write(dir, second))

	assert.NoFileExists(t, filepath.Join(dir, "types", "node.go"))
	assert.NoFileExists(t, filepath.Join(dir, "types", "enums.go"), "the only enum belonged to Node")
	assert.FileExists(t, filepath.Join(dir, "types", "node_socket.go"))
	assert.FileExists(t, filepath.Join(dir, "ops", "mesh_rip_edge.go"))
	assert.FileExists(t, handWritten)
	assert.FileExists(t, testFile)
}
