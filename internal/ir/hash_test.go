package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallIDDeterminism(t *testing.T) {
	args := IRObject{"location": IRArray{IRFloat(1), IRFloat(2)}}

	id1, err := CallID("session-1", 1, "set", "bpy.context.object.location", args)
	require.NoError(t, err)
	id2, err := CallID("session-1", 1, "set", "bpy.context.object.location", args)
	require.NoError(t, err)

	assert.Equal(t, id1, id2, "CallID must be deterministic")
	assert.Len(t, id1, 64, "SHA-256 hex is 64 characters")
}

func TestCallIDChangesWithInput(t *testing.T) {
	base := MustCallID("s1", 1, "get", "bpy.data.speakers", nil)

	assert.NotEqual(t, base, MustCallID("s2", 1, "get", "bpy.data.speakers", nil), "session")
	assert.NotEqual(t, base, MustCallID("s1", 2, "get", "bpy.data.speakers", nil), "seq")
	assert.NotEqual(t, base, MustCallID("s1", 1, "len", "bpy.data.speakers", nil), "op")
	assert.NotEqual(t, base, MustCallID("s1", 1, "get", "bpy.data.objects", nil), "path")
	assert.NotEqual(t, base, MustCallID("s1", 1, "get", "bpy.data.speakers", IRInt(1)), "args")
}

func TestCallIDNilArgsEqualsNull(t *testing.T) {
	assert.Equal(t,
		MustCallID("s1", 1, "get", "bpy.context", nil),
		MustCallID("s1", 1, "get", "bpy.context", IRNull{}),
	)
}

func TestCallIDRejectsNonFinite(t *testing.T) {
	_, err := CallID("s1", 1, "set", "x.y", IRFloat(math.NaN()))
	assert.Error(t, err)
}

func TestSchemaHash(t *testing.T) {
	classes := []ClassSpec{{
		Name: "Node",
		Kind: KindType,
		Properties: []PropertySpec{
			{Name: "name", Type: TypeString},
		},
	}}

	h1, err := SchemaHash(classes)
	require.NoError(t, err)
	h2, err := SchemaHash(classes)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	classes[0].Properties[0].Readonly = true
	h3, err := SchemaHash(classes)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestHashDomainSeparation(t *testing.T) {
	data := []byte(`{"a":1}`)
	assert.NotEqual(t, hashWithDomain(DomainCall, data), hashWithDomain(DomainSchema, data))
}
