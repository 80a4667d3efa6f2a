package ypath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ypath.dev/ypath"
	"go.ypath.dev/ypath/node"
	"go.ypath.dev/ypath/selector"
)

func kvEqual(key, value string) selector.KVPair {
	return selector.KVPair{
		Key:   selector.KVToken{Token: key},
		Value: selector.KVToken{Token: value},
		Op:    selector.OpEqual,
	}
}

func kvSelect(key string) selector.KVPair {
	return selector.KVPair{Key: selector.KVToken{Token: key}, Op: selector.OpSelect}
}

const peopleDoc = `
- name: Joe
  color: red
  friends: ~
- name: Sina
  color: blue
- name: Estragon
  color: red
  friends:
    Wladimir: good
    Godot: unreliable
`

func mustLoad(t *testing.T, doc string) *node.Node {
	t.Helper()

	n, err := node.Load([]byte(doc))
	require.NoError(t, err)

	return n
}

func TestSelectByKeyOnMap(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	v, code := ypath.SelectByKey(root.Index(0), "name")
	require.Equal(t, ypath.OK, code)

	text, ok := v.Text()
	require.True(t, ok)
	assert.Equal(t, "Joe", text)
}

func TestSelectByKeyOnMapMissing(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	_, code := ypath.SelectByKey(root.Index(0), "nonexistent")
	assert.Equal(t, ypath.NodeNotFound, code)
}

func TestSelectByKeyDistributesOverSequence(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	v, code := ypath.SelectByKey(root, "name")
	require.Equal(t, ypath.OK, code)
	require.Equal(t, node.KindSequence, v.Kind())
	require.Equal(t, 3, v.Len())

	text, ok := v.Index(1).Text()
	require.True(t, ok)
	assert.Equal(t, "Sina", text)
}

func TestSelectByKeyInvalidNodeType(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)
	scalar := root.Index(0).Lookup("name")

	_, code := ypath.SelectByKey(scalar, "x")
	assert.Equal(t, ypath.InvalidNodeType, code)
}

func TestSelectByIndexOnSequence(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	v, code := ypath.SelectByIndex(root, 2)
	require.Equal(t, ypath.OK, code)

	name, ok := v.Lookup("name").Text()
	require.True(t, ok)
	assert.Equal(t, "Estragon", name)
}

func TestSelectByIndexOutOfRange(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	_, code := ypath.SelectByIndex(root, 99)
	assert.Equal(t, ypath.NodeNotFound, code)
}

func TestSelectByIndexZeroIsIdentityOnScalarAndMap(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	scalar := root.Index(0).Lookup("name")
	v, code := ypath.SelectByIndex(scalar, 0)
	require.Equal(t, ypath.OK, code)
	assert.Equal(t, scalar, v)

	m := root.Index(0)
	v, code = ypath.SelectByIndex(m, 0)
	require.Equal(t, ypath.OK, code)
	assert.Equal(t, m, v)
}

func TestSelectByIndexNonzeroOnScalarFails(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)
	scalar := root.Index(0).Lookup("name")

	_, code := ypath.SelectByIndex(scalar, 1)
	assert.Equal(t, ypath.NodeNotFound, code)
}

func TestApplyMapFilterEqualOnMap(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	v, code := ypath.ApplyMapFilter(root.Index(0), []selector.KVPair{kvEqual("color", "red")})
	require.Equal(t, ypath.OK, code)
	assert.Equal(t, root.Index(0), v)
}

func TestApplyMapFilterEqualNoMatch(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	_, code := ypath.ApplyMapFilter(root.Index(0), []selector.KVPair{kvEqual("color", "purple")})
	assert.Equal(t, ypath.NodeNotFound, code)
}

func TestApplyMapFilterSelectProjection(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	v, code := ypath.ApplyMapFilter(root.Index(0), []selector.KVPair{kvSelect("color")})
	require.Equal(t, ypath.OK, code)
	require.Equal(t, node.KindMapping, v.Kind())

	text, ok := v.Lookup("color").Text()
	require.True(t, ok)
	assert.Equal(t, "red", text)

	assert.False(t, v.Lookup("name").IsDefined())
}

func TestApplyMapFilterConditionThenSelect(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	parts := []selector.KVPair{kvEqual("color", "red"), kvSelect("name")}

	v, code := ypath.ApplyMapFilter(root, parts)
	require.Equal(t, ypath.OK, code)
	require.Equal(t, node.KindSequence, v.Kind())
	require.Equal(t, 2, v.Len())

	first, ok := v.Index(0).Lookup("name").Text()
	require.True(t, ok)
	assert.Equal(t, "Joe", first)

	second, ok := v.Index(1).Lookup("name").Text()
	require.True(t, ok)
	assert.Equal(t, "Estragon", second)
}

func TestApplyMapFilterExists(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	exists := selector.KVPair{Key: selector.KVToken{Token: "friends"}, Op: selector.OpExists}

	v, code := ypath.ApplyMapFilter(root, []selector.KVPair{exists})
	require.Equal(t, ypath.OK, code)
	require.Equal(t, node.KindSequence, v.Kind())
	assert.Equal(t, 2, v.Len())
}

func TestApplyMapFilterRequiredKeyFailsWholeDoc(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)

	required := selector.KVPair{
		Key: selector.KVToken{Token: "nonexistent", Required: true},
		Op:  selector.OpExists,
	}

	_, code := ypath.ApplyMapFilter(root.Index(0), []selector.KVPair{required})
	assert.Equal(t, ypath.NodeNotFound, code)
}

func TestApplyMapFilterOnScalarIsInvalidNodeType(t *testing.T) {
	t.Parallel()

	root := mustLoad(t, peopleDoc)
	scalar := root.Index(0).Lookup("name")

	_, code := ypath.ApplyMapFilter(scalar, []selector.KVPair{kvSelect("x")})
	assert.Equal(t, ypath.InvalidNodeType, code)
}
