package environment

import (
	"testing"

	"github.com/ashgrove/lt/objects"
	"github.com/stretchr/testify/assert"
)

func TestLookupWalksParentChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Declare("x", &objects.Integer{Value: 1})

	child := NewEnvironment(root)
	val, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int32(1), val.(*objects.Integer).Value)
}

func TestDeclareShadowsInCurrentFrame(t *testing.T) {
	root := NewEnvironment(nil)
	root.Declare("x", &objects.Integer{Value: 1})
	root.Declare("x", &objects.Integer{Value: 2})

	val, ok := root.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int32(2), val.(*objects.Integer).Value)
}

func TestDeclareInChildDoesNotLeakToParent(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)
	child.Declare("x", &objects.Integer{Value: 2})

	_, ok := root.Lookup("x")
	assert.False(t, ok)
}

func TestAssignMutatesOwningFrame(t *testing.T) {
	root := NewEnvironment(nil)
	root.Declare("x", &objects.Integer{Value: 1})
	child := NewEnvironment(root)

	err := child.Assign("x", &objects.Integer{Value: 99})
	assert.NoError(t, err)

	val, ok := root.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int32(99), val.(*objects.Integer).Value)
}

func TestAssignUndefinedVariableFails(t *testing.T) {
	root := NewEnvironment(nil)
	err := root.Assign("never_declared", &objects.Integer{Value: 1})
	assert.Error(t, err)
}
