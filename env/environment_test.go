package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/mylang/value"
)

func TestEnvironment_Lookup_FindsOwnBinding(t *testing.T) {
	e := New(nil)
	e.Assign("x", &value.Number{Val: 1})

	v, ok := e.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestEnvironment_Lookup_WalksParentChain(t *testing.T) {
	global := New(nil)
	global.Assign("x", &value.Number{Val: 1})

	child := New(global)
	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestEnvironment_Lookup_MissReturnsFalse(t *testing.T) {
	e := New(nil)
	_, ok := e.Lookup("missing")
	assert.False(t, ok)
}

func TestEnvironment_Assign_NeverWritesParentFrame(t *testing.T) {
	global := New(nil)
	global.Assign("x", &value.Number{Val: 1})

	child := New(global)
	child.Assign("x", &value.Number{Val: 2})

	childVal, _ := child.Lookup("x")
	assert.Equal(t, "2", childVal.String())

	globalVal, _ := global.Lookup("x")
	assert.Equal(t, "1", globalVal.String())
}

func TestEnvironment_Assign_NewNameGoesToCurrentFrame(t *testing.T) {
	global := New(nil)
	child := New(global)
	child.Assign("y", &value.Number{Val: 5})

	_, okInGlobal := global.Lookup("y")
	assert.False(t, okInGlobal)

	v, okInChild := child.Lookup("y")
	assert.True(t, okInChild)
	assert.Equal(t, "5", v.String())
}
