package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_String_NormalizesIntegerValuedFloats(t *testing.T) {
	assert.Equal(t, "4", (&Number{Val: 4.0}).String())
	assert.Equal(t, "3.14", (&Number{Val: 3.14}).String())
	assert.Equal(t, "-2", (&Number{Val: -2.0}).String())
}

func TestNumber_Truthy(t *testing.T) {
	assert.False(t, (&Number{Val: 0}).Truthy())
	assert.True(t, (&Number{Val: 1}).Truthy())
	assert.True(t, (&Number{Val: -1}).Truthy())
}

func TestString_Truthy(t *testing.T) {
	assert.False(t, (&String{Val: ""}).Truthy())
	assert.True(t, (&String{Val: "x"}).Truthy())
}

func TestBool_Truthy(t *testing.T) {
	assert.True(t, (&Bool{Val: true}).Truthy())
	assert.False(t, (&Bool{Val: false}).Truthy())
}

func TestNil_Truthy(t *testing.T) {
	assert.False(t, (&Nil{}).Truthy())
}

func TestList_Truthy(t *testing.T) {
	assert.False(t, (&List{}).Truthy())
	assert.True(t, (&List{Elements: []Value{&Number{Val: 1}}}).Truthy())
}

func TestEquals_DifferentTypesAreNeverEqual(t *testing.T) {
	assert.False(t, (&Number{Val: 1}).Equals(&String{Val: "1"}))
	assert.False(t, (&Bool{Val: true}).Equals(&Number{Val: 1}))
}

func TestEquals_ListStructural(t *testing.T) {
	a := &List{Elements: []Value{&Number{Val: 1}, &String{Val: "x"}}}
	b := &List{Elements: []Value{&Number{Val: 1}, &String{Val: "x"}}}
	c := &List{Elements: []Value{&Number{Val: 1}, &String{Val: "y"}}}
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestDict_SetGetRemove(t *testing.T) {
	d := NewDict()
	d.Set(&String{Val: "k"}, &Number{Val: 1})
	v, ok := d.Get(&String{Val: "k"})
	assert.True(t, ok)
	assert.Equal(t, "1", v.String())

	d.Set(&String{Val: "k"}, &Number{Val: 2})
	assert.Equal(t, 1, d.Len())
	v, _ = d.Get(&String{Val: "k"})
	assert.Equal(t, "2", v.String())

	assert.True(t, d.Remove(&String{Val: "k"}))
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Remove(&String{Val: "k"}))
}

func TestDict_Truthy(t *testing.T) {
	d := NewDict()
	assert.False(t, d.Truthy())
	d.Set(&String{Val: "k"}, &Number{Val: 1})
	assert.True(t, d.Truthy())
}

func TestDict_Equals_EmptyDictsAreEqual(t *testing.T) {
	a := NewDict()
	b := NewDict()
	assert.True(t, a.Equals(b))
}

func TestDict_Equals_OrderIndependent(t *testing.T) {
	a := NewDict()
	a.Set(&String{Val: "k"}, &Number{Val: 1})
	a.Set(&String{Val: "j"}, &Number{Val: 2})

	b := NewDict()
	b.Set(&String{Val: "j"}, &Number{Val: 2})
	b.Set(&String{Val: "k"}, &Number{Val: 1})

	assert.True(t, a.Equals(b))
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger(4.0))
	assert.False(t, IsInteger(4.5))
}
