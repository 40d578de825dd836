package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type (
	CustomString string
	CustomInt    int
	CustomStruct struct {
		Field string
	}
)

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		got      bool
		expected bool
	}{
		{"matching string type", Is[string](reflect.TypeOf("")), true},
		{"named string is not string", Is[string](reflect.TypeOf(CustomString(""))), false},
		{"matching custom string type", Is[CustomString](reflect.TypeOf(CustomString(""))), true},
		{"matching int type", Is[int](reflect.TypeOf(0)), true},
		{"named int is not int", Is[int](reflect.TypeOf(CustomInt(0))), false},
		{"matching struct", Is[CustomStruct](reflect.TypeOf(CustomStruct{})), true},
		{"pointer is not the struct", Is[CustomStruct](reflect.TypeOf(&CustomStruct{})), false},
		{"time", Is[time.Time](reflect.TypeOf(time.Time{})), true},
		{"nil type", Is[string](nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

type textValue struct{ v string }

func (t *textValue) UnmarshalText(b []byte) error {
	t.v = string(b)
	return nil
}

func TestImplements(t *testing.T) {
	assert.True(t, Implements[encoding.TextUnmarshaler](reflect.TypeOf(textValue{})), "pointer receiver counts")
	assert.True(t, Implements[encoding.TextUnmarshaler](reflect.TypeOf(&textValue{})))
	assert.True(t, Implements[encoding.TextUnmarshaler](reflect.TypeOf(time.Time{})))
	assert.False(t, Implements[encoding.TextUnmarshaler](reflect.TypeOf(CustomStruct{})))
	assert.False(t, Implements[fmt.Stringer](nil))
	assert.False(t, Implements[CustomStruct](reflect.TypeOf(CustomStruct{})), "non-interface I")
}

func TestIndirect(t *testing.T) {
	typ, ptr := Indirect(reflect.TypeOf(""))
	assert.Equal(t, reflect.TypeOf(""), typ)
	assert.False(t, ptr)

	s := ""
	ps := &s
	typ, ptr = Indirect(reflect.TypeOf(&ps))
	assert.Equal(t, reflect.TypeOf(""), typ)
	assert.True(t, ptr)
}
