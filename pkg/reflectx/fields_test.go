package reflectx

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Base struct {
	ID   string `json:"id"`
	Note string `json:"note,omitempty"`
}

type Paging struct {
	Page int `json:"page,omitzero"`
}

type request struct {
	Base
	*Paging
	Symbol   string `json:"symbol"`
	Note     string `json:"note"`
	Untagged int
	Skipped  string `json:"-"`
	hidden   string
	Named    Base `json:"named"`
}

func TestJSONFields(t *testing.T) {
	fields := JSONFields(reflect.TypeOf(request{}))

	var names []string
	for _, f := range fields {
		names = append(names, f.JSONName)
	}
	assert.Equal(t, []string{"id", "page", "symbol", "note", "Untagged", "named"}, names)

	byName := map[string]Field{}
	for _, f := range fields {
		byName[f.JSONName] = f
	}
	assert.True(t, byName["page"].OmitEmpty)
	assert.False(t, byName["note"].OmitEmpty, "outer note hides the embedded one")
	assert.Equal(t, "Note", byName["note"].Name)
	assert.Equal(t, reflect.TypeOf(Base{}), byName["named"].Type)
}

type quoteA struct {
	Price string `json:"price"`
	Bid   string `json:"bid"`
}

type quoteB struct {
	Price string `json:"price"`
	Ask   string
}

type quoteC struct {
	Ask string `json:"Ask"`
}

func TestJSONFields_Conflicts(t *testing.T) {
	names := func(v any) []string {
		var out []string
		for _, f := range JSONFields(reflect.TypeOf(v)) {
			out = append(out, f.JSONName)
		}
		return out
	}

	t.Run("same depth, both tagged", func(t *testing.T) {
		type both struct {
			quoteA
			quoteB
		}
		assert.Equal(t, []string{"bid", "Ask"}, names(both{}), "price is ambiguous and dropped")
	})

	t.Run("same depth, one tagged", func(t *testing.T) {
		type mixed struct {
			quoteB
			quoteC
		}
		fields := JSONFields(reflect.TypeOf(mixed{}))
		assert.Equal(t, []string{"price", "Ask"}, names(mixed{}))
		assert.Equal(t, "Ask", fields[1].Name)
		assert.Equal(t, `json:"Ask"`, string(fields[1].Tag))
	})

	t.Run("shallower wins over ambiguity below", func(t *testing.T) {
		type outer struct {
			quoteA
			quoteB
			Price float64 `json:"price"`
		}
		fields := JSONFields(reflect.TypeOf(outer{}))
		assert.Equal(t, []string{"bid", "Ask", "price"}, names(outer{}))
		assert.Equal(t, reflect.TypeOf(float64(0)), fields[2].Type)
	})

	t.Run("matches encoding/json decoding", func(t *testing.T) {
		type both struct {
			quoteA
			quoteB
		}
		var v both
		require.NoError(t, json.Unmarshal([]byte(`{"price":"1.5","bid":"1.4"}`), &v))
		assert.Empty(t, v.quoteA.Price)
		assert.Empty(t, v.quoteB.Price)
		assert.Equal(t, "1.4", v.Bid)
	})
}

func TestJSONFields_NotStruct(t *testing.T) {
	assert.Nil(t, JSONFields(reflect.TypeOf(42)))
	assert.Nil(t, JSONFields(nil))
	assert.NotNil(t, JSONFields(reflect.TypeOf(&request{})))
}
