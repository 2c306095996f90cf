package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawParams(t *testing.T) {
	r := RawParams{
		"int64":        1,
		"str-int":      "1",
		"float64":      2.5,
		"string":       "string",
		"string-slice": []string{"a", "b"},
		"any-slice":    []interface{}{"a", "b"},
		"bool":         nil,
		"raw-params": map[string]interface{}{
			"amount": 2,
		},
	}

	assert.Equal(t, r.Int64("int64"), int64(1))
	assert.Equal(t, r.Int64("str-int"), int64(1))
	assert.Equal(t, r.Float64("float64"), 2.5)
	assert.Equal(t, r.String("string"), "string")
	assert.Equal(t, r.StringSlice("string-slice"), []string{"a", "b"})
	assert.Equal(t, r.StringSlice("any-slice"), []string{"a", "b"})
	assert.True(t, r.Bool("bool"))
	assert.Equal(t, r.RawParams("raw-params").Int64("amount"), int64(2))
	assert.False(t, r.IsSet("?"))
	assert.Equal(t, r.Float64("?"), float64(0))
	assert.Equal(t, r.String("?"), "")
	assert.Nil(t, r.RawParams("?"))
}
