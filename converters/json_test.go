package converters

import (
	"testing"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONConverter(t *testing.T) {
	got, err := JSONConverter([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, boilertypes.JSON(`{"a":1}`), got)

	got, err = JSONConverter(`{"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, boilertypes.JSON(`{"b":2}`), got)

	got, err = JSONConverter(map[string]any{"c": 3})
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got.(boilertypes.JSON), &decoded))
	assert.Equal(t, float64(3), decoded["c"])
}

func TestNullJSONConverter(t *testing.T) {
	got, err := NullJSONConverter([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, null.JSONFrom([]byte(`{"a":1}`)), got)

	got, err = NullJSONConverter([]byte{})
	require.NoError(t, err)
	assert.Equal(t, null.JSON{}, got)
}
