package converters

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullStringConverter(t *testing.T) {
	got, err := NullStringConverter("hello")
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("hello"), got)

	got, err = NullStringConverter("")
	require.NoError(t, err)
	assert.Equal(t, null.String{}, got)

	got, err = NullStringConverter([]byte("bytes"))
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("bytes"), got)

	_, err = NullStringConverter(5)
	assert.Error(t, err)
}

func TestNullTimeConverter(t *testing.T) {
	when := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	got, err := NullTimeConverter(when)
	require.NoError(t, err)
	assert.Equal(t, null.TimeFrom(when), got)

	got, err = NullTimeConverter(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, null.Time{}, got)

	got, err = NullTimeConverter("2024-03-01")
	require.NoError(t, err)
	require.IsType(t, null.Time{}, got)
	assert.True(t, got.(null.Time).Valid)
	assert.True(t, got.(null.Time).Time.Equal(when))

	_, err = NullTimeConverter("not a date")
	assert.Error(t, err)
}
