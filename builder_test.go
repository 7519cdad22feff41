package tuplemapper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type builderTarget struct {
	Model

	Name string `tuple:"name"`
	Code int    `tuple:"code"`
}

type builderTaggedTarget struct {
	Model

	Upper string `tuple:"upper,converter=upper"`
}

func TestBuilder_SeedsEverything(t *testing.T) {
	m := NewBuilder().
		WithOptions(WithCaseInsensitiveAliases(true)).
		AddNamedConverter("upper", MapString(strings.ToUpper)).
		AddConverter("Name", MapString(func(s string) string { return s + "-G" })).
		AddConverterFor(builderTarget{}, "Name", MapString(func(s string) string { return s + "-D" })).
		AddValidator("Code", func(v any) error {
			if v.(int) == 0 {
				return fmt.Errorf("code must be set")
			}
			return nil
		}).
		Build()

	// destination-scoped converter wins over global
	got, err := Map[builderTarget](m, NewRow(
		Element{Alias: "NAME", Value: "x"}, // case-insensitive option came through
		Element{Alias: "code", Value: 7},
	))
	require.NoError(t, err)
	assert.Equal(t, "x-D", got.Name)
	assert.Equal(t, 7, got.Code)

	// validator rejects zero code
	_, err = Map[builderTarget](m, NewRow(
		Element{Alias: "name", Value: "x"},
		Element{Alias: "code", Value: 0},
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code must be set")

	// named converter resolves from tags
	tagged, err := Map[builderTaggedTarget](m, NewRow(Element{Alias: "upper", Value: "abc"}))
	require.NoError(t, err)
	assert.Equal(t, "ABC", tagged.Upper)
}

func TestBuilder_ValidatorForScope(t *testing.T) {
	m := NewBuilder().
		AddValidatorFor(builderTarget{}, "Name", func(v any) error {
			if v.(string) == "bad" {
				return fmt.Errorf("rejected")
			}
			return nil
		}).
		Build()

	_, err := Map[builderTarget](m, NewRow(Element{Alias: "name", Value: "bad"}))
	require.Error(t, err)

	// other types are untouched by the scoped validator
	got, err := Map[directTarget](m, NewRow(Element{Alias: "name", Value: "bad"}))
	require.NoError(t, err)
	assert.Equal(t, "bad", got.Name)
}
