package tuplemapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unexportedTagTarget struct {
	Model

	name string `tuple:"name"`
}

func TestMetadata_UnexportedTaggedField(t *testing.T) {
	m := New()

	_, err := Map[unexportedTagTarget](m, NewRow())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "unexported")
}

type unknownConverterTarget struct {
	Model

	Value string `tuple:"value,converter=nope"`
}

func TestMetadata_UnknownConverterName(t *testing.T) {
	m := New()

	_, err := Map[unknownConverterTarget](m, NewRow())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Value")
	assert.Contains(t, err.Error(), `"nope"`)
}

type embeddedBase struct {
	Created string `tuple:"created"`
}

type embeddedTarget struct {
	Model
	embeddedBase

	Name string `tuple:"name"`
}

func TestMetadata_EmbeddedStructFlattened(t *testing.T) {
	m := New()

	got, err := Map[embeddedTarget](m, NewRow(
		Element{Alias: "created", Value: "2024-01-01"},
		Element{Alias: "name", Value: "x"},
	))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.Created)
	assert.Equal(t, "x", got.Name)
}

type ptrEmbeddedTarget struct {
	Model
	*embeddedBase

	Name string `tuple:"name"`
}

func TestMetadata_PointerEmbeddedAllocated(t *testing.T) {
	m := New()

	got, err := Map[ptrEmbeddedTarget](m, NewRow(Element{Alias: "created", Value: "2024-01-01"}))
	require.NoError(t, err)
	require.NotNil(t, got.embeddedBase)
	assert.Equal(t, "2024-01-01", got.Created)
}

func TestMetadata_DeclarationOrderPreserved(t *testing.T) {
	m := New()
	reg := m.converters.Load().(*converterRegistry)

	meta, err := m.buildMetadata(indirectType(numericTarget{}), reg)
	require.NoError(t, err)
	require.Len(t, meta.fields, 3)
	assert.Equal(t, "Count", meta.fields[0].name)
	assert.Equal(t, "Ratio", meta.fields[1].name)
	assert.Equal(t, "Raw", meta.fields[2].name)
}

func TestWarmMetadata(t *testing.T) {
	m := New()

	require.NoError(t, m.WarmMetadata(partialTarget{}, &directTarget{}, nil, 42))

	_, ok := m.metadataCache.Load(indirectType(partialTarget{}))
	assert.True(t, ok)
	_, ok = m.metadataCache.Load(indirectType(directTarget{}))
	assert.True(t, ok)

	err := m.WarmMetadata(notAnnotated{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not annotated")
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want tagOptions
	}{
		{name: "skip", tag: "-", want: tagOptions{skip: true}},
		{name: "alias only", tag: "col", want: tagOptions{alias: "col"}},
		{name: "empty alias", tag: "", want: tagOptions{}},
		{name: "converter", tag: "col,converter=date", want: tagOptions{alias: "col", convName: "date"}},
		{name: "extras", tag: ",extras", want: tagOptions{extras: true}},
		{name: "unknown option ignored", tag: "col,whatever", want: tagOptions{alias: "col"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTag(tt.tag))
		})
	}
}
