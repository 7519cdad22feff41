// Package converters provides the stock named converters for tuplemapper
// struct tags, plus the input guards they are built on.
package converters

import "github.com/Station-Manager/tuplemapper"

// Defaults returns the stock converter set keyed by the names used in
// `converter=` tag options. The map is freshly allocated on every call.
func Defaults() map[string]tuplemapper.ConverterFunc {
	return map[string]tuplemapper.ConverterFunc{
		"date":       DateConverter,
		"time":       TimeConverter,
		"datetime":   DateTimeConverter,
		"int64":      Int64Converter,
		"float64":    Float64Converter,
		"bool":       BoolConverter,
		"string":     StringConverter,
		"nullstring": NullStringConverter,
		"nulltime":   NullTimeConverter,
		"json":       JSONConverter,
		"nulljson":   NullJSONConverter,
	}
}

// Install registers the stock converter set on the given mapper. Call it
// before the first mapping of any type referencing a stock name.
func Install(m *tuplemapper.Mapper) {
	for name, fn := range Defaults() {
		m.RegisterNamedConverter(name, fn)
	}
}
