// Package tuplemapper maps generic tabular query results ("tuples") onto
// annotated Go structs.
//
// A Tuple is an ordered, read-only collection of named values, typically
// produced by a persistence query. The Mapper resolves per-type binding
// metadata once, caches it, and reuses it to populate struct instances.
//
// Basic Usage
//
//	type Person struct {
//		tuplemapper.Model
//
//		Name string `tuple:"name"`
//		Age  int    `tuple:"age"`
//	}
//
//	m := tuplemapper.New()
//	p, err := tuplemapper.Map[Person](m, tuple)
//
// # Target declaration
//
// A mapping target embeds the zero-size tuplemapper.Model marker; types
// without it are rejected as not annotated. Fields opt in with a `tuple`
// struct tag:
//
//	type Person struct {
//		tuplemapper.Model
//
//		Name  string    `tuple:"full_name"`           // explicit alias
//		Age   int       `tuple:""`                    // alias defaults to "Age"
//		Born  time.Time `tuple:"born,converter=date"` // named converter
//		Notes string    `tuple:"-"`                   // never mapped
//	}
//
// Untagged fields are never assigned, regardless of what the tuple contains.
// A tuple element whose alias matches no field is ignored (but see Extras
// below). A tagged field whose alias is absent from the tuple is left at its
// zero value; WithStrictAliases turns that into an error.
//
// # Converters
//
// A ConverterFunc transforms the raw tuple value before assignment. The
// absence of a converter means the raw value is assigned directly; there is
// no pass-through placeholder to call. Converters referenced by name from a
// tag must be registered on the Mapper before the target type is first
// mapped (RegisterNamedConverter, or converters.Install for the stock set).
// Converters can also be attached programmatically to a field name, globally
// or scoped to a destination type; a tag-declared converter takes precedence.
//
// # Extras
//
// At most one field of type null.JSON or sqlboiler types.JSON may be tagged
// `tuple:",extras"`. After mapping, every tuple element that bound to no
// field is marshaled into it as a JSON object.
//
// # Metadata caching
//
// Binding metadata (an instantiation handle plus the ordered field mappings)
// is resolved once per target type and cached for the life of the process in
// a concurrency-safe map; concurrent first requests publish exactly one
// metadata instance. WithMetadataCache(false) selects the simpler variant
// that re-resolves on every call.
//
// # Thread Safety
//
// The Mapper is safe for concurrent use. Registration uses copy-on-write
// registries; mapping calls share immutable metadata. User converters are
// assumed stateless; the Mapper does not enforce this.
package tuplemapper
