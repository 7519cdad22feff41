package tuplemapper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
)

// Model is the zero-size marker a mapping target embeds to declare itself
// mappable. Types without the embedded marker are rejected before any
// metadata resolution.
type Model struct{}

var (
	modelType     = reflect.TypeOf(Model{})
	nullJSONType  = reflect.TypeOf(null.JSON{})
	typesJSONType = reflect.TypeOf(boilertypes.JSON{})
)

const tagName = "tuple"

// fieldMapping binds one tagged field to its tuple alias and optional
// converter. Immutable once resolved.
type fieldMapping struct {
	index     []int
	name      string
	alias     string
	converter ConverterFunc // nil means assign the raw value
	convName  string
}

// typeMetadata holds the resolved bindings for one target type. Immutable
// once resolved; shared across all mapping calls for that type.
type typeMetadata struct {
	typ    reflect.Type
	fields []fieldMapping
	extras *fieldMapping
}

type tagOptions struct {
	alias    string
	convName string
	extras   bool
	skip     bool
}

func parseTag(tag string) tagOptions {
	if tag == "-" {
		return tagOptions{skip: true}
	}
	parts := strings.Split(tag, ",")
	opts := tagOptions{alias: parts[0]}
	for _, opt := range parts[1:] {
		switch {
		case opt == "extras":
			opts.extras = true
		case strings.HasPrefix(opt, "converter="):
			opts.convName = strings.TrimPrefix(opt, "converter=")
		}
	}
	return opts
}

// buildMetadata resolves the bindings for a target type. The named
// converters visible in reg are bound into the field mappings; failures here
// are fatal resolution errors naming the offending field and type.
func (m *Mapper) buildMetadata(typ reflect.Type, reg *converterRegistry) (*typeMetadata, error) {
	if !hasModelMarker(typ) {
		return nil, fmt.Errorf("tuplemapper: type %s is not annotated for tuple mapping (missing embedded tuplemapper.Model)", typ)
	}
	meta := &typeMetadata{typ: typ}
	if err := m.collectFields(typ, meta, reg, nil); err != nil {
		return nil, err
	}
	return meta, nil
}

func hasModelMarker(typ reflect.Type) bool {
	if typ.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous && f.Type == modelType {
			return true
		}
	}
	return false
}

// collectFields walks the struct in declaration order, flattening embedded
// structs the same way field promotion does. Order is deterministic for a
// given type.
func (m *Mapper) collectFields(typ reflect.Type, meta *typeMetadata, reg *converterRegistry, prefix []int) error {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft == modelType {
				continue
			}
			if ft.Kind() == reflect.Struct {
				if err := m.collectFields(ft, meta, reg, idx); err != nil {
					return err
				}
				continue
			}
		}
		tag, ok := f.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		opts := parseTag(tag)
		if opts.skip {
			continue
		}
		if f.PkgPath != "" {
			return fmt.Errorf("tuplemapper: resolving field mapping for %s.%s: field is unexported", meta.typ, f.Name)
		}
		if opts.extras {
			if f.Type != nullJSONType && f.Type != typesJSONType {
				return fmt.Errorf("tuplemapper: resolving field mapping for %s.%s: extras field must be null.JSON or types.JSON, got %s", meta.typ, f.Name, f.Type)
			}
			if meta.extras != nil {
				return fmt.Errorf("tuplemapper: resolving field mapping for %s.%s: extras already declared on field %s", meta.typ, f.Name, meta.extras.name)
			}
			meta.extras = &fieldMapping{index: idx, name: f.Name}
			continue
		}
		fm := fieldMapping{index: idx, name: f.Name, alias: opts.alias, convName: opts.convName}
		if fm.alias == "" {
			fm.alias = f.Name
		}
		if opts.convName != "" {
			fn := reg.named[opts.convName]
			if fn == nil {
				return fmt.Errorf("tuplemapper: resolving field mapping for %s.%s: converter %q is not registered", meta.typ, f.Name, opts.convName)
			}
			fm.converter = fn
		}
		meta.fields = append(meta.fields, fm)
	}
	return nil
}

// fieldByIndexAlloc walks an index path on a settable struct value,
// allocating nil embedded pointers along the way.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 {
			if v.Kind() == reflect.Ptr {
				if v.IsNil() {
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(x)
	}
	return v
}
