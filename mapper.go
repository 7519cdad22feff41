package tuplemapper

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
)

// Options controls mapping behavior. The zero value is the default.
type Options struct {
	CaseInsensitiveAliases bool // when true, alias lookup falls back to a case-insensitive scan
	StrictAliases          bool // when true, a tagged field whose alias is absent from the tuple is an error
	DisableMetadataCache   bool // when true, metadata is re-resolved on every call instead of cached
}

type Option func(*Options)

func WithCaseInsensitiveAliases(v bool) Option {
	return func(o *Options) { o.CaseInsensitiveAliases = v }
}
func WithStrictAliases(v bool) Option { return func(o *Options) { o.StrictAliases = v } }
func WithMetadataCache(v bool) Option { return func(o *Options) { o.DisableMetadataCache = !v } }

// Mapper maps tuples onto annotated structs. It caches per-type binding
// metadata and holds the converter and validator registries.
type Mapper struct {
	converters    atomic.Value // holds *converterRegistry
	validators    atomic.Value // holds *validatorRegistry
	metadataCache sync.Map     // map[reflect.Type]*typeMetadata
	registerMu    sync.Mutex   // serializes registry swaps
	options       Options
}

// New creates a Mapper with default options.
func New() *Mapper { return NewWithOptions() }

// NewWithOptions creates a Mapper with the provided options.
func NewWithOptions(opts ...Option) *Mapper {
	m := &Mapper{}
	var o Options
	for _, f := range opts {
		f(&o)
	}
	m.options = o
	m.converters.Store(newConverterRegistry())
	m.validators.Store(newValidatorRegistry())
	return m
}

var (
	defaultMapper *Mapper
	defaultOnce   sync.Once
)

// Default returns the lazily-initialized package-level Mapper.
func Default() *Mapper {
	defaultOnce.Do(func() { defaultMapper = New() })
	return defaultMapper
}

// RegisterNamedConverter registers a converter under the name used by
// `converter=` tag options. Register before the first mapping of any type
// referencing the name: metadata binds converters at resolution time, and
// cached metadata is not rebuilt.
func (m *Mapper) RegisterNamedConverter(name string, fn ConverterFunc) {
	m.registerMu.Lock()
	defer m.registerMu.Unlock()
	reg := m.converters.Load().(*converterRegistry).clone()
	reg.named[name] = fn
	m.converters.Store(reg)
}

// RegisterConverter attaches a converter to a field name on any target type.
// A tag-declared converter on the same field takes precedence.
func (m *Mapper) RegisterConverter(fieldName string, fn ConverterFunc) {
	m.registerMu.Lock()
	defer m.registerMu.Unlock()
	reg := m.converters.Load().(*converterRegistry).clone()
	reg.global[fieldName] = fn
	m.converters.Store(reg)
}

// RegisterConverterFor attaches a converter to a field name, scoped to one
// destination type. Takes precedence over RegisterConverter.
func (m *Mapper) RegisterConverterFor(dstType any, fieldName string, fn ConverterFunc) {
	m.registerMu.Lock()
	defer m.registerMu.Unlock()
	reg := m.converters.Load().(*converterRegistry).clone()
	dt := indirectType(dstType)
	sub := reg.byDst[dt]
	if sub == nil {
		sub = make(map[string]ConverterFunc)
		reg.byDst[dt] = sub
	}
	sub[fieldName] = fn
	m.converters.Store(reg)
}

// RegisterValidator adds a global validator for a field name, run after the
// field is assigned.
func (m *Mapper) RegisterValidator(fieldName string, fn ValidatorFunc) {
	m.registerMu.Lock()
	defer m.registerMu.Unlock()
	reg := m.validators.Load().(*validatorRegistry).clone()
	reg.global[fieldName] = fn
	m.validators.Store(reg)
}

// RegisterValidatorFor adds a validator scoped to a destination type.
func (m *Mapper) RegisterValidatorFor(dstType any, fieldName string, fn ValidatorFunc) {
	m.registerMu.Lock()
	defer m.registerMu.Unlock()
	reg := m.validators.Load().(*validatorRegistry).clone()
	dt := indirectType(dstType)
	sub := reg.byDst[dt]
	if sub == nil {
		sub = make(map[string]ValidatorFunc)
		reg.byDst[dt] = sub
	}
	sub[fieldName] = fn
	m.validators.Store(reg)
}

// WarmMetadata pre-resolves and caches metadata for the given example values
// or pointers. Returns the first resolution failure, if any.
func (m *Mapper) WarmMetadata(examples ...any) error {
	reg := m.converters.Load().(*converterRegistry)
	for _, e := range examples {
		if e == nil {
			continue
		}
		t := indirectType(e)
		if t.Kind() != reflect.Struct {
			continue
		}
		if _, err := m.metadataFor(t, reg); err != nil {
			return err
		}
	}
	return nil
}

// Into maps a tuple onto *dst. dst must be a non-nil pointer to a struct
// embedding Model. Tagged fields whose alias is absent from the tuple keep
// their current value.
func (m *Mapper) Into(dst any, tuple Tuple) error {
	if tuple == nil {
		return fmt.Errorf("tuplemapper: tuple must not be nil")
	}
	if dst == nil {
		return fmt.Errorf("tuplemapper: dst must not be nil")
	}
	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Ptr || dstVal.IsNil() {
		return fmt.Errorf("tuplemapper: dst must be a non-nil pointer, got %T", dst)
	}
	dstVal = dstVal.Elem()
	if dstVal.Kind() != reflect.Struct {
		return fmt.Errorf("tuplemapper: dst must point to a struct, got %T", dst)
	}

	reg := m.converters.Load().(*converterRegistry)
	meta, err := m.metadataFor(dstVal.Type(), reg)
	if err != nil {
		return err
	}
	vreg := m.validators.Load().(*validatorRegistry)

	var consumed map[string]bool
	if meta.extras != nil {
		consumed = make(map[string]bool, len(meta.fields))
	}
	for i := range meta.fields {
		fm := &meta.fields[i]
		alias, err := m.applyField(dstVal, meta, fm, tuple, reg, vreg)
		if err != nil {
			return err
		}
		if consumed != nil && alias != "" {
			consumed[alias] = true
		}
	}
	if meta.extras != nil {
		if err := m.applyExtras(dstVal, meta, tuple, consumed); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mapper) metadataFor(typ reflect.Type, reg *converterRegistry) (*typeMetadata, error) {
	if m.options.DisableMetadataCache {
		return m.buildMetadata(typ, reg)
	}
	if cached, ok := m.metadataCache.Load(typ); ok {
		return cached.(*typeMetadata), nil
	}
	meta, err := m.buildMetadata(typ, reg)
	if err != nil {
		return nil, err
	}
	actual, _ := m.metadataCache.LoadOrStore(typ, meta)
	return actual.(*typeMetadata), nil
}

// lookupValue resolves a tuple value for an alias, honoring the
// case-insensitive option. Returns the element alias actually matched.
func (m *Mapper) lookupValue(tuple Tuple, alias string) (any, string, bool) {
	if v, ok := tuple.Get(alias); ok {
		return v, alias, true
	}
	if m.options.CaseInsensitiveAliases {
		for _, e := range tuple.Elements() {
			if strings.EqualFold(e.Alias, alias) {
				return e.Value, e.Alias, true
			}
		}
	}
	return nil, "", false
}

// applyField applies one field mapping. It returns the tuple alias the field
// consumed, or "" when no element matched.
func (m *Mapper) applyField(dstVal reflect.Value, meta *typeMetadata, fm *fieldMapping, tuple Tuple, reg *converterRegistry, vreg *validatorRegistry) (string, error) {
	value, alias, ok := m.lookupValue(tuple, fm.alias)
	if !ok {
		if m.options.StrictAliases {
			return "", fmt.Errorf("tuplemapper: mapping field %s of %s: no tuple element for alias %q", fm.name, meta.typ, fm.alias)
		}
		return "", nil
	}
	if value == nil {
		return alias, nil
	}

	conv := fm.converter
	if conv == nil {
		conv = reg.lookup(meta.typ, fm.name)
	}
	if conv != nil {
		converted, err := conv(value)
		if err != nil {
			return "", fmt.Errorf("tuplemapper: mapping field %s of %s: %w", fm.name, meta.typ, err)
		}
		value = converted
	}

	field := fieldByIndexAlloc(dstVal, fm.index)
	if err := assignValue(field, value); err != nil {
		return "", fmt.Errorf("tuplemapper: mapping field %s of %s: %w", fm.name, meta.typ, err)
	}
	if fn := vreg.lookup(meta.typ, fm.name); fn != nil {
		if err := fn(field.Interface()); err != nil {
			return "", fmt.Errorf("tuplemapper: validating field %s of %s: %w", fm.name, meta.typ, err)
		}
	}
	return alias, nil
}

func assignValue(field reflect.Value, value any) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	cv := reflect.ValueOf(value)
	switch {
	case cv.Type().AssignableTo(field.Type()):
		field.Set(cv)
	case convertibleValue(cv.Type(), field.Type()):
		field.Set(cv.Convert(field.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", cv.Type(), field.Type())
	}
	return nil
}

// convertibleValue rejects the numeric-to-string conversions reflect allows
// (they produce a one-rune string, never what a row mapping wants).
func convertibleValue(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}
	if dst.Kind() == reflect.String {
		switch src.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return false
		}
	}
	return true
}

// applyExtras marshals every unconsumed tuple element into the extras field
// as a JSON object.
func (m *Mapper) applyExtras(dstVal reflect.Value, meta *typeMetadata, tuple Tuple, consumed map[string]bool) error {
	remaining := make(map[string]any)
	for _, e := range tuple.Elements() {
		if consumed[e.Alias] {
			continue
		}
		remaining[e.Alias] = e.Value
	}
	field := fieldByIndexAlloc(dstVal, meta.extras.index)
	if len(remaining) == 0 {
		if field.Type() == nullJSONType {
			field.Set(reflect.ValueOf(null.JSON{}))
		} else {
			field.Set(reflect.ValueOf(boilertypes.JSON(nil)))
		}
		return nil
	}
	data, err := json.Marshal(remaining)
	if err != nil {
		return fmt.Errorf("tuplemapper: marshaling extras for %s: %w", meta.typ, err)
	}
	if field.Type() == nullJSONType {
		field.Set(reflect.ValueOf(null.JSONFrom(data)))
	} else {
		field.Set(reflect.ValueOf(boilertypes.JSON(data)))
	}
	return nil
}
