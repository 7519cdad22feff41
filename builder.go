package tuplemapper

import "reflect"

// Builder provides a fluent API to construct a Mapper with options,
// converters and validators pre-registered in a single registry swap.
type Builder struct {
	opts     []Option
	named    map[string]ConverterFunc
	convsG   map[string]ConverterFunc
	convsDst map[reflect.Type]map[string]ConverterFunc
	valsG    map[string]ValidatorFunc
	valsDst  map[reflect.Type]map[string]ValidatorFunc
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{
		named:    make(map[string]ConverterFunc),
		convsG:   make(map[string]ConverterFunc),
		convsDst: make(map[reflect.Type]map[string]ConverterFunc),
		valsG:    make(map[string]ValidatorFunc),
		valsDst:  make(map[reflect.Type]map[string]ValidatorFunc),
	}
}

// WithOptions appends mapper options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// AddNamedConverter registers a converter under a tag-referenced name.
func (b *Builder) AddNamedConverter(name string, fn ConverterFunc) *Builder {
	b.named[name] = fn
	return b
}

// AddConverter registers a global converter by field name.
func (b *Builder) AddConverter(field string, fn ConverterFunc) *Builder {
	b.convsG[field] = fn
	return b
}

// AddConverterFor registers a converter for a destination type and field name.
func (b *Builder) AddConverterFor(dst any, field string, fn ConverterFunc) *Builder {
	dt := indirectType(dst)
	m := b.convsDst[dt]
	if m == nil {
		m = make(map[string]ConverterFunc)
		b.convsDst[dt] = m
	}
	m[field] = fn
	return b
}

// AddValidator registers a global validator by field name.
func (b *Builder) AddValidator(field string, fn ValidatorFunc) *Builder {
	b.valsG[field] = fn
	return b
}

// AddValidatorFor registers a validator for a destination type and field name.
func (b *Builder) AddValidatorFor(dst any, field string, fn ValidatorFunc) *Builder {
	dt := indirectType(dst)
	m := b.valsDst[dt]
	if m == nil {
		m = make(map[string]ValidatorFunc)
		b.valsDst[dt] = m
	}
	m[field] = fn
	return b
}

// Build constructs the Mapper, seeding both registries in one shot.
func (b *Builder) Build() *Mapper {
	m := NewWithOptions(b.opts...)
	creg := newConverterRegistry()
	for k, v := range b.named {
		creg.named[k] = v
	}
	for k, v := range b.convsG {
		creg.global[k] = v
	}
	for t, sub := range b.convsDst {
		cp := make(map[string]ConverterFunc, len(sub))
		for k, v := range sub {
			cp[k] = v
		}
		creg.byDst[t] = cp
	}
	m.converters.Store(creg)
	vreg := newValidatorRegistry()
	for k, v := range b.valsG {
		vreg.global[k] = v
	}
	for t, sub := range b.valsDst {
		cp := make(map[string]ValidatorFunc, len(sub))
		for k, v := range sub {
			cp[k] = v
		}
		vreg.byDst[t] = cp
	}
	m.validators.Store(vreg)
	return m
}
