package tuplemapper

import "reflect"

// ConverterFunc transforms a raw tuple value into the value assigned to the
// target field. Converters must be stateless or internally synchronized;
// they are shared across concurrent mapping calls.
type ConverterFunc func(src any) (any, error)

// ValidatorFunc validates a field value after conversion and assignment.
type ValidatorFunc func(value any) error

// ComposeConverters chains multiple ConverterFunc instances left-to-right.
// If any converter returns an error it aborts. Nil output propagates
// immediately.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString returns a ConverterFunc applying f when src is a string;
// otherwise returns src unchanged.
func MapString(f func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}

// converterRegistry holds converters at all scopes and is swapped atomically
// (copy-on-write). named holds tag-referenced converters; global and byDst
// attach to field names programmatically.
type converterRegistry struct {
	named  map[string]ConverterFunc
	global map[string]ConverterFunc
	byDst  map[reflect.Type]map[string]ConverterFunc
}

func newConverterRegistry() *converterRegistry {
	return &converterRegistry{
		named:  make(map[string]ConverterFunc),
		global: make(map[string]ConverterFunc),
		byDst:  make(map[reflect.Type]map[string]ConverterFunc),
	}
}

func (r *converterRegistry) clone() *converterRegistry {
	out := &converterRegistry{
		named:  make(map[string]ConverterFunc, len(r.named)+1),
		global: make(map[string]ConverterFunc, len(r.global)+1),
		byDst:  make(map[reflect.Type]map[string]ConverterFunc, len(r.byDst)+1),
	}
	for k, v := range r.named {
		out.named[k] = v
	}
	for k, v := range r.global {
		out.global[k] = v
	}
	for t, m := range r.byDst {
		sub := make(map[string]ConverterFunc, len(m)+1)
		for k, v := range m {
			sub[k] = v
		}
		out.byDst[t] = sub
	}
	return out
}

// lookup resolves the field-scoped converter for a destination type and
// field name. Scope precedence: byDst over global.
func (r *converterRegistry) lookup(dst reflect.Type, fieldName string) ConverterFunc {
	if fn := r.byDst[dst][fieldName]; fn != nil {
		return fn
	}
	return r.global[fieldName]
}

type validatorRegistry struct {
	global map[string]ValidatorFunc
	byDst  map[reflect.Type]map[string]ValidatorFunc
}

func newValidatorRegistry() *validatorRegistry {
	return &validatorRegistry{
		global: make(map[string]ValidatorFunc),
		byDst:  make(map[reflect.Type]map[string]ValidatorFunc),
	}
}

func (r *validatorRegistry) clone() *validatorRegistry {
	out := &validatorRegistry{
		global: make(map[string]ValidatorFunc, len(r.global)+1),
		byDst:  make(map[reflect.Type]map[string]ValidatorFunc, len(r.byDst)+1),
	}
	for k, v := range r.global {
		out.global[k] = v
	}
	for t, m := range r.byDst {
		sub := make(map[string]ValidatorFunc, len(m)+1)
		for k, v := range m {
			sub[k] = v
		}
		out.byDst[t] = sub
	}
	return out
}

func (r *validatorRegistry) lookup(dst reflect.Type, fieldName string) ValidatorFunc {
	if fn := r.byDst[dst][fieldName]; fn != nil {
		return fn
	}
	return r.global[fieldName]
}

func indirectType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
