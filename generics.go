package tuplemapper

import "fmt"

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// Map maps a single tuple into a freshly allocated *T.
func Map[T any](m *Mapper, tuple Tuple) (*T, error) {
	var d T
	if err := m.Into(&d, tuple); err != nil {
		return nil, err
	}
	return &d, nil
}

// Make is like Map but returns T by value.
func Make[T any](m *Mapper, tuple Tuple) (T, error) {
	var d T
	err := m.Into(&d, tuple)
	return d, err
}

// MapList maps tuples in order, one *T per tuple. A nil list is an error; an
// empty list yields an empty slice. The first failure aborts the batch with
// the tuple index in the error.
func MapList[T any](m *Mapper, tuples []Tuple) ([]*T, error) {
	if tuples == nil {
		return nil, fmt.Errorf("tuplemapper: tuples list must not be nil")
	}
	out := make([]*T, 0, len(tuples))
	for i, tuple := range tuples {
		d, err := Map[T](m, tuple)
		if err != nil {
			return nil, fmt.Errorf("tuplemapper: mapping tuple %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}
