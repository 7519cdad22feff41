package converters

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// NullStringConverter converts a string to a null.String. An empty string
// becomes the null value.
func NullStringConverter(src any) (any, error) {
	const op errors.Op = "converters.NullStringConverter"
	srcVal, ok := src.(string)
	if !ok {
		if b, isBytes := src.([]byte); isBytes {
			srcVal = string(b)
		} else {
			return nil, errors.New(op).Errorf("Given parameter not a string, got %T", src)
		}
	}
	if srcVal == "" {
		return null.String{}, nil
	}
	return null.StringFrom(srcVal), nil
}

// NullTimeConverter converts a time.Time or a date string (through
// DateConverter) to a null.Time. A zero time becomes the null value.
func NullTimeConverter(src any) (any, error) {
	const op errors.Op = "converters.NullTimeConverter"
	srcVal, ok := src.(time.Time)
	if !ok {
		converted, err := DateConverter(src)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		srcVal = converted.(time.Time)
	}
	if srcVal.IsZero() {
		return null.Time{}, nil
	}
	return null.TimeFrom(srcVal), nil
}
