package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/spf13/cast"
)

// Scalar converters built on spf13/cast: they accept any value cast knows
// how to coerce (numeric kinds, strings, []byte) and fail loudly otherwise.

// Int64Converter coerces the source value to an int64.
func Int64Converter(src any) (any, error) {
	const op errors.Op = "converters.Int64Converter"
	retVal, err := cast.ToInt64E(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return retVal, nil
}

// Float64Converter coerces the source value to a float64.
func Float64Converter(src any) (any, error) {
	const op errors.Op = "converters.Float64Converter"
	retVal, err := cast.ToFloat64E(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return retVal, nil
}

// BoolConverter coerces the source value to a bool.
func BoolConverter(src any) (any, error) {
	const op errors.Op = "converters.BoolConverter"
	retVal, err := cast.ToBoolE(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return retVal, nil
}

// StringConverter coerces the source value to a string.
func StringConverter(src any) (any, error) {
	const op errors.Op = "converters.StringConverter"
	retVal, err := cast.ToStringE(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return retVal, nil
}
