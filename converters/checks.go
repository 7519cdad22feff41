package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// CheckString asserts that src is a string (or []byte) and not empty.
func CheckString(op errors.Op, src any) (string, error) {
	var srcVal string
	switch v := src.(type) {
	case string:
		srcVal = v
	case []byte:
		srcVal = string(v)
	default:
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgParamEmpty)
	}
	return srcVal, nil
}

// CheckTime asserts that src is a time.Time.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	srcVal, ok := src.(time.Time)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	return srcVal, nil
}

// CheckFloat64 asserts that src is a float64.
func CheckFloat64(op errors.Op, src any) (float64, error) {
	srcVal, ok := src.(float64)
	if !ok {
		return 0, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
	}
	return srcVal, nil
}

// CheckInt64 asserts that src is an int64.
func CheckInt64(op errors.Op, src any) (int64, error) {
	srcVal, ok := src.(int64)
	if !ok {
		return 0, errors.New(op).Errorf("Given parameter not a int64, got %T", src)
	}
	return srcVal, nil
}
