package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// DateConverter converts a date value to a time.Time. The source is expected
// to be a string in YYYY-MM-DD or YYYYMMDD format; a time.Time passes
// through unchanged.
func DateConverter(src any) (any, error) {
	const op errors.Op = "converters.DateConverter"
	if t, ok := src.(time.Time); ok {
		return t, nil
	}
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	var retVal time.Time
	switch len(srcVal) {
	case 8:
		retVal, err = time.Parse("20060102", srcVal)
	case 10:
		if srcVal[4] == '-' && srcVal[7] == '-' {
			retVal, err = time.Parse("2006-01-02", srcVal)
		} else {
			return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
		}
	default:
		return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}

	return retVal, nil
}

// TimeConverter converts a time-of-day value to a time.Time. The source is
// expected to be a string in HH:MM or HHMM format.
func TimeConverter(src any) (any, error) {
	const op errors.Op = "converters.TimeConverter"
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	var retVal time.Time
	if len(srcVal) == 5 && srcVal[2] == ':' {
		retVal, err = time.Parse("15:04", srcVal)
	} else if len(srcVal) == 4 {
		retVal, err = time.Parse("1504", srcVal)
	} else {
		return nil, errors.New(op).Msg(ErrMsgBadTimeFormat)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}

	return retVal, nil
}

// DateTimeConverter converts a timestamp value to a time.Time. The source is
// expected to be a string in RFC 3339 or YYYY-MM-DD HH:MM:SS format; a
// time.Time passes through unchanged.
func DateTimeConverter(src any) (any, error) {
	const op errors.Op = "converters.DateTimeConverter"
	if t, ok := src.(time.Time); ok {
		return t, nil
	}
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	retVal, err := time.Parse(time.RFC3339, srcVal)
	if err != nil {
		retVal, err = time.Parse("2006-01-02 15:04:05", srcVal)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateTimeFormat)
	}

	return retVal, nil
}
