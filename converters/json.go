package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// jsonBytes returns src as raw JSON when it already is ([]byte or string),
// otherwise marshals it.
func jsonBytes(op errors.Op, src any) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	data, err := json.Marshal(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return data, nil
}

// JSONConverter converts the source value to a sqlboiler types.JSON. []byte
// and string sources are taken as raw JSON; anything else is marshaled.
func JSONConverter(src any) (any, error) {
	const op errors.Op = "converters.JSONConverter"
	data, err := jsonBytes(op, src)
	if err != nil {
		return nil, err
	}
	return boilertypes.JSON(data), nil
}

// NullJSONConverter converts the source value to a null.JSON. []byte and
// string sources are taken as raw JSON; anything else is marshaled.
func NullJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.NullJSONConverter"
	data, err := jsonBytes(op, src)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return null.JSON{}, nil
	}
	return null.JSONFrom(data), nil
}
