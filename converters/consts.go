package converters

const (
	ErrMsgParamEmpty        = "Parameter cannot be empty."
	ErrMsgBadDateFormat     = "Bad date format, expected YYYY-MM-DD or YYYYMMDD"
	ErrMsgBadTimeFormat     = "Bad time format, expected HH:MM or HHMM"
	ErrMsgBadDateTimeFormat = "Bad datetime format, expected RFC 3339 or YYYY-MM-DD HH:MM:SS"
)
