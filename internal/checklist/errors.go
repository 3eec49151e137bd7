package checklist

import "errors"

var (
	ErrStepOutOfRange = errors.New("checklist step out of range")
	ErrItemOutOfRange = errors.New("checklist item out of range")
)
