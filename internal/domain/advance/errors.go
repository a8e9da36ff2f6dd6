package advance

import "errors"

var (
	ErrAdvanceNotFound         = errors.New("advance payment not found")
	ErrInvalidStatusTransition = errors.New("invalid advance payment status transition")
)
