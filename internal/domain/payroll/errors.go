package payroll

import "errors"

var (
	ErrRecordNotFound          = errors.New("payroll record not found")
	ErrRecordAlreadyExists     = errors.New("payroll record already exists for this period")
	ErrInvalidStatusTransition = errors.New("invalid payroll record status transition")
	ErrNoSalaryConfiguration   = errors.New("employee has no salary configuration for this period")
)
