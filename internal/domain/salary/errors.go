package salary

import "errors"

var (
	ErrConfigurationNotFound    = errors.New("salary configuration not found")
	ErrNoCurrentConfiguration   = errors.New("employee has no active salary configuration")
	ErrOverlappingConfiguration = errors.New("salary configuration window overlaps an existing one")
)
