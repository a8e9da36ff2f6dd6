package kpi

import "errors"

var (
	ErrDefinitionNotFound   = errors.New("kpi definition not found")
	ErrDefinitionCodeExists = errors.New("kpi definition code already exists")
	ErrDefinitionInactive   = errors.New("kpi definition is inactive")
	ErrRoleNotApplicable    = errors.New("kpi definition does not apply to the employee's role")
	ErrAssignmentNotFound   = errors.New("kpi assignment not found")
	ErrAssignmentExists     = errors.New("an active assignment already exists for this employee and definition")
	ErrResultNotFound       = errors.New("kpi result not found")
)
