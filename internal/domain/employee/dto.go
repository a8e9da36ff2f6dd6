package employee

import "github.com/tokosakti/backoffice-go/internal/pkg/validator"

var roles = []string{
	string(RoleCashier),
	string(RoleSales),
	string(RoleWarehouse),
	string(RoleManager),
}

type CreateEmployeeRequest struct {
	Code     string `json:"code"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Role, roles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of cashier, sales, warehouse, manager"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
