package employee

import "time"

// Role determines which KPI definitions apply to an employee.
type Role string

const (
	RoleCashier   Role = "cashier"
	RoleSales     Role = "sales"
	RoleWarehouse Role = "warehouse"
	RoleManager   Role = "manager"
)

type Employee struct {
	ID        string
	Code      string
	FullName  string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
