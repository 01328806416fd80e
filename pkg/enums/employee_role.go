package enums

import "fmt"

// EmployeeRole is the job title of a service-center employee.
type EmployeeRole string

const (
	EmployeeRoleOperationalManager EmployeeRole = "Operational Manager"
	EmployeeRoleSupervisor         EmployeeRole = "Supervisor"
	EmployeeRoleMechanic           EmployeeRole = "Mechanic"
	EmployeeRoleStoreKeeper        EmployeeRole = "Store Keeper"
	EmployeeRoleCashier            EmployeeRole = "Cashier"
	EmployeeRoleHR                 EmployeeRole = "HR"
)

var validEmployeeRoles = []EmployeeRole{
	EmployeeRoleOperationalManager,
	EmployeeRoleSupervisor,
	EmployeeRoleMechanic,
	EmployeeRoleStoreKeeper,
	EmployeeRoleCashier,
	EmployeeRoleHR,
}

// String returns the literal string for the role.
func (e EmployeeRole) String() string {
	return string(e)
}

// IsValid reports whether the role is known.
func (e EmployeeRole) IsValid() bool {
	for _, candidate := range validEmployeeRoles {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEmployeeRole converts raw input into an EmployeeRole.
func ParseEmployeeRole(value string) (EmployeeRole, error) {
	for _, candidate := range validEmployeeRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid employee role %q", value)
}
