package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can review check-ins and edit attendance
	RoleEmployee Role = "employee" // Regular employee
)

// Principal is the authenticated caller, read from the access token claims.
type Principal struct {
	UserID     string
	Name       string
	CompanyID  string
	EmployeeID *string
	Role       Role
}

// IsManager checks if the caller is manager or owner
func (p Principal) IsManager() bool {
	return p.Role == RoleManager || p.Role == RoleOwner
}

// CanViewEmployee reports whether the caller may read data of employeeID
func (p Principal) CanViewEmployee(employeeID string) bool {
	if p.IsManager() {
		return true
	}
	return p.EmployeeID != nil && *p.EmployeeID == employeeID
}
