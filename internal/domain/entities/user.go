package entities

import "time"

// Role is the fixed set of operator roles known to the permission gate.
type Role string

const (
	RoleSuperAdmin       Role = "super_admin"
	RoleAdminCorporativo Role = "admin_corporativo"
	RoleGerente          Role = "gerente"
	RoleTecnico          Role = "tecnico"
	RoleAsesorTecnico    Role = "asesor_tecnico"
	RoleVendedor         Role = "vendedor"
)

// User is the current operator as supplied by the identity collaborator.
type User struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	FullName   string     `json:"full_name"`
	Role       Role       `json:"role"`
	Email      string     `json:"email,omitempty"`
	Autocenter string     `json:"autocenter,omitempty"`
	IsActive   bool       `json:"is_active"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// IsAdmin reports whether the user holds one of the two admin roles.
func (u User) IsAdmin() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAdminCorporativo
}
