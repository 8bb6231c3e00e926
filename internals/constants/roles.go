package constants

// Role user panel admin
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
)

// AdminRoles: role yang boleh mengubah pengaturan situs.
var AdminRoles = []string{RoleSuperadmin, RoleAdmin}
