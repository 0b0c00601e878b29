package constants

import "fmt"

const RoleSupervisor = "supervisor"

const ErrOnlySupervisorsCanAccess = "❌ Solo supervisores pueden acceder a %s."

// Roles allowed into the /api/a admin group.
var AdminRoles = []string{RoleSupervisor}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}
