package constants

import "fmt"

const (
	RoleStudent  = "Student"
	RoleGuardian = "Guardian"
	RoleAdmin    = "Admin"
)

const ErrOnlyAdminsCanAccess = "❌ Only administrators can access %s."

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var AdminOnly = []string{RoleAdmin}
