package constants

import "fmt"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
)

// Template pesan error role
const (
	ErrOnlyInstructorsCanAccess = "❌ Hanya instructor, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess      = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleInstructor,
		RoleAdmin,
		RoleOwner,
	}

	InstructorAndAbove = []string{
		RoleInstructor,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
