package constants

import "fmt"

// Role dasar aplikasi
const (
	RoleStudent        = "student"
	RoleRepresentative = "representative"
	RoleAdmin          = "admin"
	RoleOwner          = "owner"
)

// Template pesan error role
const (
	ErrOnlyRepsCanAccess   = "❌ Hanya representative, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorRepresentative(feature string) string {
	return fmt.Sprintf(ErrOnlyRepsCanAccess, feature)
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
		RoleRepresentative,
		RoleAdmin,
		RoleOwner,
	}

	RepresentativeAndAbove = []string{
		RoleRepresentative,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)

// ValidAdminRole: role yang boleh tersimpan di tabel admins
func ValidAdminRole(role string) bool {
	switch role {
	case RoleRepresentative, RoleAdmin, RoleOwner:
		return true
	}
	return false
}
