package service

import "github.com/MKhiriev/go-job-board/models"

// authorize passes only when identity holds role and owns the resource.
func authorize(identity models.Identity, role models.Role, ownerID string) error {
	if !identity.IsOwner(role, ownerID) {
		return ErrForbidden
	}
	return nil
}

// requireRole is the role-only form of authorize used by create endpoints.
func requireRole(identity models.Identity, role models.Role) error {
	if identity.Role != role {
		return ErrForbidden
	}
	return nil
}
