package reconcile

import (
	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// Roles trims industry roles down to the fields the model reports.
func Roles(detail onboarding.IndustryDetail) []domain.Role {
	roles := make([]domain.Role, 0, len(detail.Roles))
	for _, role := range detail.Roles {
		roles = append(roles, domain.Role{
			ID:              role.ID,
			LevelName:       role.LevelName,
			RoleDisplayName: role.RoleDisplayName,
		})
	}
	return roles
}
