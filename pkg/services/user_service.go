package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	apperrors "userroster/pkg/errors"
	"userroster/pkg/models"
	"userroster/pkg/repository"
)

// UserService loads user records from storage and derives their role sets
type UserService struct {
	repo repository.Repository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// FetchActiveUsers queries storage for active users and maps each record
// through the role transform. Errors propagate unmodified.
func (s *UserService) FetchActiveUsers(ctx context.Context) ([]models.User, error) {
	records, err := s.repo.QueryUsers(ctx, repository.ActiveUsersQuery)
	if err != nil {
		return nil, apperrors.NewServiceError("user", "FetchActiveUsers", err).
			WithContext("query", repository.ActiveUsersQuery)
	}

	users := make([]models.User, 0, len(records))
	for _, record := range records {
		users = append(users, ProcessUserData(record))
	}

	log.WithField("count", len(users)).Debug("Processed active user records")
	return users, nil
}

// ProcessUserData transforms a storage record into a User. The role set is
// the record's base roles followed by the derived roles, order preserved.
func ProcessUserData(record models.UserRecord) models.User {
	roles := record.BaseRoles()
	roles = append(roles, determineAdditionalRoles(record)...)

	return models.User{
		ID:    record.ID,
		Name:  record.Name,
		Roles: roles,
	}
}

// determineAdditionalRoles derives roles from the record's permissions and
// purchase history. Order is admin then customer, never sorted.
func determineAdditionalRoles(record models.UserRecord) []string {
	var roles []string
	if record.HasPermission(models.RoleAdmin) {
		roles = append(roles, models.RoleAdmin)
	}
	if record.TotalPurchases > 0 {
		roles = append(roles, models.RoleCustomer)
	}
	return roles
}
