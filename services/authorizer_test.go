package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shomadhan-be/models"
	"shomadhan-be/services"
)

// TestCanTransition_Roles checks every member of the role enum plus the
// unauthenticated case against the transition gate.
func TestCanTransition_Roles(t *testing.T) {
	complaint := &models.Complaint{TrackingID: "SMD-TEST-0001", StatusID: models.StatusSubmitted}

	tests := []struct {
		role    models.Role
		allowed bool
	}{
		{models.RoleAgent, true},
		{models.RolePoliticianAdmin, true},
		{models.RoleDeveloperAdmin, true},
		{models.RoleCitizen, false},
		{models.RoleSystem, false},
		{models.Role(""), false},          // unauthenticated
		{models.Role("superadmin"), false}, // unknown role string
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := services.CanTransition(tt.role, "actor-1", complaint)
			assert.Equal(t, tt.allowed, got)
		})
	}
}

// TestCanTransition_Pure verifies the predicate has no complaint-dependent
// behavior: the same role answer holds regardless of complaint state.
func TestCanTransition_Pure(t *testing.T) {
	for statusID := models.StatusSubmitted; statusID <= models.StatusResolved; statusID++ {
		c := &models.Complaint{StatusID: statusID, IsAnonymous: statusID%2 == 0}
		assert.True(t, services.CanTransition(models.RoleAgent, "a1", c))
		assert.False(t, services.CanTransition(models.RoleCitizen, "u1", c))
	}
}
