package services

import "shomadhan-be/models"

// transitionRoles is the closed set of roles allowed to move a complaint
// between states. Citizens and anonymous callers are never in it.
var transitionRoles = map[models.Role]bool{
	models.RoleAgent:           true,
	models.RolePoliticianAdmin: true,
	models.RoleDeveloperAdmin:  true,
}

// CanTransition decides whether the actor may move the complaint to another
// state. Pure predicate, no side effects. Rights are currently role-wide:
// agents and both admin roles may target any state of any complaint, which
// matches how the portal scopes day-to-day resolution work.
func CanTransition(role models.Role, actorID string, c *models.Complaint) bool {
	return transitionRoles[role]
}
