// Package entities contains core business entities.
package entities

// RoleAdministrator grants read access to every request.
const RoleAdministrator = "Administrator"

// User is a directory entry of a person who may request or approve.
type User struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	Avatar        string `yaml:"avatar" json:"avatar"`
	Position      string `yaml:"position" json:"position"`
	Role          string `yaml:"role" json:"role"`
	Department    string `yaml:"department" json:"department"`
	IsApprover    bool   `yaml:"is_approver" json:"isApprover"`
	ApproverLevel int    `yaml:"approver_level" json:"approverLevel"`
}

// IsAdministrator reports whether the user holds the administrator role.
func (u User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

// AsRequester snapshots the user for the requestedBy field.
func (u User) AsRequester() Requester {
	position := u.Position
	if position == "" {
		position = u.Role
	}
	return Requester{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Position: position}
}
