// Package entities contains core business entities.
package entities

// Approver is an (user, level) pair offered for assignment to a request.
type Approver struct {
	UserID       string `yaml:"user_id" json:"userId"`
	UserName     string `yaml:"user_name" json:"userName"`
	UserAvatar   string `yaml:"user_avatar" json:"userAvatar"`
	UserPosition string `yaml:"user_position" json:"userPosition"`
	Level        int    `yaml:"level" json:"level"`
}

// PreApproverSet is a reusable ordered list of approvers for a request type.
type PreApproverSet struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description,omitempty"`
	RequestType string     `yaml:"request_type" json:"requestType"`
	Approvers   []Approver `yaml:"approvers" json:"approvers"`
	IsDefault   bool       `yaml:"is_default" json:"isDefault"`
	IsGlobal    bool       `yaml:"is_global" json:"isGlobal"`
	CreatedBy   string     `yaml:"created_by" json:"createdBy"`
}
