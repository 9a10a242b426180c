package dto

import (
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	permissionentities "github.com/hm-yang2/board-share/internal/domain/permission/entities"
)

// ChannelRequest is the body of PUT and POST /api/channel
type ChannelRequest struct {
	ID          *uint               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Visibility  entities.Visibility `json:"visibility"`
}

// UserIDRequest is the body of roster PUT requests
type UserIDRequest struct {
	ID uint `json:"id"`
}

// RoleResponse is the body of GET /api/channel/role
type RoleResponse struct {
	Role permissionentities.Role `json:"role"`
}
