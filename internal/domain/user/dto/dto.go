package dto

// UserIDRequest is the body of PUT /api/superuser
type UserIDRequest struct {
	ID uint `json:"id"`
}
