package dto

// LoginRequest carries the authorization code returned by the identity provider
type LoginRequest struct {
	Code string `json:"code"`
}

// LoginURLResponse carries the authorize URL the browser is sent to
type LoginURLResponse struct {
	URL string `json:"url"`
}
