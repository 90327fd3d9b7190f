// Package api defines the JSON types shared across the HTTP surface.
package api

// MessageResponse is the generic envelope for informational and error
// responses. Every non-2xx body on this API carries a message field.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserInfo is the public view of a user returned by the auth endpoints.
// The password hash never leaves the service.
type UserInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthResponse is returned by both signup and login: a signed bearer token
// plus the public view of the authenticated user.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
