package dto

// LoginRequest carries the single login credential (username or email).
type LoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// UserInfo is the identity block echoed back to the client.
type UserInfo struct {
	UserID     string `json:"user_id"`
	Credential string `json:"credential"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}
