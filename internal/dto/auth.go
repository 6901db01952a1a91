package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse represents the response after successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Message  string `json:"message"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// DashboardResponse represents the authenticated landing payload
type DashboardResponse struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	LoginCount int64  `json:"login_count"`
}

// HomeResponse reflects the caller's login state on the landing page
type HomeResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
}

// MessageResponse is a plain acknowledgment payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
