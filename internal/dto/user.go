package dto

// LoginRequest is the JSON body for POST /users/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /users/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=128"`
	Password string `json:"password" binding:"required,min=1"`
}

// LoginResponse carries the bearer token returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
