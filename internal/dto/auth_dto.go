package dto

// RegisterDTO is the request body for user registration.
type RegisterDTO struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginDTO is the request body for login.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponseDTO carries the issued bearer token and the authenticated user.
type LoginResponseDTO struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    UserResponseDTO `json:"user"`
}
