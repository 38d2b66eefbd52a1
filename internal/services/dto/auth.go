package dto

// RegisterRequest carries the registration payload. Field-level rules are
// applied by the credential validators so that every violation is reported,
// not just the first one gin binding would stop at.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	UserRole    string `json:"userRole"`
	DateOfBirth string `json:"dateOfBirth"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
