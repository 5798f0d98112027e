package dto

// ==================== ADMIN AUTH DTOs ====================

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

func (r AdminLoginRequest) Validate() error {
	return GetValidator().Struct(r)
}

type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
