package authdto

// AdminLoginInput đầu vào đăng nhập quản trị.
type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginOutput kết quả đăng nhập quản trị.
type AdminLoginOutput struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
