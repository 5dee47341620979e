package validate

import "fmt"

type credentials struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// Credentials checks the shape of login input before any lookup happens.
func Credentials(email, password string) error {
	if err := v.Struct(credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("malformed credentials: %w", err)
	}
	return nil
}
