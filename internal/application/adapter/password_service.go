package adapter

// PasswordService hashes and checks owner passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error when password does not match hashedPassword.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords a new account may not use.
	ValidatePasswordStrength(password string) error
}
