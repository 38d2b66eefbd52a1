package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword creates a bcrypt hash of the password. The salt is embedded in
// the digest, so the same password never produces the same digest twice;
// comparison goes through CheckPasswordHash.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against a stored digest.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
