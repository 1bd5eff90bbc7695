package utils

import "golang.org/x/crypto/bcrypt"

// HashSecret hashes a password or PIN for storage.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost) // Hash with default cost
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifySecret checks a presented secret against a stored hash. A
// mismatch is reported as false, never as an error. The same primitive
// backs both login passwords and transaction PINs.
func VerifySecret(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
