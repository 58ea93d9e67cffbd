package utils

import (
	"math/rand"
	"time"
)

// GenerateRandomToken produces a short alphanumeric code, e.g. for password
// resets. Not for anything needing cryptographic strength.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[r.Intn(len(charset))]
	}
	return string(token)
}
