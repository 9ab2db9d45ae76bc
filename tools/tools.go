package tools

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
)

const numbers = "0123456789"

func EncryptTextSHA512(text string) string {
	sum := sha512.Sum512([]byte(text))
	return hex.EncodeToString(sum[:])
}

// EqualHash compares two hex digests in constant time.
func EqualHash(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// RandomNumbers returns a numeric string drawn from crypto/rand.
func RandomNumbers(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(numbers)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = numbers[n.Int64()]
	}
	return string(b), nil
}
