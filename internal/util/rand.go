package util

import (
	"crypto/rand"
	"math/big"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomToken returns length characters drawn uniformly from [0-9a-z].
func RandomToken(length int) string {
	alphabetSize := big.NewInt(int64(len(base36)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		b[i] = base36[n.Int64()]
	}
	return string(b)
}
