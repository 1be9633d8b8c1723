package util

import (
	"strings"
	"testing"
)

func TestRandomToken(t *testing.T) {
	const iterations = 10000
	const tokenLength = 12
	seen := make(map[string]bool)

	for i := 0; i < iterations; i++ {
		token := RandomToken(tokenLength)

		if seen[token] {
			t.Fatalf("Token collision detected after %d iterations: %s", i+1, token)
		}
		seen[token] = true

		if len(token) != tokenLength {
			t.Errorf("Token length = %d, want %d", len(token), tokenLength)
		}

		for _, r := range token {
			if !strings.ContainsRune(base36, r) {
				t.Fatalf("Token %s contains non base36 character %q", token, r)
			}
		}
	}
}
