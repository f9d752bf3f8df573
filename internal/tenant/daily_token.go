package tenant

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateDailyToken draws a 4 digit token. It is a shared secret read
// out to customers, not a credential.
func GenerateDailyToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func validDailyToken(token string) bool {
	if len(token) != 4 {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
