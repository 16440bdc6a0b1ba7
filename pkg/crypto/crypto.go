package crypto

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateToken returns an opaque URL-safe token built from length random
// bytes. Session tokens carry no embedded claims; their only property is
// unguessability.
func GenerateToken(length int) (string, error) {
	buffer := make([]byte, length)
	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buffer), nil
}
