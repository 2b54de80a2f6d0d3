package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/cargoconnect/api/internal/errors"
)

// refreshService implements RefreshService using SHA-256 for token hashing.
type refreshService struct{}

// NewRefreshService creates a RefreshService instance.
func NewRefreshService() RefreshService {
	return &refreshService{}
}

// Generate creates a new cryptographically secure 32-byte random token.
// The token is base64 URL-encoded for transmission; only its SHA-256 hash
// is ever stored server-side, so a leaked database row cannot be replayed.
func (r *refreshService) Generate() (plainToken string, tokenHash string, err error) {
	// 32 random bytes (256 bits)
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random refresh token")
	}

	plainToken = base64.URLEncoding.EncodeToString(randomBytes)
	tokenHash = r.Hash(plainToken)

	return plainToken, tokenHash, nil
}

// Hash hashes a plain refresh token using SHA-256.
// Returns the hash as a hexadecimal string.
func (r *refreshService) Hash(plainToken string) string {
	hash := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(hash[:])
}
