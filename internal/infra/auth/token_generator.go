package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"estagiohub/internal/domain/service"
	"estagiohub/internal/errors"
)

const resetTokenBytes = 32

// opaqueTokenGenerator mints random credential values. Access tokens are
// UUIDs; reset codes are 32 random bytes hex-encoded. No claims are embedded:
// the database record is the single source of validity.
type opaqueTokenGenerator struct {
	ttl time.Duration
}

// NewOpaqueTokenGenerator is the constructor for opaqueTokenGenerator.
// It returns the implementation as a service.TokenGenerator interface.
func NewOpaqueTokenGenerator(ttl time.Duration) service.TokenGenerator {
	return &opaqueTokenGenerator{ttl: ttl}
}

// NewAccessToken returns a fresh opaque access token value.
func (g *opaqueTokenGenerator) NewAccessToken() string {
	return uuid.NewString()
}

// NewResetPasswordToken returns a fresh opaque password-reset code.
func (g *opaqueTokenGenerator) NewResetPasswordToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate reset token")
	}

	return hex.EncodeToString(buf), nil
}

// TTL returns how long freshly issued tokens stay valid.
func (g *opaqueTokenGenerator) TTL() time.Duration {
	return g.ttl
}
