package club

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	JoinCodeLength   = 24
	joinCodeAttempts = 10
)

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// generateJoinCode mints a candidate code. Uniqueness is settled by the
// caller: a pre-check inside the transaction plus the unique index on the
// column, which closes the window between two concurrent allocations.
func generateJoinCode() (string, error) {
	max := big.NewInt(int64(len(joinCodeAlphabet)))

	var builder strings.Builder
	builder.Grow(JoinCodeLength)

	for i := 0; i < JoinCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(joinCodeAlphabet[n.Int64()])
	}

	return builder.String(), nil
}

func allocateJoinCode(ctx context.Context, repo Repository) (string, error) {
	for i := 0; i < joinCodeAttempts; i++ {
		code, err := generateJoinCode()
		if err != nil {
			return "", err
		}
		taken, err := repo.IsCodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationFailed
}
