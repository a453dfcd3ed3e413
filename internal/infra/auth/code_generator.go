package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"ewarrants/internal/domain/service"
	"ewarrants/internal/errors"
)

const codeDigits = 6

var codeSpace = big.NewInt(1_000_000)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a generator of zero-padded six digit codes.
func NewCodeGenerator() service.CodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate code")
	}

	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
