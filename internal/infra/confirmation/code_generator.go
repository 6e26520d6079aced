// Package confirmation generates the short codes mailed to new accounts.
package confirmation

import (
	"math/rand/v2"

	"enroll/internal/domain/service"
)

const (
	// Alphabet is the set every code character is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// CodeLength is the number of characters in a code.
	CodeLength = 6
)

// codeGenerator draws each character independently and uniformly.
// Codes only prove mailbox ownership, so a non-cryptographic source is acceptable.
type codeGenerator struct {
	intN func(n int) int
}

// NewCodeGenerator is the constructor for codeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{intN: rand.IntN}
}

// Generate returns a fresh code of CodeLength characters.
func (g *codeGenerator) Generate() string {
	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = Alphabet[g.intN(len(Alphabet))]
	}

	return string(code)
}
