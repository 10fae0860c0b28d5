package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"mysession/helpers"
	"mysession/interfaces"
)

// KeyAlphabet is the alphabet session keys are drawn from.
const KeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultKeyLength is the length of a session key.
const DefaultKeyLength = 6

type randomKeyGenerator struct {
	alphabet string
	length   int
	source   io.Reader
}

// NewRandomKeyGenerator returns a KeyGenerator that draws length characters uniformly from KeyAlphabet using crypto/rand.
func NewRandomKeyGenerator(length int) interfaces.KeyGenerator {
	return newKeyGenerator(KeyAlphabet, length, rand.Reader)
}

func newKeyGenerator(alphabet string, length int, source io.Reader) *randomKeyGenerator {
	if length <= 0 {
		panic("service.key_generator.go: length must be positive")
	}
	return &randomKeyGenerator{
		alphabet: helpers.StrPanic(alphabet, "service.key_generator.go: alphabet is required"),
		length:   length,
		source:   helpers.NilPanic(source, "service.key_generator.go: source is required"),
	}
}

func (g *randomKeyGenerator) Generate() (string, error) {
	size := big.NewInt(int64(len(g.alphabet)))
	out := make([]byte, g.length)
	for i := range out {
		n, err := rand.Int(g.source, size)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		out[i] = g.alphabet[n.Int64()]
	}
	return string(out), nil
}
