// Package ackcode generates the acknowledgement codes handed to submitters.
package ackcode

import (
	"math/rand/v2"
	"strings"

	"aegiswhistle/backend/internal/config"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// New returns a fresh acknowledgement code: two independently random base-36
// fragments, concatenated and cut to the configured length. New performs no
// uniqueness check; the store regenerates on collision.
func New() string {
	code := fragment(5) + fragment(5)
	if len(code) > config.AckCodeLength {
		code = code[:config.AckCodeLength]
	}
	return code
}

func fragment(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}
