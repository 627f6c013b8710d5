package rsa

import (
	"fmt"
	"math/big"
)

// An Observer receives a line of text for each step an algorithm takes:
// remainder sequences and substitution equations from the extended GCD,
// primes as they are found, key components as they are derived. A nil
// Observer is always permitted and discards all narration.
type Observer interface {
	Step(s string)
}

// note formats a step description and hands it to the observer, if any.
func note(obs Observer, format string, args ...interface{}) {
	if obs == nil {
		return
	}
	obs.Step(fmt.Sprintf(format, args...))
}

// equation renders r = s * a + t * b, folding the sign of t into the operator.
func equation(r, s, a, t, b *big.Int) string {
	op := "+"
	if t.Sign() < 0 {
		op = "-"
		t = new(big.Int).Neg(t)
	}
	return fmt.Sprintf("%v = %v * %v %s %v * %v", r, s, a, op, t, b)
}
