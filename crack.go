package rsa

import (
	"math/big"

	"github.com/pkg/errors"
)

// Crack recovers the private exponent from the public key alone by
// factoring the modulus, rebuilding the totient, and inverting e against
// it. The recovered exponent matches the generated one whenever n is the
// product of two primes and e is coprime to the totient. It fails with
// ErrFactorizationFailed when n has no nontrivial factor. Factoring is the
// expensive step; its cost is the entire security argument of RSA.
func Crack(n, e *big.Int) (*big.Int, error) {
	p, q, ok := DualFactor(n)
	if !ok {
		return nil, errors.Wrapf(ErrFactorizationFailed, "crack %v", n)
	}
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)
	_, d := ExtendedGCD(e, phi)
	return d, nil
}
