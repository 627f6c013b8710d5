package rsa

import "math/big"

// DualFactor returns a pair of integers whose product is n, found by trial
// division from 2 upward. If n is the product of two primes, the pair is
// those primes. The bool is false when n has no nontrivial factor, which is
// the case for primes, 1, and 0. The search takes time exponential in the
// bit length of n: factoring the modulus is exactly the problem RSA is
// betting against.
func DualFactor(n *big.Int) (*big.Int, *big.Int, bool) {
	limit := new(big.Int).Sqrt(n)
	rem := new(big.Int)
	for d := big.NewInt(2); d.Cmp(limit) <= 0; d.Add(d, one) {
		if rem.Mod(n, d).Sign() == 0 {
			return d, new(big.Int).Div(n, d), true
		}
	}
	return nil, nil, false
}
