package rsa

import "math/big"

var one = big.NewInt(1)

// equal returns true if two arbitrary-precision integers are equal.
func equal(z1, z2 *big.Int) bool {
	return z1.Cmp(z2) == 0
}

// PowMod returns base^exponent mod modulus by repeated squaring, taking
// O(log exponent) modular multiplications. The exponent must be nonnegative
// and the modulus positive; an exponent of zero yields 1 mod modulus. The
// arguments are not modified.
func PowMod(base, exponent, modulus *big.Int) *big.Int {
	ret := new(big.Int).Mod(one, modulus)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			ret.Mul(ret, b)
			ret.Mod(ret, modulus)
		}
		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return ret
}
