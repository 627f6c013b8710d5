package rsa

import "math/big"

// ExtendedGCD returns the greatest common divisor of a and b together with
// the multiplicative inverse of a mod b. Both arguments must be positive.
// The inverse is meaningful only when the gcd is 1; for other inputs the
// second return value is unspecified and callers must not rely on it.
func ExtendedGCD(a, b *big.Int) (*big.Int, *big.Int) {
	return egcd(a, b, nil)
}

// egcd orders the operands largest first, builds the Euclidean remainder
// sequence, then back-substitutes from its tail to recover the Bezout
// coefficient attached to the first original argument.
func egcd(a, b *big.Int, obs Observer) (*big.Int, *big.Int) {
	x, y := a, b
	swapped := false
	if y.Cmp(x) > 0 {
		x, y = y, x
		swapped = true
	}

	vals := []*big.Int{x, y}
	for vals[len(vals)-1].Sign() != 0 {
		vals = append(vals, new(big.Int).Mod(vals[len(vals)-2], vals[len(vals)-1]))
	}
	vals = vals[:len(vals)-1]
	g := new(big.Int).Set(vals[len(vals)-1])
	note(obs, "remainder sequence: %v", vals)
	note(obs, "gcd(%v, %v) = %v", x, y, g)

	if len(vals) < 3 {
		// y divides x, so there is nothing to substitute. The gcd is y
		// itself, and the inverse matters only when y is 1: the inverse of
		// the smaller operand is then 1 mod the larger one.
		inv := new(big.Int)
		if swapped {
			inv.Mod(one, x)
		} else {
			inv.Mod(one, y)
		}
		note(obs, "inverse of %v mod %v = %v", a, b, inv)
		return g, inv
	}

	// Maintain s and t with g = s*vals[i-2] + t*vals[i-1] as i walks from
	// the tail of the sequence back to its head.
	s := big.NewInt(1)
	t := new(big.Int).Neg(new(big.Int).Div(vals[len(vals)-3], vals[len(vals)-2]))
	note(obs, "%s", equation(g, s, vals[len(vals)-3], t, vals[len(vals)-2]))
	for i := len(vals) - 2; i > 1; i-- {
		q := new(big.Int).Neg(new(big.Int).Div(vals[i-2], vals[i-1]))
		s, t = t, new(big.Int).Add(s, new(big.Int).Mul(t, q))
		note(obs, "%s", equation(g, s, vals[i-2], t, vals[i-1]))
	}

	if swapped {
		inv := new(big.Int).Mod(t, x)
		note(obs, "inverse of %v mod %v = %v", a, b, inv)
		return g, inv
	}
	inv := new(big.Int).Mod(s, y)
	note(obs, "inverse of %v mod %v = %v", a, b, inv)
	return g, inv
}
