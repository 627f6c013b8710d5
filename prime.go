package rsa

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var (
	two          = big.NewInt(2)
	windowRadius = big.NewInt(50)
)

// A PrimeRange bounds a prime search between Low and High, inclusive.
type PrimeRange struct {
	Low  *big.Int
	High *big.Int
}

// NewPrimeRange validates the bounds of a prime search: the low bound must
// be at least 2 and the high bound must not lie below it.
func NewPrimeRange(low, high *big.Int) (PrimeRange, error) {
	if low.Cmp(two) < 0 || high.Cmp(low) < 0 {
		return PrimeRange{}, errors.Wrapf(ErrInvalidRange, "[%v, %v]", low, high)
	}
	return PrimeRange{Low: low, High: high}, nil
}

// A PrimeGenerator searches a range of integers for primes by sieving small
// windows around randomly chosen midpoints. The zero value draws randomness
// from crypto/rand and discards narration. The default source is fine for a
// toy system, but any real use must supply a cryptographically secure Rand:
// an attacker who can reconstruct the generator state can predict every key
// this machine will produce.
type PrimeGenerator struct {
	Rand     io.Reader // source of randomness; nil means crypto/rand.Reader
	Observer Observer  // optional step narration
}

// GenPrime returns a prime within the range. It keeps trying new random
// windows until one contains a prime, so it never returns on a range that
// contains no primes; callers needing bounded termination must impose their
// own deadline.
func (g *PrimeGenerator) GenPrime(r PrimeRange) (*big.Int, error) {
	rnd := g.Rand
	if rnd == nil {
		rnd = rand.Reader
	}
	span := new(big.Int).Sub(r.High, r.Low)
	span.Add(span, one)
	for {
		mid, err := rand.Int(rnd, span)
		if err != nil {
			return nil, err
		}
		mid.Add(mid, r.Low)

		start := new(big.Int).Sub(mid, windowRadius)
		if start.Cmp(r.Low) < 0 {
			start.Set(r.Low)
		}
		end := new(big.Int).Add(mid, windowRadius)
		if end.Cmp(r.High) > 0 {
			end.Set(r.High)
		}
		if p := sieve(start, end); p != nil {
			note(g.Observer, "prime found: %v", p)
			return p, nil
		}
	}
}

// GenPrimeRange is shorthand for GenPrime over a validated range.
func (g *PrimeGenerator) GenPrimeRange(low, high *big.Int) (*big.Int, error) {
	r, err := NewPrimeRange(low, high)
	if err != nil {
		return nil, err
	}
	return g.GenPrime(r)
}

// sieve marks every composite between start and end inclusive and returns
// the first unmarked value, or nil if the whole window is composite. For
// each trial divisor, marking starts at twice the divisor, never at the
// divisor itself, so a prime inside the window is not condemned for
// dividing itself.
func sieve(start, end *big.Int) *big.Int {
	n := new(big.Int).Sub(end, start).Int64() + 1
	composite := make([]bool, n)

	limit := new(big.Int).Sqrt(end)
	for d := big.NewInt(2); d.Cmp(limit) <= 0; d.Add(d, one) {
		m := new(big.Int).Add(start, d)
		m.Sub(m, one)
		m.Div(m, d)
		m.Mul(m, d)
		if m.Cmp(d) == 0 {
			m.Add(m, d)
		}
		for ; m.Cmp(end) <= 0; m.Add(m, d) {
			composite[new(big.Int).Sub(m, start).Int64()] = true
		}
	}

	for i := int64(0); i < n; i++ {
		if !composite[i] {
			return new(big.Int).Add(start, big.NewInt(i))
		}
	}
	return nil
}
