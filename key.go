package rsa

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var ten = big.NewInt(10)

// A KeyPair holds an RSA modulus with its public and private exponents. The
// primes behind the modulus are discarded once the pair is built.
type KeyPair struct {
	N *big.Int // modulus
	E *big.Int // public exponent
	D *big.Int // private exponent
}

// A KeyGenerator builds RSA key pairs from primes drawn out of sieved
// random windows. The zero value draws randomness from crypto/rand and
// discards narration.
type KeyGenerator struct {
	Rand     io.Reader // source of randomness; nil means crypto/rand.Reader
	Observer Observer  // optional step narration

	onPrimes func(p, q *big.Int) // test hook capturing the drawn primes
}

// GenerateKeys returns a key pair whose modulus has at most maxDigits
// decimal digits. The two primes are drawn independently and may collide,
// and nothing checks that e is coprime to the totient; a pair built from
// such a draw encrypts and decrypts without error but does not round-trip.
func (kg *KeyGenerator) GenerateKeys(maxDigits int) (*KeyPair, error) {
	// ⌊√(10^maxDigits)⌋, which is 10^(maxDigits/2) without truncating the
	// exponent for odd digit counts.
	maxGen := new(big.Int).Exp(ten, big.NewInt(int64(maxDigits)), nil)
	maxGen.Sqrt(maxGen)

	primes := &PrimeGenerator{Rand: kg.Rand, Observer: kg.Observer}
	p, err := primes.GenPrimeRange(two, maxGen)
	if err != nil {
		return nil, err
	}
	q, err := primes.GenPrimeRange(two, maxGen)
	if err != nil {
		return nil, err
	}
	if kg.onPrimes != nil {
		kg.onPrimes(p, q)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)
	note(kg.Observer, "p = %v, q = %v", p, q)
	note(kg.Observer, "N = pq = %v", n)
	note(kg.Observer, "phi = (p-1)(q-1) = %v", phi)

	low := p
	if q.Cmp(low) > 0 {
		low = q
	}
	e, err := primes.GenPrimeRange(low, maxGen)
	if err != nil {
		return nil, errors.Wrap(err, "no room above the drawn primes for a public exponent")
	}
	note(kg.Observer, "e = %v", e)

	_, d := egcd(e, phi, kg.Observer)
	note(kg.Observer, "d = %v", d)

	return &KeyPair{N: n, E: e, D: d}, nil
}

// GenerateKeys builds a key pair using randomness from rnd, which may be
// nil to draw from crypto/rand.
func GenerateKeys(rnd io.Reader, maxDigits int) (*KeyPair, error) {
	kg := &KeyGenerator{Rand: rnd}
	return kg.GenerateKeys(maxDigits)
}
