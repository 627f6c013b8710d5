package rsa

import (
	"errors"
	"io"
	"math/big"
	weak "math/rand"
	"testing"
	"time"
)

func TestNewPrimeRange(t *testing.T) {
	for _, c := range []struct{ low, high int64 }{
		{1, 10},
		{0, 5},
		{-3, 8},
		{10, 9},
		{5, 2},
	} {
		if _, err := NewPrimeRange(big.NewInt(c.low), big.NewInt(c.high)); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("NewPrimeRange(%v, %v) error == %v, want ErrInvalidRange",
				c.low, c.high, err)
		}
	}
	if _, err := NewPrimeRange(big.NewInt(2), big.NewInt(2)); err != nil {
		t.Errorf("NewPrimeRange(2, 2) error == %v, want nil", err)
	}
}

func TestGenPrime(t *testing.T) {
	weak := weak.New(weak.NewSource(time.Now().UnixNano()))
	g := &PrimeGenerator{Rand: weak}
	for _, c := range []struct{ low, high int64 }{
		{2, 3},
		{2, 10},
		{90, 120},
		{1000, 2000},
		{104729, 104729},
		{2, 1000000},
	} {
		low, high := big.NewInt(c.low), big.NewInt(c.high)
		for i := 0; i < 10; i++ {
			p, err := g.GenPrimeRange(low, high)
			if err != nil {
				t.Fatal(err)
			}
			if p.Cmp(low) < 0 || p.Cmp(high) > 0 {
				t.Errorf("GenPrime(%v, %v) == %v, out of range", low, high, p)
			}
			if !p.ProbablyPrime(0) {
				t.Errorf("GenPrime(%v, %v) == %v, not prime", low, high, p)
			}
		}
	}
}

// The tightest possible windows still hold the small primes themselves: a
// trial divisor inside the window must not mark its own value composite.
func TestGenPrimeSmallBounds(t *testing.T) {
	weak := weak.New(weak.NewSource(time.Now().UnixNano()))
	g := &PrimeGenerator{Rand: weak}
	for _, bound := range []int64{2, 3, 5, 7} {
		n := big.NewInt(bound)
		p, err := g.GenPrimeRange(n, n)
		if err != nil {
			t.Fatal(err)
		}
		if !equal(p, n) {
			t.Errorf("GenPrime(%v, %v) == %v, want %v", n, n, p, n)
		}
	}
}

func TestGenPrimeInvalidRange(t *testing.T) {
	g := &PrimeGenerator{}
	if _, err := g.GenPrimeRange(big.NewInt(1), big.NewInt(10)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("GenPrime(1, 10) error == %v, want ErrInvalidRange", err)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestGenPrimeReaderFailure(t *testing.T) {
	g := &PrimeGenerator{Rand: errReader{}}
	if _, err := g.GenPrimeRange(big.NewInt(2), big.NewInt(100)); err == nil {
		t.Error("GenPrime with a broken reader returned no error")
	}
}
