// Package rsa implements the number theory behind a textbook RSA
// cryptosystem: extended-GCD modular inverses, square-and-multiply
// exponentiation, prime generation by windowed sieving, key construction,
// raw integer encryption and decryption, and a factoring attack that
// recovers the private exponent from the public key alone.
//
// Everything here is deliberately toy-sized and unsafe: there is no
// padding, no distinctness check on the generated primes, no check that
// the public exponent is coprime to the totient, and the moduli are small
// enough to factor by trial division. It exists to make the arithmetic
// legible, not to protect anything; use crypto/rsa for that.
package rsa
