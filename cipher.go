package rsa

import "math/big"

// Encrypt raises the message to the public exponent mod n. The message is
// expected to lie in [0, n); a larger message is reduced silently and
// cannot be recovered by Decrypt. There is no padding: equal messages
// always produce equal ciphertexts.
func Encrypt(m, n, e *big.Int) *big.Int {
	return PowMod(m, e, n)
}

// Decrypt raises the ciphertext to the private exponent mod n. Decrypting
// with a key that does not match the ciphertext yields a well-defined but
// meaningless integer, not an error.
func Decrypt(c, n, d *big.Int) *big.Int {
	return PowMod(c, d, n)
}
