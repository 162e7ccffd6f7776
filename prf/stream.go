package prf

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// KeystreamAES128CTR returns outLen bytes of AES-128-CTR keystream under key
// with an all-zero nonce. The public quadratic map is expanded from this
// stream, so the byte order is normative: block i covers bytes 16i..16i+15.
func KeystreamAES128CTR(key []byte, outLen int) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("prf: aes keystream: %w", err)
	}
	iv := make([]byte, aes.BlockSize)
	out := make([]byte, outLen)
	cipher.NewCTR(block, iv).XORKeyStream(out, out)
	return out, nil
}
