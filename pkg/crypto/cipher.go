package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"strings"
)

var (
	ErrInvalidKey         = errors.New("encryption key must be 32 bytes (64 hex chars)")
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	nonceReader io.Reader = rand.Reader
)

// Cipher encrypts small values (provider secrets, secret settings, sessions) with AES-256-GCM.
// Ciphertexts are hex encoded nonce||sealed.
type Cipher struct {
	key []byte
}

// NewCipher builds a Cipher from a 64 hex char key
func NewCipher(keyHex string) (*Cipher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}
	return &Cipher{key: key}, nil
}

// Encrypt seals plaintext and returns the hex encoded ciphertext
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(nonceReader, nonce); err != nil {
		return "", err
	}

	return hex.EncodeToString(gcm.Seal(nonce, nonce, plaintext, nil)), nil
}

// Decrypt opens a hex encoded ciphertext produced by Encrypt
func (c *Cipher) Decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, ErrCiphertextTooShort
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, sealed, nil)
}

// EncryptString is Encrypt for string values
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	return c.Encrypt([]byte(plaintext))
}

// DecryptString is Decrypt for string values
func (c *Cipher) DecryptString(ciphertextHex string) (string, error) {
	b, err := c.Decrypt(ciphertextHex)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Cipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// MaskedPrefix is prepended to masked secrets
const MaskedPrefix = "****"

// Mask hides all but the last 4 characters of a secret
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return MaskedPrefix
	}
	return MaskedPrefix + secret[len(secret)-4:]
}

// IsMasked reports whether value looks like the output of Mask
func IsMasked(value string) bool {
	return strings.HasPrefix(value, MaskedPrefix)
}
