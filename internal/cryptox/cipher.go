package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// ErrInvalidKeyLength is returned when a key is not KeySize bytes long.
var ErrInvalidKeyLength = errors.New("cryptox: key must be 32 bytes")

// Envelope is one encrypted value in wire form. Both fields are lowercase hex.
type Envelope struct {
	Ciphertext string `json:"data"`
	IV         string `json:"iv"`
}

// DecryptionError covers every way an envelope can fail to open. The message
// is the same for all of them; the cause is only reachable through Unwrap.
type DecryptionError struct {
	cause error
}

func (e *DecryptionError) Error() string { return "decryption failed" }

func (e *DecryptionError) Unwrap() error { return e.cause }

func decryptionError(cause error) error {
	return &DecryptionError{cause: cause}
}

// Encrypt seals plaintext with AES-256-CBC under key. Every call draws a new
// random IV, so equal plaintexts produce different envelopes.
func Encrypt(plaintext string, key []byte) (Envelope, error) {
	if len(key) != KeySize {
		return Envelope{}, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return Envelope{}, err
	}

	iv := common.GenerateRandByteArray(aes.BlockSize)
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	common.WipeByteArray(padded)

	return Envelope{
		Ciphertext: hex.EncodeToString(out),
		IV:         hex.EncodeToString(iv),
	}, nil
}

// Decrypt opens an envelope produced by Encrypt. A wrong key, corrupted data
// or malformed hex all yield *DecryptionError.
func Decrypt(ciphertext, iv string, key []byte) (string, error) {
	if len(key) != KeySize {
		return "", ErrInvalidKeyLength
	}

	rawIV, err := hex.DecodeString(iv)
	if err != nil {
		return "", decryptionError(err)
	}
	if len(rawIV) != aes.BlockSize {
		return "", decryptionError(errors.New("bad iv length"))
	}

	data, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", decryptionError(err)
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", decryptionError(errors.New("ciphertext is not a whole number of blocks"))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", decryptionError(err)
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, rawIV).CryptBlocks(out, data)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		common.WipeByteArray(out)
		return "", decryptionError(err)
	}
	if !utf8.Valid(plain) {
		common.WipeByteArray(out)
		return "", decryptionError(errors.New("plaintext is not utf-8"))
	}

	s := string(plain)
	common.WipeByteArray(out)
	return s, nil
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

var errBadPadding = errors.New("bad padding")

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, errBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, errBadPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, errBadPadding
		}
	}
	return b[:len(b)-n], nil
}
