package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const sealedVersion byte = 1

var ErrMalformed = errors.New("sealed data is malformed")

// Sealer encrypts blobs at rest with AES-256-GCM. Each purpose gets its own
// key derived from the master key, and the purpose is bound as associated data.
type Sealer struct {
	master []byte
}

func New(key string) (*Sealer, error) {
	if key == "" {
		return &Sealer{}, nil
	}
	decoded, err := decodeKey(key)
	if err != nil {
		return nil, err
	}
	if len(decoded) != 32 {
		return nil, fmt.Errorf("DATA_ENCRYPTION_KEY must be 32 bytes after decoding")
	}
	return &Sealer{master: decoded}, nil
}

func (s *Sealer) Configured() bool {
	return len(s.master) == 32
}

// Seal returns version || nonce || ciphertext. Without a key it returns the
// plaintext unchanged so development setups need no secret.
func (s *Sealer) Seal(purpose string, plain []byte) ([]byte, error) {
	if !s.Configured() {
		return plain, nil
	}
	gcm, err := s.aead(purpose)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(nonce)+len(plain)+gcm.Overhead())
	out = append(out, sealedVersion)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plain, []byte(purpose)), nil
}

func (s *Sealer) Open(purpose string, sealed []byte) ([]byte, error) {
	if !s.Configured() {
		return sealed, nil
	}
	gcm, err := s.aead(purpose)
	if err != nil {
		return nil, err
	}
	if len(sealed) < 1+gcm.NonceSize() || sealed[0] != sealedVersion {
		return nil, ErrMalformed
	}
	nonce := sealed[1 : 1+gcm.NonceSize()]
	plain, err := gcm.Open(nil, nonce, sealed[1+gcm.NonceSize():], []byte(purpose))
	if err != nil {
		return nil, fmt.Errorf("open sealed data: %w", err)
	}
	return plain, nil
}

func (s *Sealer) aead(purpose string) (cipher.AEAD, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, s.master, nil, []byte(purpose)), key); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func decodeKey(raw string) ([]byte, error) {
	if len(raw) == 64 {
		decoded, err := hex.DecodeString(raw)
		if err == nil {
			return decoded, nil
		}
	}
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return decoded, nil
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(raw); err == nil {
		return decoded, nil
	}
	return []byte(raw), nil
}
