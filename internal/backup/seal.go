package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/lifedash/internal/crypto"
)

// SealedFormat идентификатор формата зашифрованной копии
const SealedFormat = "lifedash-sealed/v1"

// envelope wraps an encrypted document. Salt and Data are base64 in JSON.
type envelope struct {
	Format string `json:"format"`
	Salt   []byte `json:"salt"`
	Data   []byte `json:"data"`
}

// Seal encrypts an encoded document with a key derived from passphrase.
func Seal(doc []byte, passphrase string) ([]byte, error) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveKey(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	sealed, err := crypto.Encrypt(doc, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt backup: %w", err)
	}

	data, err := json.MarshalIndent(envelope{Format: SealedFormat, Salt: salt, Data: sealed}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return data, nil
}

// IsSealed reports whether data is a sealed envelope rather than a plain document.
func IsSealed(data []byte) bool {
	var header struct {
		Format string `json:"format"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return false
	}
	return header.Format == SealedFormat
}

// Open decrypts a sealed envelope and returns the plain document.
func Open(data []byte, passphrase string) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.Format != SealedFormat {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrMalformed, env.Format)
	}
	if passphrase == "" {
		return nil, ErrPassphraseRequired
	}

	key, err := crypto.DeriveKey(passphrase, env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	doc, err := crypto.Decrypt(env.Data, key)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthFailed) {
			return nil, ErrWrongPassphrase
		}
		return nil, fmt.Errorf("failed to open backup: %w", err)
	}
	return doc, nil
}
