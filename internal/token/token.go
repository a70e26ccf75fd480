// Package token mengenkripsi payload verifikasi sertifikat menjadi token
// yang dimuat di dalam QR code. Enkripsi deterministik: payload yang sama
// selalu menghasilkan token yang sama, sehingga QR tidak berubah antar render.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

var ErrInvalidToken = errors.New("token verifikasi tidak valid")

// Payload tiga field yang distempel ke QR code
type Payload struct {
	Name             string `json:"name"`
	OrganizationName string `json:"organizationName"`
	CertificateID    string `json:"certificateId"`
}

type Cipher struct {
	key      []byte // kunci AEAD
	nonceKey []byte // kunci HMAC untuk nonce sintetis
}

// NewCipher menurunkan kunci enkripsi dan kunci nonce dari satu secret.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("token secret tidak boleh kosong")
	}

	key := sha256.Sum256([]byte("enc:" + secret))
	nonceKey := sha256.Sum256([]byte("nonce:" + secret))

	return &Cipher{key: key[:], nonceKey: nonceKey[:]}, nil
}

// Encrypt men-serialize payload lalu mengenkripsinya dengan ChaCha20-Poly1305.
// Nonce diturunkan dari HMAC plaintext supaya hasilnya deterministik.
func (c *Cipher) Encrypt(p Payload) (string, error) {
	plaintext, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("gagal serialize payload: %w", err)
	}

	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, c.nonceKey)
	mac.Write(plaintext)
	nonce := mac.Sum(nil)[:chacha20poly1305.NonceSize]

	sealed := aead.Seal(nil, nonce, plaintext, nil)

	out := make([]byte, 0, len(nonce)+len(sealed))
	out = append(out, nonce...)
	out = append(out, sealed...)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Decrypt membuka token kembali menjadi payload.
func (c *Cipher) Decrypt(tok string) (*Payload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if len(raw) < chacha20poly1305.NonceSize+chacha20poly1305.Overhead {
		return nil, ErrInvalidToken
	}

	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return nil, err
	}

	nonce := raw[:chacha20poly1305.NonceSize]
	plaintext, err := aead.Open(nil, nonce, raw[chacha20poly1305.NonceSize:], nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var p Payload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return nil, ErrInvalidToken
	}
	return &p, nil
}
