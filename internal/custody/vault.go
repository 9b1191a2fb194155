package custody

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/scrypt"
)

var ErrKeyRefInvalid error = errors.New("custody key reference is invalid")

const (
	saltLen   = 16
	scryptN   = 1 << 15
	scryptR   = 8
	scryptP   = 1
	aesKeyLen = 32
)

// Key is the public outcome of generating custody material: the on-chain
// address plus an opaque reference the wallet record stores. The private key
// never leaves this package unencrypted except for signing.
type Key struct {
	Address string
	KeyRef  string
}

// Vault generates and seals secp256k1 keys. Sealing is scrypt-derived
// AES-GCM with a per-key salt; the key ref is base64(salt || nonce || box).
type Vault struct {
	passphrase []byte
}

func NewVault(passphrase string) *Vault {
	return &Vault{
		passphrase: []byte(passphrase),
	}
}

func (v *Vault) CreateKey(ctx context.Context) (Key, error) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		return Key{}, fmt.Errorf("generate key: %w", err)
	}

	ref, err := v.seal(crypto.FromECDSA(priv))
	if err != nil {
		return Key{}, fmt.Errorf("seal key: %w", err)
	}

	return Key{
		Address: crypto.PubkeyToAddress(priv.PublicKey).Hex(),
		KeyRef:  ref,
	}, nil
}

// PrivateKey unseals the key behind a stored reference for signing.
func (v *Vault) PrivateKey(ctx context.Context, keyRef string) (*ecdsa.PrivateKey, error) {
	raw, err := v.open(keyRef)
	if err != nil {
		return nil, err
	}

	priv, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}

	return priv, nil
}

func (v *Vault) seal(plaintext []byte) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	gcm, err := v.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	box := gcm.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, len(salt)+len(nonce)+len(box))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, box...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (v *Vault) open(keyRef string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(keyRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyRefInvalid, err)
	}
	if len(blob) < saltLen {
		return nil, fmt.Errorf("%w: too short", ErrKeyRefInvalid)
	}

	salt := blob[:saltLen]

	gcm, err := v.aead(salt)
	if err != nil {
		return nil, err
	}

	rest := blob[saltLen:]
	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("%w: too short", ErrKeyRefInvalid)
	}

	nonce, box := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, box, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyRefInvalid, err)
	}

	return plaintext, nil
}

func (v *Vault) aead(salt []byte) (cipher.AEAD, error) {
	derived, err := scrypt.Key(v.passphrase, salt, scryptN, scryptR, scryptP, aesKeyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	return gcm, nil
}
