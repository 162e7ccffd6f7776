package keys

// Package keys persists compact keypairs and detached signatures as JSON for
// the CLI workflow. Key and signature material is hex encoded; files carry
// the level name and an RFC3339 timestamp.

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultDir is where the CLI keeps its key material.
const DefaultDir = "mayo_keys"

// Keypair is the persisted form of a compact keypair.
type Keypair struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
}

// Signature is the persisted form of a detached signature.
type Signature struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// NewKeypair bundles a compact keypair with its level name.
func NewKeypair(level string, pk, sk []byte) *Keypair {
	return &Keypair{
		Version:   "mayo-keypair-v1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		PublicKey: hex.EncodeToString(pk),
		SecretKey: hex.EncodeToString(sk),
	}
}

// Material decodes the stored key bytes.
func (kp *Keypair) Material() (pk, sk []byte, err error) {
	pk, err = hex.DecodeString(kp.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("keys: public key hex: %w", err)
	}
	sk, err = hex.DecodeString(kp.SecretKey)
	if err != nil {
		return nil, nil, fmt.Errorf("keys: secret key hex: %w", err)
	}
	return pk, sk, nil
}

// NewSignature bundles a detached signature with the signed message.
func NewSignature(level string, msg, sig []byte) *Signature {
	return &Signature{
		Version:   "mayo-signature-v1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Message:   hex.EncodeToString(msg),
		Signature: hex.EncodeToString(sig),
	}
}

// Material decodes the stored message and signature bytes.
func (s *Signature) Material() (msg, sig []byte, err error) {
	msg, err = hex.DecodeString(s.Message)
	if err != nil {
		return nil, nil, fmt.Errorf("keys: message hex: %w", err)
	}
	sig, err = hex.DecodeString(s.Signature)
	if err != nil {
		return nil, nil, fmt.Errorf("keys: signature hex: %w", err)
	}
	return msg, sig, nil
}

// SaveKeypair writes the keypair to dir/keypair.json.
func SaveKeypair(dir string, kp *Keypair) error {
	return writeJSON(dir, "keypair.json", kp)
}

// LoadKeypair reads the keypair from dir/keypair.json.
func LoadKeypair(dir string) (*Keypair, error) {
	var kp Keypair
	if err := readJSON(dir, "keypair.json", &kp); err != nil {
		return nil, err
	}
	return &kp, nil
}

// SaveSignature writes the signature bundle to dir/signature.json.
func SaveSignature(dir string, s *Signature) error {
	return writeJSON(dir, "signature.json", s)
}

// LoadSignature reads the signature bundle from dir/signature.json.
func LoadSignature(dir string) (*Signature, error) {
	var s Signature
	if err := readJSON(dir, "signature.json", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func writeJSON(dir, name string, v any) error {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readJSON(dir, name string, v any) error {
	if dir == "" {
		dir = DefaultDir
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
