package keys

import (
	"bytes"
	"testing"
)

func TestKeypairSaveLoad(t *testing.T) {
	dir := t.TempDir()
	pk := []byte{0xde, 0xad, 0xbe, 0xef}
	sk := []byte{0x01, 0x02}
	if err := SaveKeypair(dir, NewKeypair("MAYO_1", pk, sk)); err != nil {
		t.Fatalf("save: %v", err)
	}
	kp, err := LoadKeypair(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if kp.Level != "MAYO_1" || kp.Version != "mayo-keypair-v1" {
		t.Fatalf("metadata: %q %q", kp.Level, kp.Version)
	}
	gotPK, gotSK, err := kp.Material()
	if err != nil {
		t.Fatalf("material: %v", err)
	}
	if !bytes.Equal(gotPK, pk) || !bytes.Equal(gotSK, sk) {
		t.Fatal("key material round trip mismatch")
	}
	if kp.Timestamp == "" {
		t.Fatal("missing timestamp")
	}
}

func TestSignatureSaveLoad(t *testing.T) {
	dir := t.TempDir()
	msg := []byte("hello")
	sig := bytes.Repeat([]byte{7}, 32)
	if err := SaveSignature(dir, NewSignature("MAYO_2", msg, sig)); err != nil {
		t.Fatalf("save: %v", err)
	}
	s, err := LoadSignature(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	gotMsg, gotSig, err := s.Material()
	if err != nil {
		t.Fatalf("material: %v", err)
	}
	if !bytes.Equal(gotMsg, msg) || !bytes.Equal(gotSig, sig) {
		t.Fatal("signature round trip mismatch")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadKeypair(t.TempDir()); err == nil {
		t.Fatal("missing keypair file should fail")
	}
}
