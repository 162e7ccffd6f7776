package mayo

import (
	"bytes"
	"errors"
	"testing"

	"MAYO-Signature/params"
)

func TestExpandPZeroSeedAnchor(t *testing.T) {
	// AES-128-CTR under the zero key starts with 66 e9 4b d4 ..., which
	// pins the canonical byte order: low nibble first, position-major.
	p := params.Mayo1()
	p1, _, err := expandP(p, make([]byte, p.PKSeedBytes))
	if err != nil {
		t.Fatalf("expandP: %v", err)
	}
	want := []byte{6, 6, 9, 14}
	for i, w := range want {
		if byte(p1[0][i]) != w {
			t.Fatalf("P1[0][%d] = %d, want %d", i, p1[0][i], w)
		}
	}
}

func TestExpandPDeterministic(t *testing.T) {
	p := params.Mayo1()
	seed := bytes.Repeat([]byte{0xa5}, p.PKSeedBytes)
	p1a, p2a, err := expandP(p, seed)
	if err != nil {
		t.Fatalf("expandP: %v", err)
	}
	p1b, p2b, err := expandP(p, seed)
	if err != nil {
		t.Fatalf("expandP: %v", err)
	}
	if len(p1a) != p.P1Positions() || len(p2a) != p.V()*p.O {
		t.Fatalf("batch sizes %d/%d", len(p1a), len(p2a))
	}
	for i := range p1a {
		for s := range p1a[i] {
			if p1a[i][s] != p1b[i][s] {
				t.Fatal("P1 expansion is not deterministic")
			}
		}
	}
	for i := range p2a {
		for s := range p2a[i] {
			if p2a[i][s] != p2b[i][s] {
				t.Fatal("P2 expansion is not deterministic")
			}
		}
	}

	seed[0] ^= 1
	p1c, _, err := expandP(p, seed)
	if err != nil {
		t.Fatalf("expandP: %v", err)
	}
	same := true
	for i := range p1a[0] {
		if p1a[0][i] != p1c[0][i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("flipping a seed bit left the first P1 position unchanged")
	}
}

func TestGenerateKeypairFromSeedDeterministic(t *testing.T) {
	p := params.Mayo1()
	seed := make([]byte, p.SKSeedBytes)
	pk1, sk1, err := GenerateKeypairFromSeed(p, seed)
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}
	pk2, sk2, err := GenerateKeypairFromSeed(p, seed)
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}
	if !bytes.Equal(pk1, pk2) || !bytes.Equal(sk1, sk2) {
		t.Fatal("same seed should reproduce the keypair bit for bit")
	}
	if len(pk1) != p.CPKBytes() || len(sk1) != p.CSKBytes() {
		t.Fatalf("key sizes %d/%d, want %d/%d", len(pk1), len(sk1), p.CPKBytes(), p.CSKBytes())
	}

	seed[0] = 1
	pk3, _, err := GenerateKeypairFromSeed(p, seed)
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}
	if bytes.Equal(pk1, pk3) {
		t.Fatal("different seeds should give different public keys")
	}
}

func TestExpandRejectsWrongLengths(t *testing.T) {
	p := params.Mayo1()
	if _, err := ExpandSecretKey(p, make([]byte, p.CSKBytes()-1)); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("short sk: %v", err)
	}
	if _, err := ExpandPublicKey(p, make([]byte, p.CPKBytes()+1)); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("long pk: %v", err)
	}
	if _, _, err := GenerateKeypairFromSeed(p, make([]byte, 7)); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("short seed: %v", err)
	}
}

func TestPackUnpackMVectors(t *testing.T) {
	p := params.Mayo2()
	seed := bytes.Repeat([]byte{3}, p.PKSeedBytes)
	p1, _, err := expandP(p, seed)
	if err != nil {
		t.Fatalf("expandP: %v", err)
	}
	packed := packMVectors(p1)
	back, err := unpackMVectors(packed, p.P1Positions(), p.M)
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	for i := range p1 {
		for s := range p1[i] {
			if p1[i][s] != back[i][s] {
				t.Fatalf("round trip mismatch at position %d slot %d", i, s)
			}
		}
	}
	if _, err := unpackMVectors(packed[:len(packed)-1], p.P1Positions(), p.M); err == nil {
		t.Fatal("truncated batch should fail")
	}
}
