package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"

	"MAYO-Signature/keys"
	"MAYO-Signature/mayo"
	"MAYO-Signature/params"
)

// keycheck re-derives the public key from a stored secret seed and
// cross-checks any stored signature against it.
func main() {
	dir := flag.String("dir", keys.DefaultDir, "directory holding keypair.json and signature.json")
	flag.Parse()

	kp, err := keys.LoadKeypair(*dir)
	if err != nil {
		log.Fatalf("load keypair: %v", err)
	}
	p, err := params.ByName(kp.Level)
	if err != nil {
		log.Fatalf("level %q: %v", kp.Level, err)
	}
	pk, sk, err := kp.Material()
	if err != nil {
		log.Fatalf("decode keypair: %v", err)
	}

	rePK, reSK, err := mayo.GenerateKeypairFromSeed(p, sk)
	if err != nil {
		log.Fatalf("rederive keypair: %v", err)
	}
	if !bytes.Equal(reSK, sk) {
		log.Fatal("keycheck: secret seed changed under rederivation")
	}
	if !bytes.Equal(rePK, pk) {
		log.Fatal("keycheck: stored public key does not match the secret seed")
	}
	fmt.Printf("%s keypair ok: public key (%d bytes) matches secret seed\n", p.Name, len(pk))

	sig, err := keys.LoadSignature(*dir)
	if err != nil {
		fmt.Println("no stored signature to check")
		return
	}
	if sig.Level != kp.Level {
		log.Fatalf("keycheck: signature level %q does not match keypair level %q", sig.Level, kp.Level)
	}
	msg, raw, err := sig.Material()
	if err != nil {
		log.Fatalf("decode signature: %v", err)
	}
	if !mayo.Verify(p, pk, msg, raw) {
		log.Fatal("keycheck: stored signature is INVALID for this keypair")
	}
	fmt.Printf("stored signature ok: %d bytes over a %d byte message\n", len(raw), len(msg))
}
