package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"MAYO-Signature/kat"
	"MAYO-Signature/keys"
	"MAYO-Signature/mayo"
	"MAYO-Signature/params"
	"MAYO-Signature/prof"
)

func usage() {
	fmt.Println(`usage: mayocli <gen|sign|verify|kat> [options]

Subcommands:
  gen      Generate a compact keypair and write <dir>/keypair.json
           Flags:
             -level <name>   parameter set: MAYO_1|MAYO_2|MAYO_3|MAYO_5 (default: MAYO_1)
             -dir   <path>   key directory (default: mayo_keys)
             -seed  <hex>    derive the keypair from a fixed sk seed instead
                             of crypto/rand (testing only)

  sign     Sign a message with <dir>/keypair.json, write <dir>/signature.json
           Flags:
             -m    <string>  message to sign (required)
             -dir  <path>    key directory (default: mayo_keys)
             -v              print timing and attempt telemetry

  verify   Verify <dir>/signature.json against <dir>/keypair.json
           Flags:
             -dir  <path>    key directory (default: mayo_keys)

  kat      Replay a NIST .rsp response file
           Flags:
             -file  <path>   response file (required)
             -level <name>   parameter set (default: MAYO_1)`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "sign":
		runSign(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	case "kat":
		runKAT(os.Args[2:])
	default:
		usage()
	}
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	level := fs.String("level", "MAYO_1", "parameter set name")
	dir := fs.String("dir", keys.DefaultDir, "key directory")
	seedHex := fs.String("seed", "", "hex sk seed (testing only)")
	fs.Parse(args)

	p, err := params.ByName(*level)
	if err != nil {
		log.Fatalf("gen: %v", err)
	}
	var pk, sk []byte
	if *seedHex != "" {
		seed, derr := hex.DecodeString(*seedHex)
		if derr != nil {
			log.Fatalf("gen: seed: %v", derr)
		}
		pk, sk, err = mayo.GenerateKeypairFromSeed(p, seed)
	} else {
		pk, sk, err = mayo.GenerateKeypair(p)
	}
	if err != nil {
		log.Fatalf("gen: %v", err)
	}
	if err := keys.SaveKeypair(*dir, keys.NewKeypair(p.Name, pk, sk)); err != nil {
		log.Fatalf("gen: save: %v", err)
	}
	fmt.Printf("gen: level=%s pk=%d bytes sk=%d bytes\n", p.Name, len(pk), len(sk))
	fmt.Printf("keys written to %s\n", filepath.Join(*dir, "keypair.json"))
}

func runSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	msg := fs.String("m", "", "message string")
	dir := fs.String("dir", keys.DefaultDir, "key directory")
	verbose := fs.Bool("v", false, "verbose telemetry")
	fs.Parse(args)
	if *msg == "" {
		log.Fatal("sign: -m is required")
	}

	kp, err := keys.LoadKeypair(*dir)
	if err != nil {
		log.Fatalf("sign: load keypair: %v", err)
	}
	p, err := params.ByName(kp.Level)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	_, sk, err := kp.Material()
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	sig, err := mayo.Sign(p, sk, []byte(*msg))
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	if err := keys.SaveSignature(*dir, keys.NewSignature(p.Name, []byte(*msg), sig)); err != nil {
		log.Fatalf("sign: save: %v", err)
	}
	fmt.Printf("sign: level=%s signature=%d bytes\n", p.Name, len(sig))
	if *verbose {
		for name, n := range prof.CountersAndReset() {
			fmt.Printf("sign: %s=%d\n", name, n)
		}
		for _, e := range prof.SnapshotAndReset() {
			fmt.Printf("sign: %s took %s\n", e.Label, e.Dur)
		}
	}
	fmt.Printf("signature written to %s\n", filepath.Join(*dir, "signature.json"))
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	dir := fs.String("dir", keys.DefaultDir, "key directory")
	fs.Parse(args)

	kp, err := keys.LoadKeypair(*dir)
	if err != nil {
		log.Fatalf("verify: load keypair: %v", err)
	}
	bundle, err := keys.LoadSignature(*dir)
	if err != nil {
		log.Fatalf("verify: load signature: %v", err)
	}
	if kp.Level != bundle.Level {
		log.Fatalf("verify: keypair level %s does not match signature level %s", kp.Level, bundle.Level)
	}
	p, err := params.ByName(bundle.Level)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	pk, _, err := kp.Material()
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	msg, sig, err := bundle.Material()
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	if !mayo.Verify(p, pk, msg, sig) {
		log.Fatal("verify: signature is INVALID")
	}
	fmt.Println("verify: signature is valid")
}

func runKAT(args []string) {
	fs := flag.NewFlagSet("kat", flag.ExitOnError)
	file := fs.String("file", "", ".rsp response file")
	level := fs.String("level", "MAYO_1", "parameter set name")
	fs.Parse(args)
	if *file == "" {
		log.Fatal("kat: -file is required")
	}

	p, err := params.ByName(*level)
	if err != nil {
		log.Fatalf("kat: %v", err)
	}
	vecs, err := kat.ParseFile(*file)
	if err != nil {
		log.Fatalf("kat: %v", err)
	}
	if len(vecs) == 0 {
		log.Fatalf("kat: %s holds no vectors", *file)
	}
	if err := kat.Run(p, vecs); err != nil {
		log.Fatalf("kat: %v", err)
	}
	fmt.Printf("kat: %d vectors verified (%s)\n", len(vecs), p.Name)
}
