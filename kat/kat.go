package kat

// Package kat parses NIST Known-Answer-Test response files and replays them
// against the scheme: the keypair is regenerated from the recorded compact
// secret key and compared, and the recorded signed message is verified. The
// signed message follows the NIST layout, signature first, message appended.

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"MAYO-Signature/mayo"
	"MAYO-Signature/params"
)

// Vector is one record of a response file.
type Vector struct {
	Count     int
	Seed      []byte // DRBG seed, carried but not replayed
	MsgLen    int
	Msg       []byte
	PublicKey []byte
	SecretKey []byte
	SMLen     int
	SM        []byte
}

// ParseFile reads and parses a .rsp file.
func ParseFile(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kat: open: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads blank-line separated `name = value` records. Lines starting
// with # are headers and are skipped. A record begins at its count line.
func Parse(r io.Reader) ([]Vector, error) {
	var (
		out  []Vector
		cur  *Vector
		line int
	)
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<22)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			flush()
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}
		name, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("kat: line %d: no assignment in %q", line, text)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "count" {
			flush()
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("kat: line %d: count: %w", line, err)
			}
			cur = &Vector{Count: n}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("kat: line %d: field %q before any count", line, name)
		}
		if err := cur.setField(name, value); err != nil {
			return nil, fmt.Errorf("kat: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("kat: scan: %w", err)
	}
	flush()
	return out, nil
}

func (v *Vector) setField(name, value string) error {
	switch name {
	case "seed", "msg", "pk", "sk", "sm":
		data, err := hex.DecodeString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		switch name {
		case "seed":
			v.Seed = data
		case "msg":
			v.Msg = data
		case "pk":
			v.PublicKey = data
		case "sk":
			v.SecretKey = data
		case "sm":
			v.SM = data
		}
	case "mlen", "smlen":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if name == "mlen" {
			v.MsgLen = n
		} else {
			v.SMLen = n
		}
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// Run replays every vector: keypair reproduction from the recorded secret
// key, signed-message layout, and signature verification. The first failing
// vector aborts the run.
func Run(p params.Set, vectors []Vector) error {
	for _, v := range vectors {
		if v.MsgLen != len(v.Msg) {
			return fmt.Errorf("kat: count %d: mlen %d does not match msg length %d", v.Count, v.MsgLen, len(v.Msg))
		}
		if v.SMLen != len(v.SM) {
			return fmt.Errorf("kat: count %d: smlen %d does not match sm length %d", v.Count, v.SMLen, len(v.SM))
		}
		pk, _, err := mayo.GenerateKeypairFromSeed(p, v.SecretKey)
		if err != nil {
			return fmt.Errorf("kat: count %d: keypair: %w", v.Count, err)
		}
		if !bytes.Equal(pk, v.PublicKey) {
			return fmt.Errorf("kat: count %d: regenerated public key mismatch", v.Count)
		}
		if len(v.SM) != p.SigBytes()+len(v.Msg) {
			return fmt.Errorf("kat: count %d: sm is %d bytes, want %d", v.Count, len(v.SM), p.SigBytes()+len(v.Msg))
		}
		sig := v.SM[:p.SigBytes()]
		if !bytes.Equal(v.SM[p.SigBytes():], v.Msg) {
			return fmt.Errorf("kat: count %d: sm does not embed the message", v.Count)
		}
		if !mayo.Verify(p, v.PublicKey, v.Msg, sig) {
			return fmt.Errorf("kat: count %d: signature does not verify", v.Count)
		}
	}
	return nil
}
