package mayo

import (
	"fmt"
	"time"

	"MAYO-Signature/internal/gf16"
	"MAYO-Signature/params"
	"MAYO-Signature/prf"
	"MAYO-Signature/prof"
)

// xof is the extendable-output function all seed, digest and target
// derivation goes through.
var xof prf.XOF = prf.Shake256XOF{}

// ExpandedSecretKey carries the secret matrices used by signing: the oil
// matrix O and the coefficient batches P1 and L = (P1+P1^T)O + P2.
type ExpandedSecretKey struct {
	Params params.Set
	O      *gf16.Matrix   // v x o oil matrix
	P1     []gf16.MVector // one m-vector per upper-triangle position, v x v
	L      []gf16.MVector // one m-vector per dense v x o position
}

// ExpandedPublicKey carries the full public map [P1 P2; 0 P3] used by
// verification.
type ExpandedPublicKey struct {
	Params params.Set
	P1     []gf16.MVector // upper-triangle positions, v x v
	P2     []gf16.MVector // dense v x o positions
	P3     []gf16.MVector // upper-triangle positions, o x o
}

// ExpandSecretKey expands a compact secret key into the signing matrices.
func ExpandSecretKey(p params.Set, sk []byte) (*ExpandedSecretKey, error) {
	defer prof.Track(time.Now(), "Mayo.ExpandSecretKey")
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(sk) != p.CSKBytes() {
		return nil, fmt.Errorf("%w: sk is %d bytes, want %d", ErrInvalidKeyLength, len(sk), p.CSKBytes())
	}
	pkSeed, oil, err := expandSeed(p, sk)
	if err != nil {
		return nil, err
	}
	p1, p2, err := expandP(p, pkSeed)
	if err != nil {
		return nil, err
	}
	return &ExpandedSecretKey{Params: p, O: oil, P1: p1, L: computeL(p, oil, p1, p2)}, nil
}

// ExpandPublicKey expands a compact public key into the full public map.
func ExpandPublicKey(p params.Set, pk []byte) (*ExpandedPublicKey, error) {
	defer prof.Track(time.Now(), "Mayo.ExpandPublicKey")
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(pk) != p.CPKBytes() {
		return nil, fmt.Errorf("%w: pk is %d bytes, want %d", ErrInvalidKeyLength, len(pk), p.CPKBytes())
	}
	p1, p2, err := expandP(p, pk[:p.PKSeedBytes])
	if err != nil {
		return nil, err
	}
	p3, err := unpackMVectors(pk[p.PKSeedBytes:], p.P3Positions(), p.M)
	if err != nil {
		return nil, fmt.Errorf("%w: P3: %v", ErrInvalidKeyLength, err)
	}
	return &ExpandedPublicKey{Params: p, P1: p1, P2: p2, P3: p3}, nil
}

// expandSeed derives the public-map seed and the oil matrix O from the
// compact secret key seed.
func expandSeed(p params.Set, seed []byte) ([]byte, *gf16.Matrix, error) {
	s := xof.Expand(p.PKSeedBytes+p.OBytes(), seed)
	v, o := p.V(), p.O
	elems, err := gf16.DecodeVector(s[p.PKSeedBytes:], v*o)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: oil matrix: %v", ErrKeyGeneration, err)
	}
	oil := gf16.NewMatrix(v, o)
	for r := 0; r < v; r++ {
		copy(oil.Row(r), elems[r*o:(r+1)*o])
	}
	return s[:p.PKSeedBytes], oil, nil
}

// expandP regenerates the P1 and P2 coefficient batches from the public-map
// seed. The AES-128-CTR keystream order is normative: P1's triangular
// positions first, then P2's dense positions, m nibbles per position.
func expandP(p params.Set, pkSeed []byte) ([]gf16.MVector, []gf16.MVector, error) {
	stream, err := prf.KeystreamAES128CTR(pkSeed, p.P1Bytes()+p.P2Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	p1, err := unpackMVectors(stream[:p.P1Bytes()], p.P1Positions(), p.M)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: P1: %v", ErrKeyGeneration, err)
	}
	p2, err := unpackMVectors(stream[p.P1Bytes():], p.V()*p.O, p.M)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: P2: %v", ErrKeyGeneration, err)
	}
	return p1, p2, nil
}

// unpackMVectors splits packed coefficient bytes into count m-vectors, one
// per matrix position.
func unpackMVectors(data []byte, count, m int) ([]gf16.MVector, error) {
	size := (m + 1) / 2
	if len(data) != count*size {
		return nil, fmt.Errorf("coefficient batch is %d bytes, want %d", len(data), count*size)
	}
	out := make([]gf16.MVector, count)
	for i := range out {
		vec, err := gf16.DecodeVector(data[i*size:(i+1)*size], m)
		if err != nil {
			return nil, err
		}
		out[i] = gf16.MVector(vec)
	}
	return out, nil
}

// packMVectors packs m-vectors back into position-major bytes.
func packMVectors(vs []gf16.MVector) []byte {
	if len(vs) == 0 {
		return nil
	}
	size := (len(vs[0]) + 1) / 2
	out := make([]byte, 0, len(vs)*size)
	for _, v := range vs {
		out = append(out, gf16.Vector(v).Encode()...)
	}
	return out
}
