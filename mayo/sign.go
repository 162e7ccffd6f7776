package mayo

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"MAYO-Signature/internal/gf16"
	"MAYO-Signature/params"
	"MAYO-Signature/prof"
)

// Sign signs msg with the compact secret key, drawing the signature salt
// from crypto/rand.
func Sign(p params.Set, sk, msg []byte) ([]byte, error) {
	return SignWith(p, sk, msg, rand.Reader)
}

// SignWith is Sign with an explicit salt source. Everything after the salt
// draw is deterministic, so a fixed rng reproduces the signature exactly.
func SignWith(p params.Set, sk, msg []byte, rng io.Reader) ([]byte, error) {
	esk, err := ExpandSecretKey(p, sk)
	if err != nil {
		return nil, err
	}
	return SignExpanded(esk, msg, rng)
}

// SignExpanded signs msg with a pre-expanded secret key. The salt is read
// from rng once per signature; per-attempt vinegar and free-variable
// material is derived from digest, salt and the attempt counter.
func SignExpanded(esk *ExpandedSecretKey, msg []byte, rng io.Reader) ([]byte, error) {
	defer prof.Track(time.Now(), "Mayo.Sign")
	p := esk.Params
	digest := xof.Expand(p.DigestBytes, msg)
	salt := make([]byte, p.SaltBytes)
	if _, err := io.ReadFull(rng, salt); err != nil {
		return nil, fmt.Errorf("mayo: signature salt: %w", err)
	}
	t, err := deriveTarget(p, digest, salt)
	if err != nil {
		return nil, err
	}

	v, o, k, m := p.V(), p.O, p.K, p.M
	tail := tailElems(p)
	for ctr := 0; ctr < MaxSigningAttempts; ctr++ {
		vins, free, err := deriveAttempt(p, digest, salt, byte(ctr))
		if err != nil {
			return nil, err
		}

		// M_i = v_i^T L, kept as o column m-vectors per input.
		cols := make([][]gf16.MVector, k)
		for i := 0; i < k; i++ {
			ci := make([]gf16.MVector, o)
			for j := range ci {
				ci[j] = gf16.NewMVector(m)
			}
			for r := 0; r < v; r++ {
				e := vins[i][r]
				if e == 0 {
					continue
				}
				for j := 0; j < o; j++ {
					ci[j].MulAddInPlace(e, esk.L[r*o+j])
				}
			}
			cols[i] = ci
		}

		// Vinegar-only evaluations of P1 per pair.
		u := make([][]gf16.MVector, k)
		for i := 0; i < k; i++ {
			u[i] = make([]gf16.MVector, k)
			u[i][i] = evalQuad(esk.P1, vins[i], m)
			for j := i + 1; j < k; j++ {
				u[i][j] = evalPolar(esk.P1, vins[i], vins[j], m)
			}
		}

		// Right-hand side y = t + sum of z-weighted vinegar parts, and the
		// system matrix assembled with the matching Horner traversal.
		y := t.Clone()
		y.AddInPlace(hornerFold(u, k, tail, m))

		acols := make([]gf16.MVector, k*o)
		for i := range acols {
			acols[i] = gf16.NewMVector(m)
		}
		for i := k - 1; i >= 0; i-- {
			for j := i; j < k; j++ {
				for _, col := range acols {
					col.MulByZ(tail)
				}
				for jj := 0; jj < o; jj++ {
					acols[i*o+jj].AddInPlace(cols[j][jj])
					if i != j {
						acols[j*o+jj].AddInPlace(cols[i][jj])
					}
				}
			}
		}
		a := gf16.NewMatrix(m, k*o)
		for cidx, col := range acols {
			for r := 0; r < m; r++ {
				if col[r] != 0 {
					a.Set(r, cidx, col[r])
				}
			}
		}

		rank := gf16.EchelonizeAugmented(a, gf16.Vector(y))
		x, err := gf16.SolveFromEchelonWith(a, gf16.Vector(y), free)
		if err != nil {
			tracef("mayo: attempt %d: inconsistent system (rank %d), retrying\n", ctr, rank)
			continue
		}
		tracef("mayo: attempt %d: solved (rank %d)\n", ctr, rank)
		prof.Count("Mayo.SignAttempts", int64(ctr)+1)

		// s_i = (v_i + O x_i) || x_i, all k inputs packed, salt appended.
		s := make(gf16.Vector, 0, k*p.N)
		for i := 0; i < k; i++ {
			xi := x[i*o : (i+1)*o]
			vi := esk.O.MulVec(xi)
			for r := 0; r < v; r++ {
				vi[r] ^= vins[i][r]
			}
			s = append(s, vi...)
			s = append(s, xi...)
		}
		sig := make([]byte, 0, p.SigBytes())
		sig = append(sig, s.Encode()...)
		sig = append(sig, salt...)
		return sig, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrSigningFailed, MaxSigningAttempts)
}

// deriveTarget hashes digest and salt into the m-element target vector.
func deriveTarget(p params.Set, digest, salt []byte) (gf16.MVector, error) {
	raw := xof.Expand(p.MBytes(), digest, salt)
	vec, err := gf16.DecodeVector(raw, p.M)
	if err != nil {
		return nil, fmt.Errorf("mayo: target derivation: %w", err)
	}
	return gf16.MVector(vec), nil
}

// deriveAttempt expands the per-attempt randomness: k vinegar vectors
// followed by the k*o free-variable elements.
func deriveAttempt(p params.Set, digest, salt []byte, ctr byte) ([]gf16.Vector, gf16.Vector, error) {
	v, k := p.V(), p.K
	raw := xof.Expand(k*p.VBytes()+p.RBytes(), digest, salt, []byte{ctr})
	vins := make([]gf16.Vector, k)
	for i := range vins {
		vi, err := gf16.DecodeVector(raw[i*p.VBytes():(i+1)*p.VBytes()], v)
		if err != nil {
			return nil, nil, fmt.Errorf("mayo: vinegar derivation: %w", err)
		}
		vins[i] = vi
	}
	free, err := gf16.DecodeVector(raw[k*p.VBytes():], k*p.O)
	if err != nil {
		return nil, nil, fmt.Errorf("mayo: free variable derivation: %w", err)
	}
	return vins, free, nil
}
