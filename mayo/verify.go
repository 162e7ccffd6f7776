package mayo

import (
	"time"

	"MAYO-Signature/internal/gf16"
	"MAYO-Signature/params"
	"MAYO-Signature/prof"
)

// Verify checks sig over msg with a compact public key. It is pure: any
// malformed input, including wrong key or signature lengths, yields false,
// never an error.
func Verify(p params.Set, pk, msg, sig []byte) bool {
	if p.Validate() != nil {
		return false
	}
	epk, err := ExpandPublicKey(p, pk)
	if err != nil {
		return false
	}
	return VerifyExpanded(epk, msg, sig)
}

// VerifyExpanded checks sig over msg with a pre-expanded public key. All m
// output elements must match the target exactly.
func VerifyExpanded(epk *ExpandedPublicKey, msg, sig []byte) bool {
	defer prof.Track(time.Now(), "Mayo.Verify")
	p := epk.Params
	if len(sig) != p.SigBytes() {
		return false
	}
	salt := sig[len(sig)-p.SaltBytes:]
	sol, err := gf16.DecodeVector(sig[:len(sig)-p.SaltBytes], p.K*p.N)
	if err != nil {
		return false
	}
	digest := xof.Expand(p.DigestBytes, msg)
	t, err := deriveTarget(p, digest, salt)
	if err != nil {
		return false
	}

	v, o, k, m := p.V(), p.O, p.K, p.M
	av := make([]gf16.Vector, k) // vinegar parts
	bo := make([]gf16.Vector, k) // oil parts
	for i := 0; i < k; i++ {
		si := sol[i*p.N : (i+1)*p.N]
		av[i], bo[i] = si[:v], si[v:]
	}

	// Pair evaluations over the full map [P1 P2; 0 P3].
	u := make([][]gf16.MVector, k)
	for i := 0; i < k; i++ {
		u[i] = make([]gf16.MVector, k)
		uii := evalQuad(epk.P1, av[i], m)
		uii.AddInPlace(evalBilinear(epk.P2, av[i], bo[i], m, o))
		uii.AddInPlace(evalQuad(epk.P3, bo[i], m))
		u[i][i] = uii
		for j := i + 1; j < k; j++ {
			uij := evalPolar(epk.P1, av[i], av[j], m)
			uij.AddInPlace(evalBilinear(epk.P2, av[i], bo[j], m, o))
			uij.AddInPlace(evalBilinear(epk.P2, av[j], bo[i], m, o))
			uij.AddInPlace(evalPolar(epk.P3, bo[i], bo[j], m))
			u[i][j] = uij
		}
	}

	y := hornerFold(u, k, tailElems(p), m)
	for i := range y {
		if y[i] != t[i] {
			return false
		}
	}
	return true
}
