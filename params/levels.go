package params

import (
	"fmt"
	"strings"
)

// Mayo1 returns the level 1 parameter set (n=86, m=78, o=8, k=10).
func Mayo1() Set {
	return Set{
		Name:        "MAYO_1",
		N:           86,
		M:           78,
		O:           8,
		K:           10,
		SaltBytes:   24,
		DigestBytes: 32,
		SKSeedBytes: 24,
		PKSeedBytes: 16,
		Tail:        [4]uint8{8, 1, 1, 0},
	}
}

// Mayo2 returns the level 1 parameter set with a larger oil space and a
// smaller whipping factor (n=81, m=64, o=17, k=4), trading public key size
// for the smallest signatures.
func Mayo2() Set {
	return Set{
		Name:        "MAYO_2",
		N:           81,
		M:           64,
		O:           17,
		K:           4,
		SaltBytes:   24,
		DigestBytes: 32,
		SKSeedBytes: 24,
		PKSeedBytes: 16,
		Tail:        [4]uint8{8, 0, 2, 8},
	}
}

// Mayo3 returns the level 3 parameter set (n=118, m=108, o=10, k=11).
func Mayo3() Set {
	return Set{
		Name:        "MAYO_3",
		N:           118,
		M:           108,
		O:           10,
		K:           11,
		SaltBytes:   32,
		DigestBytes: 48,
		SKSeedBytes: 32,
		PKSeedBytes: 16,
		Tail:        [4]uint8{8, 0, 1, 7},
	}
}

// Mayo5 returns the level 5 parameter set (n=154, m=142, o=12, k=12).
func Mayo5() Set {
	return Set{
		Name:        "MAYO_5",
		N:           154,
		M:           142,
		O:           12,
		K:           12,
		SaltBytes:   40,
		DigestBytes: 64,
		SKSeedBytes: 40,
		PKSeedBytes: 16,
		Tail:        [4]uint8{4, 0, 8, 1},
	}
}

// All returns the four supported parameter sets in level order.
func All() []Set {
	return []Set{Mayo1(), Mayo2(), Mayo3(), Mayo5()}
}

// ByName resolves a level name to its parameter set. Names are matched
// case-insensitively with separators stripped, so "MAYO_1", "mayo-1" and
// "MAYO1" all resolve to the same set.
func ByName(name string) (Set, error) {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, "-", "")
	for _, p := range All() {
		canon := strings.ReplaceAll(p.Name, "_", "")
		if key == canon {
			return p, nil
		}
	}
	return Set{}, fmt.Errorf("%w: unknown level %q", ErrParameter, name)
}
