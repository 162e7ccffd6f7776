package params

import "testing"

func TestAllSetsValidate(t *testing.T) {
	for _, p := range All() {
		if err := p.Validate(); err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
	}
}

func TestPublishedSizes(t *testing.T) {
	cases := []struct {
		set      Set
		sig, cpk int
	}{
		{Mayo1(), 454, 1420},
		{Mayo2(), 186, 4912},
		{Mayo3(), 681, 2986},
		{Mayo5(), 964, 5554},
	}
	for _, c := range cases {
		if got := c.set.SigBytes(); got != c.sig {
			t.Fatalf("%s: signature size %d, want %d", c.set.Name, got, c.sig)
		}
		if got := c.set.CPKBytes(); got != c.cpk {
			t.Fatalf("%s: compact pk size %d, want %d", c.set.Name, got, c.cpk)
		}
		if got := c.set.CSKBytes(); got != c.set.SKSeedBytes {
			t.Fatalf("%s: compact sk size %d", c.set.Name, got)
		}
	}
}

func TestDerivedSizesMayo1(t *testing.T) {
	p := Mayo1()
	if p.V() != 78 {
		t.Fatalf("v = %d, want 78", p.V())
	}
	if p.P1Bytes() != 78*3081/2 {
		t.Fatalf("p1 bytes = %d", p.P1Bytes())
	}
	if p.P2Bytes() != 78*78*8/2 {
		t.Fatalf("p2 bytes = %d", p.P2Bytes())
	}
	if p.LBytes() != p.P2Bytes() {
		t.Fatalf("l bytes = %d, want %d", p.LBytes(), p.P2Bytes())
	}
	if p.RBytes() != 40 {
		t.Fatalf("r bytes = %d, want 40", p.RBytes())
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"MAYO_1", "mayo-1", "MAYO1", "mayo1"} {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if p.Name != "MAYO_1" {
			t.Fatalf("ByName(%q) resolved %s", name, p.Name)
		}
	}
	if _, err := ByName("MAYO_4"); err == nil {
		t.Fatal("unknown level should fail")
	}
}

func TestValidateRejectsBrokenSets(t *testing.T) {
	p := Mayo1()
	p.M = 77
	if err := p.Validate(); err == nil {
		t.Fatal("odd m should fail")
	}
	p = Mayo1()
	p.O = p.N
	if err := p.Validate(); err == nil {
		t.Fatal("o >= n should fail")
	}
	p = Mayo1()
	p.K = 1
	if err := p.Validate(); err == nil {
		t.Fatal("k*o < m should fail")
	}
	p = Mayo1()
	p.PKSeedBytes = 24
	if err := p.Validate(); err == nil {
		t.Fatal("non AES-128 pk seed should fail")
	}
}
