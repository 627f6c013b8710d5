package rsa

import (
	"math/big"
	weak "math/rand"
	"strings"
	"testing"
	"time"
)

type stepRecorder struct {
	steps []string
}

func (r *stepRecorder) Step(s string) { r.steps = append(r.steps, s) }

func (r *stepRecorder) contains(substr string) bool {
	for _, s := range r.steps {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestExtendedGCDNarration(t *testing.T) {
	rec := new(stepRecorder)
	g, inv := egcd(big.NewInt(3), big.NewInt(11), rec)
	if g.Int64() != 1 || inv.Int64() != 4 {
		t.Fatalf("egcd(3, 11) == (%v, %v), want (1, 4)", g, inv)
	}
	for _, want := range []string{
		"remainder sequence: [11 3 2 1]",
		"1 = 1 * 3 - 1 * 2",
		"1 = -1 * 11 + 4 * 3",
		"inverse of 3 mod 11 = 4",
	} {
		if !rec.contains(want) {
			t.Errorf("narration %q missing from %q", want, rec.steps)
		}
	}
}

func TestKeyGeneratorNarration(t *testing.T) {
	weak := weak.New(weak.NewSource(time.Now().UnixNano()))
	rec := new(stepRecorder)
	kg := &KeyGenerator{Rand: weak, Observer: rec}
	pair, err := kg.GenerateKeys(5)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"prime found: ",
		"p = ",
		"N = pq = " + pair.N.String(),
		"phi = ",
		"e = " + pair.E.String(),
		"d = " + pair.D.String(),
	} {
		if !rec.contains(want) {
			t.Errorf("narration %q missing", want)
		}
	}
}
