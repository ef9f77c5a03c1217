package ml

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSimpleEntropy(t *testing.T) {
	var got, err = SimpleEntropy(4, 10)
	if err != nil {
		t.Fatal(err)
	}
	var want = (-4*math.Log2(4.0/14) - 10*math.Log2(10.0/14)) / 14
	if !scalar.EqualWithinAbs(got, want, tolerance) {
		t.Errorf("SimpleEntropy(4, 10) = %v, want %v", got, want)
	}
}

func TestSimpleEntropyEqualSplit(t *testing.T) {
	for _, m := range []float64{0.5, 1, 4, 7, 1000} {
		var got, err = SimpleEntropy(m, m)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(got, 1, tolerance) {
			t.Errorf("SimpleEntropy(%v, %v) = %v, want 1", m, m, got)
		}
	}
}

func TestEntropy(t *testing.T) {
	var got, err = Entropy([]float64{8, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	var want = -8.0/13*math.Log2(8.0/13) - 3.0/13*math.Log2(3.0/13) - 2.0/13*math.Log2(2.0/13)
	if !scalar.EqualWithinAbs(got, want, tolerance) {
		t.Errorf("Entropy([8 3 2]) = %v, want %v", got, want)
	}
}

func TestEntropyMatchesSimpleEntropy(t *testing.T) {
	var simple, err = SimpleEntropy(4, 10)
	if err != nil {
		t.Fatal(err)
	}
	entropy, err := Entropy([]float64{4, 10})
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(simple, entropy, tolerance) {
		t.Errorf("SimpleEntropy = %v, Entropy = %v", simple, entropy)
	}
}

func TestEntropySingleClass(t *testing.T) {
	var got, err = Entropy([]float64{5})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Entropy([5]) = %v, want 0", got)
	}
}

func TestEntropyErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (float64, error)
		want error
	}{
		{"simple zero m", func() (float64, error) { return SimpleEntropy(0, 3) }, ErrDomain},
		{"simple zero n", func() (float64, error) { return SimpleEntropy(3, 0) }, ErrDomain},
		{"simple negative", func() (float64, error) { return SimpleEntropy(-1, 3) }, ErrDomain},
		{"simple nan", func() (float64, error) { return SimpleEntropy(math.NaN(), 3) }, ErrDomain},
		{"empty", func() (float64, error) { return Entropy(nil) }, ErrShape},
		{"zero count", func() (float64, error) { return Entropy([]float64{8, 0, 2}) }, ErrDomain},
		{"negative count", func() (float64, error) { return Entropy([]float64{8, -3}) }, ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _, err = tt.fn()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
