package core_test

import (
	"testing"

	"github.com/aretw0/track/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want core.Value
	}{
		{"12kg", core.Quantity{Magnitude: 12, Unit: "kg"}},
		{"ran", core.Log{Text: "ran"}},
		{"-3.5", core.Quantity{Magnitude: -3.5, Unit: ""}},
		{"+2 laps", core.Quantity{Magnitude: 2, Unit: " laps"}},
		{".5l", core.Quantity{Magnitude: 0.5, Unit: "l"}},
		{"  5km  ", core.Quantity{Magnitude: 5, Unit: "km"}},
		{"10", core.Quantity{Magnitude: 10, Unit: ""}},
		{"-abc", core.Log{Text: "-abc"}},
		{"#1 priority", core.Log{Text: "#1 priority"}},
		{"read a book", core.Log{Text: "read a book"}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := core.Classify(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_MalformedQuantity(t *testing.T) {
	for _, in := range []string{"12.34.56abc", "1..2", "-0.0.1 kg"} {
		_, err := core.Classify(in)
		assert.ErrorIs(t, err, core.ErrMalformedQuantity, "input %q", in)
	}

	// exponents are not part of the prefix, "e999x" is the unit
	v, err := core.Classify("1e999x")
	require.NoError(t, err)
	assert.Equal(t, core.Quantity{Magnitude: 1, Unit: "e999x"}, v)
}

func TestClassify_Totality(t *testing.T) {
	inputs := []string{"x", "0", "-", "+", ".", "-.", "1.", "..1", "3 apples", "Coding", "∞"}
	for _, in := range inputs {
		v, err := core.Classify(in)
		if err != nil {
			assert.ErrorIs(t, err, core.ErrMalformedQuantity)
			continue
		}
		switch v.(type) {
		case core.Log, core.Quantity:
		default:
			t.Fatalf("unexpected variant %T for %q", v, in)
		}
	}
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "12kg", core.Quantity{Magnitude: 12, Unit: "kg"}.String())
	assert.Equal(t, "0.1", core.Quantity{Magnitude: 0.1}.String())
	assert.Equal(t, "-3.5", core.Quantity{Magnitude: -3.5}.String())
	assert.Equal(t, "100000000000000000000m", core.Quantity{Magnitude: 1e20, Unit: "m"}.String())
}
