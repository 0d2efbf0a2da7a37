package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tcs", "TCS.NS"},
		{"  infy  ", "INFY.NS"},
		{"RELIANCE.NS", "RELIANCE.NS"},
		{"reliance.ns", "RELIANCE.NS"},
		{"500325.BO", "500325.BO"},
		{"500325.bo", "500325.BO"},
		{"^NSEI", "^NSEI"},
		{"^nsei", "^NSEI"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSymbol(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeSymbolIdempotent(t *testing.T) {
	inputs := []string{"tcs", "RELIANCE.NS", "500325.BO", "^NSEBANK", " hdfcbank "}
	for _, in := range inputs {
		once := NormalizeSymbol(in)
		assert.Equal(t, once, NormalizeSymbol(once), "input %q", in)
	}
}
