package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1", 1, true},
		{"1/2", 0.5, true},
		{"1 1/2", 1.5, true},
		{"2.5", 2.5, true},
		{".5", 0.5, true},
		{"2-3", 2, true},
		{"2 - 3", 2, true},
		{"2 to 3", 2, true},
		{"1 1/2-2", 1.5, true},
		{"½", 0.5, true},
		{"1½", 1.5, true},
		{"  3  ", 3, true},
		{"a few", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"1/0", 0, false},
		{"2-", 0, false},
		{"2 cups", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseQuantity(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConsumeQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		quantity string
		rest     string
		ok       bool
	}{
		{"2 cups flour", "2", " cups flour", true},
		{"1  1/2 cups flour", "1 1/2", " cups flour", true},
		{"2 to 3 cloves", "2-3", " cloves", true},
		{"2 - 3 cloves", "2-3", " cloves", true},
		{"1.5 lb beef", "1.5", " lb beef", true},
		{"3 tomatoes", "3", " tomatoes", true},
		{"salt", "", "salt", false},
	}

	for _, tt := range tests {
		q, rest, ok := consumeQuantity(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.quantity, q, tt.in)
		assert.Equal(t, tt.rest, rest, tt.in)
	}
}

func TestFormatQuantity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2", FormatQuantity(2))
	assert.Equal(t, "1.5", FormatQuantity(1.5))
	assert.Equal(t, "0.33", FormatQuantity(1.0/3))
	assert.Equal(t, "0", FormatQuantity(0))
}
