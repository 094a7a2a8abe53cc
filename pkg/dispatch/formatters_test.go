package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		f    Formatter
		in   any
		want string
	}{
		{"percent", Percent, 0.125, "12.5%"},
		{"percent whole", Percent, 1, "100%"},
		{"percent text", Percent, "n/a", "n/a"},
		{"currency", Currency, 1234.5, "$1,234.50"},
		{"currency negative", Currency, -3, "-$3.00"},
		{"currency string", Currency, "12", "$12.00"},
		{"compact small", Compact, 999, "999"},
		{"compact thousands", Compact, 1234, "1.2K"},
		{"compact millions", Compact, 2_000_000, "2M"},
		{"compact negative", Compact, -1_500_000_000.0, "-1.5B"},
		{"identity float", IdentityFormat, 2.50, "2.5"},
		{"identity nil", IdentityFormat, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f(tt.in))
		})
	}
}

func TestNamedFormatters(t *testing.T) {
	assert.Equal(t, []string{"compact", "currency", "identity", "percent"}, FormatterNames())
	f, ok := Named("percent")
	assert.True(t, ok)
	assert.Equal(t, "50%", f(0.5))
	_, ok = Named("nope")
	assert.False(t, ok)
}
