package icon

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"home", "", "IconHome"},
		{"Home", "", "IconHome"},
		{"IconHome", "", "IconHome"},
		{"chevronDown", "", "IconChevronDown"},
		{"x", "Icon", "IconX"},
		{"", "", ""},
		{"élan", "", "IconÉlan"},
		{"home", "Tb", "TbHome"},
		{"TbHome", "Tb", "TbHome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.name, tt.prefix); got != tt.want {
				t.Errorf("Canonical(%q, %q) = %q, want %q", tt.name, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	for _, n := range []string{"home", "IconHome", "a", "Icon", "iconHome", "123", "élan", "arrow-left"} {
		once := Canonical(n, DefaultPrefix)
		if twice := Canonical(once, DefaultPrefix); twice != once {
			t.Errorf("Canonical not idempotent for %q: %q then %q", n, once, twice)
		}
	}
}
