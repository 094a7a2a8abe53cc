package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"unknown tag", "E201", "Unknown widget tag", CategoryRender},
		{"icon miss", "E202", "Icon not found", CategoryIcon},
		{"bad option", "E205", "Malformed option", CategoryData},
		{"unknown code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := New("E203").WithDetail("IconHome").Wrap(cause)

	if got := err.Error(); got != "E203: Icon load failed: IconHome: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, cause) {
		t.Errorf("errors.Is should find wrapped cause")
	}
}

func TestIsMatchesCode(t *testing.T) {
	sentinel := New("E202")
	detailed := New("E202").WithDetailf("icon %s", "IconX")
	wrapped := fmt.Errorf("render: %w", detailed)

	if !stderrors.Is(wrapped, sentinel) {
		t.Errorf("errors.Is should match by code")
	}
	if stderrors.Is(wrapped, New("E203")) {
		t.Errorf("errors.Is matched a different code")
	}
	if !HasCode(wrapped, "E202") || HasCode(wrapped, "E201") {
		t.Errorf("HasCode mismatch")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E201") != nil {
		t.Errorf("FromError(nil) should be nil")
	}
	orig := New("E204")
	if FromError(fmt.Errorf("x: %w", orig), "E201") != orig {
		t.Errorf("FromError should return the existing BridgeError")
	}
	plain := FromError(stderrors.New("plain"), "E207")
	if plain.Code != "E207" || plain.Wrapped == nil {
		t.Errorf("FromError should wrap plain errors")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("E201").WithDetail("widget \"bogus\"").Format()
	for _, want := range []string{"ERROR E201: Unknown widget tag", "widget \"bogus\"", "hint: Register the tag"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestGetAllCodesSorted(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 || codes[0] != "E201" {
		t.Fatalf("codes = %v", codes)
	}
	if _, ok := GetTemplate("E208"); !ok {
		t.Errorf("E208 should be registered")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc", 7)
	if len(lines) != 2 || lines[0] != "aaa bbb" {
		t.Errorf("wrapText = %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Errorf("empty text should produce no lines")
	}
}
