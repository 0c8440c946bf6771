package title

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"unset", nil, ""},
		{"explicit empty", Of(""), " "},
		{"custom", Of("Custom"), "Custom"},
		{"single space", Of(" "), " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []*string{Of(""), Of(" "), Of("Custom")} {
		once := Normalize(in)
		if twice := Normalize(Of(once)); twice != once {
			t.Errorf("Normalize(Of(Normalize(%q))) = %q, want %q", *in, twice, once)
		}
	}

	// Re-feeding the unset result as an explicit title suppresses it.
	if got := Normalize(Of(Normalize(nil))); got != " " {
		t.Errorf("Normalize(Of(Normalize(nil))) = %q, want %q", got, " ")
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("", "X", "Y"); got != "X vs. Y" {
		t.Errorf("Display(unset) = %q", got)
	}
	if got := Display(" ", "X", "Y"); got != " " {
		t.Errorf("Display(blank) = %q", got)
	}
	if got := Display("Custom title", "X", "Y"); got != "Custom title" {
		t.Errorf("Display(custom) = %q", got)
	}
}
