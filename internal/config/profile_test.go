package config

import "testing"

func TestNormalizeProfileKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"anna@example.com", "ANNA_EXAMPLE_COM"},
		{"guest", "GUEST"},
		{"unit-12b", "UNIT_12B"},
		{"ODD name!", "ODD_NAME_"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeProfileKey(tt.in); got != tt.want {
			t.Errorf("NormalizeProfileKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveProfile(t *testing.T) {
	fakeEnv := map[string]string{
		"SKEDDA_PROFILE_ANNA_EXAMPLE_COM_EMAIL":     "anna@example.com",
		"SKEDDA_PROFILE_ANNA_EXAMPLE_COM_PASSWORD":  "annas-pass",
		"SKEDDA_PROFILE_ANNA_EXAMPLE_COM_SIGNATURE": "Anna R.",
		"SKEDDA_PROFILE_HALFSET_EMAIL":              "half@example.com",
	}
	getenv := func(k string) string { return fakeEnv[k] }

	p, ok := ResolveProfile("anna@example.com", getenv)
	if !ok {
		t.Fatal("expected profile to resolve")
	}
	if p.Email != "anna@example.com" || p.Password != "annas-pass" || p.Signature != "Anna R." {
		t.Errorf("unexpected profile: %+v", p)
	}

	// missing password means not found, not a partial result
	if _, ok := ResolveProfile("halfset", getenv); ok {
		t.Error("profile with no password should not resolve")
	}
	if _, ok := ResolveProfile("nobody", getenv); ok {
		t.Error("unknown profile should not resolve")
	}
}
