package config

import "strings"

// Profile is a named credential set resolved from the environment, distinct
// from the default credentials in the config file.
type Profile struct {
	Email     string
	Password  string
	Signature string
}

// ResolveProfile looks up a named credential profile through the given
// environment accessor. The profile name (often an email address) is
// normalized into an env-var fragment: every non-alphanumeric rune becomes an
// underscore and the result is upper-cased, so "anna@example.com" reads
// SKEDDA_PROFILE_ANNA_EXAMPLE_COM_EMAIL and friends. The second return is
// false when no email/password pair exists for the profile.
//
// The accessor is injected (usually os.Getenv) so resolution stays a pure
// function for tests.
func ResolveProfile(name string, getenv func(string) string) (Profile, bool) {
	key := "SKEDDA_PROFILE_" + NormalizeProfileKey(name)
	p := Profile{
		Email:     getenv(key + "_EMAIL"),
		Password:  getenv(key + "_PASSWORD"),
		Signature: getenv(key + "_SIGNATURE"),
	}
	if p.Email == "" || p.Password == "" {
		return Profile{}, false
	}
	return p, true
}

// NormalizeProfileKey maps a profile name onto the env-var fragment used for
// lookup: non-alphanumeric runes become underscores, letters are upper-cased.
func NormalizeProfileKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
