package utils

import "testing"

func TestLooksLikeEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"user.name+tag@sub.example.com",
		"x@y.z.dev",
	}
	for _, s := range valid {
		if !LooksLikeEmail(s) {
			t.Fatalf("expected valid: %q", s)
		}
	}

	invalid := []string{
		"",
		"plain",
		"no-at.example.com",
		"missing@tld",
		"two@@example.com",
		"spa ce@example.com",
		"name@do main.com",
		"@example.com",
		"name@",
	}
	for _, s := range invalid {
		if LooksLikeEmail(s) {
			t.Fatalf("expected invalid: %q", s)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  ALICE@Example.COM "); got != "alice@example.com" {
		t.Fatalf("normalize: %q", got)
	}
}

func TestValidNanoID(t *testing.T) {
	id, err := GenerateNanoID()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !ValidNanoID(id) {
		t.Fatalf("generated id rejected: %q", id)
	}
	for _, s := range []string{"", "abc", "aaaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaaaaaaa", "aaaaaaaaaa!aaaaaaaaaa"} {
		if ValidNanoID(s) {
			t.Fatalf("expected invalid: %q", s)
		}
	}
}
