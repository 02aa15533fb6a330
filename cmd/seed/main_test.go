package main

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv("SEED_TEST_KEY", "value")

	if got := envOr("SEED_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("envOr set key = %q, want %q", got, "value")
	}
	if got := envOr("SEED_TEST_KEY_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("envOr missing key = %q, want %q", got, "fallback")
	}
}
