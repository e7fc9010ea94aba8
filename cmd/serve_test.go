package cmd

import (
	"strings"
	"testing"
)

func TestNewServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd()

	for flag, wantDefault := range map[string]string{
		"addr":         ":8080",
		"client-url":   "http://localhost:3000",
		"folder-name":  "Letters",
		"metrics-addr": ":9090",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("expected flag --%s to exist", flag)
			continue
		}
		if f.DefValue != wantDefault {
			t.Errorf("flag --%s default = %q, want %q", flag, f.DefValue, wantDefault)
		}
	}
}

func TestServeCmd_RequiresGoogleCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")
	t.Setenv("GOOGLE_REDIRECT_URL", "")

	cmd := newServeCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error without Google OAuth credentials")
	}
	if !strings.Contains(err.Error(), "GOOGLE_CLIENT_ID") {
		t.Errorf("expected missing client id error, got %v", err)
	}
}
