// internal/commands/root_test.go
package modelhub

import (
	"bytes"
	"strings"
	"testing"
)

// TestRootCmd verifies running the root command with an invalid subcommand reports an error.
func TestRootCmd(t *testing.T) {
	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)

	rootCmd.SetArgs([]string{"nonexistent"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	_, err := rootCmd.ExecuteC()

	if err == nil {
		t.Error("Expected an error for a nonexistent command, but got none")
	}

	expected := "unknown command \"nonexistent\" for \"modelhub\""
	if !strings.Contains(b.String(), expected) {
		t.Errorf("Expected output to contain '%s', but got '%s'", expected, b.String())
	}
}

func TestParseModelID(t *testing.T) {
	for _, tt := range []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "7", want: 7},
		{in: "0", want: 0},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
	} {
		got, err := parseModelID(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseModelID(%q) = %d, %v", tt.in, got, err)
		}
	}
}
