package modelhub

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marouane-chirane/ModelHub/internal/appconfig"
	"github.com/marouane-chirane/ModelHub/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// resetAllFlags restores every flag of the command tree to its default.
func resetAllFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetAllFlags(sub)
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// useConfig points the root command at a temporary config file and log file.
func useConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := writeTempConfig(t, content)
	logPath := filepath.Join(t.TempDir(), "modelhub.log")

	prevCfgFile := cfgFile
	resetAllFlags(rootCmd)
	cfgFile = configPath
	viper.SetConfigFile(configPath)
	_ = rootCmd.PersistentFlags().Set("logFile", logPath)
	t.Cleanup(func() {
		resetAllFlags(rootCmd)
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
		_ = logging.Close()
	})
	return configPath
}

func TestPersistentPreRunEUsesFlagValues(t *testing.T) {
	configPath := useConfig(t, `{"apiURL": "http://file:9000/api/v1", "alertSeconds": 9}`)

	_ = rootCmd.PersistentFlags().Set("debug", "true")
	_ = rootCmd.PersistentFlags().Set("jsonMode", "true")
	_ = rootCmd.PersistentFlags().Set("apiURL", "http://flag:8000/api/v1")
	_ = rootCmd.PersistentFlags().Set("timeout", "12")

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	if currentConfig == nil || currentConfig.ConfigPath != configPath {
		t.Fatalf("expected config loaded with path %s", configPath)
	}
	if !currentConfig.Debug || !currentConfig.JSONMode {
		t.Fatalf("expected flag values to flow into config: %+v", currentConfig)
	}
	if currentConfig.BaseURL() != "http://flag:8000/api/v1" {
		t.Fatalf("expected apiURL flag to win, got %s", currentConfig.BaseURL())
	}
	if currentConfig.TimeoutSeconds != 12 {
		t.Fatalf("expected timeout 12, got %d", currentConfig.TimeoutSeconds)
	}
	if currentConfig.AlertSeconds != 9 {
		t.Fatalf("expected alertSeconds from file, got %d", currentConfig.AlertSeconds)
	}
}

func TestPersistentPreRunEEnvOverridesFile(t *testing.T) {
	useConfig(t, `{"apiURL": "http://file:9000/api/v1"}`)
	t.Setenv("MODELHUB_APIURL", "http://env:7000/api/v1")
	initConfig()

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}
	if got := currentConfig.BaseURL(); got != "http://env:7000/api/v1" {
		t.Fatalf("expected env apiURL, got %s", got)
	}
}

func TestPersistentPreRunEInvalidURL(t *testing.T) {
	useConfig(t, "{}")
	_ = rootCmd.PersistentFlags().Set("apiURL", "ftp://nowhere")

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err == nil {
		t.Fatalf("expected error for unsupported apiURL scheme")
	}
}

func TestShowConfigCommandOutput(t *testing.T) {
	configPath := useConfig(t, "{}")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--debug", "show", "config"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Config file: "+configPath) {
		t.Fatalf("expected config file path in output, got %s", out)
	}
	if !strings.Contains(out, "Debug:           true") {
		t.Fatalf("expected debug in output, got %s", out)
	}
	if !strings.Contains(out, "API URL:         "+appconfig.DefaultAPIURL) {
		t.Fatalf("expected default API URL in output, got %s", out)
	}
}

func TestRootRunsDashboardByDefault(t *testing.T) {
	useConfig(t, "{}")

	prev := startDashboard
	var started *appconfig.Config
	startDashboard = func(ctx context.Context, cfg *appconfig.Config) error {
		started = cfg
		return nil
	}
	t.Cleanup(func() { startDashboard = prev })

	rootCmd.SetArgs([]string{})
	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	if started == nil || started.BaseURL() != appconfig.DefaultAPIURL {
		t.Fatalf("expected dashboard to start with default config, got %+v", started)
	}
}

func TestListCommandsOutput(t *testing.T) {
	useConfig(t, "{}")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"list", "commands"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"modelhub list models", "modelhub train model", "modelhub export chart", "modelhub dashboard"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "completion") {
		t.Errorf("completion command should be filtered:\n%s", out)
	}
}
