package cli

import (
	"bytes"
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range RootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"bench", "report"} {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}
}

func TestBenchCmd_RequiresPaths(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"bench"})

	if err := RootCmd.Execute(); err == nil {
		t.Fatal("bench with no flags succeeded, want configuration error")
	}
}

func TestResolveConfig_FromFlags(t *testing.T) {
	if err := benchCmd.Flags().Set("db", "a.db"); err != nil {
		t.Fatal(err)
	}
	if err := benchCmd.Flags().Set("output", "o.json"); err != nil {
		t.Fatal(err)
	}
	if err := benchCmd.Flags().Set("threads", "1,2,4"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(benchCmd)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.DB != "a.db" || cfg.Output != "o.json" {
		t.Errorf("paths = %q, %q", cfg.DB, cfg.Output)
	}
	if len(cfg.Threads) != 3 || cfg.Threads[2] != 4 {
		t.Errorf("Threads = %v, want [1 2 4]", cfg.Threads)
	}
}
