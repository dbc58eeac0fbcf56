package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "fractiz ") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "catalog: 30 built-in questions") {
		t.Errorf("output = %q, want catalog size", out)
	}
}

func TestValidateBuiltInCatalog(t *testing.T) {
	out, err := execute(t, "validate", "--file", "")
	if err != nil {
		t.Fatalf("built-in catalog should validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Catalog check") {
		t.Errorf("missing report header:\n%s", out)
	}
}

const badCatalog = `format: v1.0.0
questions:
  - id: bad_1
    tier: easy
    type: compare
    text: 大きいほうを選択してください
    options:
      - fraction: 1/3
        visual: circle
        correct: true
      - fraction: 1/2
        visual: circle
    hint:
      message: くらべてみよう
      animation: compare
`

func TestValidateReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(badCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "validate", "--file", path)
	if err == nil {
		t.Fatal("expected an error for an invalid catalog")
	}
	if !strings.Contains(out, "bad_1") || !strings.Contains(out, "smaller than") {
		t.Errorf("report should name the failing question:\n%s", out)
	}
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "validate", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

const easyOnlyCatalog = `format: v1.0.0
questions:
  - id: easy_only_1
    tier: easy
    type: compare
    text: 大きいほうを選択してください
    options:
      - fraction: 1/2
        visual: circle
        correct: true
      - fraction: 1/3
        visual: circle
    hint:
      message: くらべてみよう
      animation: compare
`

func TestPlayRefusesEmptyTier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "easy.yaml")
	if err := os.WriteFile(path, []byte(easyOnlyCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FRACTIZ_CATALOG_FILE", path)
	t.Setenv("FRACTIZ_LOG_FILE", filepath.Join(dir, "fractiz.log"))

	_, err := execute(t, "play", "--level", "hard")
	if err == nil {
		t.Fatal("expected an error for a tier with no questions")
	}
	if !strings.Contains(err.Error(), "no hard questions") {
		t.Errorf("err = %v", err)
	}
}
