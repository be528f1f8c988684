package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "slate" {
		t.Fatalf("expected default %s to be slate, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyFieldWidth); got != DefaultFieldWidth {
		t.Fatalf("expected default %s to be %d, got %d", KeyFieldWidth, DefaultFieldWidth, got)
	}
	if got := GetInt(KeyFieldMaxVisible); got != DefaultMaxVisible {
		t.Fatalf("expected default %s to be %d, got %d", KeyFieldMaxVisible, DefaultMaxVisible, got)
	}
	if GetBool(KeyViewOnly) {
		t.Fatalf("expected default %s to be false", KeyViewOnly)
	}
	if !GetBool(KeyViewOnlyUnderline) {
		t.Fatalf("expected default %s to be true", KeyViewOnlyUnderline)
	}
	if got := GetString(KeyLabelsPath); got != "" {
		t.Fatalf("expected default %s to be empty, got %q", KeyLabelsPath, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".fieldkit"))
	projectCfg := filepath.Join(projectDir, ".fieldkit", "config.yaml")
	writeFile(t, projectCfg, `
theme: paper
field:
  width: 72
labels:
  path: /project/labels.db
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: mono
field:
  width: 60
labels:
  path: /user/labels.db
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "paper" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyFieldWidth); got != 72 {
		t.Fatalf("expected project field width, got %d", got)
	}
	if got := GetString(KeyLabelsPath); got != "/project/labels.db" {
		t.Fatalf("expected project labels path, got %q", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".fieldkit"))
	projectCfg := filepath.Join(projectDir, ".fieldkit", "config.yaml")
	writeFile(t, projectCfg, `
theme: paper
labels:
  path: /project/labels.db
`)

	t.Setenv("FK_THEME", "mono")
	t.Setenv("FK_LABELS_PATH", "/env/labels.db")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "mono" {
		t.Fatalf("expected environment variable to override %s, got %q", KeyTheme, got)
	}
	if got := GetString(KeyLabelsPath); got != "/env/labels.db" {
		t.Fatalf("expected env override for %s, got %q", KeyLabelsPath, got)
	}

	overrides := map[string]any{
		KeyTheme:      "slate",
		KeyFieldWidth: 66,
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "slate" {
		t.Fatalf("expected CLI override to set %s=slate, got %q", KeyTheme, got)
	}
	if got := GetInt(KeyFieldWidth); got != 66 {
		t.Fatalf("expected override for %s = 66, got %d", KeyFieldWidth, got)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "nested", "config.yaml")
	setUserConfigPathOverride(userCfg)

	if err := SaveTheme("paper"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if string(data) == "" {
		t.Fatal("expected non-empty config file")
	}

	reset()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetString(KeyTheme); got != "paper" {
		t.Fatalf("expected persisted theme paper, got %q", got)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
