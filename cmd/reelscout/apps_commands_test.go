package main

import (
	"strings"
	"testing"
)

func TestAppsListShowsAllSupportedApps(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"apps", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("apps list: %v", err)
	}
	for _, app := range []string{"Netflix", "Amazon Prime Video", "Hulu", "Disney+", "ESPN+", "Max", "Paramount+", "YouTube Premium"} {
		requireContains(t, out, app)
	}
}

func TestAppsDisableEnableRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"apps", "disable", "Hulu"}, env.configPath)
	if err != nil {
		t.Fatalf("apps disable: %v", err)
	}
	if strings.Contains(out, "Hulu") {
		t.Fatalf("expected Hulu removed from enabled set: %q", out)
	}

	out, _, err = runCLI(t, []string{"apps", "enable", "hulu"}, env.configPath)
	if err != nil {
		t.Fatalf("apps enable: %v", err)
	}
	requireContains(t, out, "Hulu")
}

func TestAppsDisableUnknownFails(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"apps", "disable", "Blockbuster"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown app")
	}
}

func TestAppsResetRestoresEverything(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"apps", "disable", "Netflix"}, env.configPath); err != nil {
		t.Fatalf("apps disable: %v", err)
	}
	out, _, err := runCLI(t, []string{"apps", "reset"}, env.configPath)
	if err != nil {
		t.Fatalf("apps reset: %v", err)
	}
	requireContains(t, out, "Netflix")
	requireContains(t, out, "YouTube Premium")
}
