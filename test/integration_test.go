// ABOUTME: Integration tests for babylog CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "babylog")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/babylog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use temp database and isolated config
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = append(os.Environ(),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"BABYLOG_TZ=UTC",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Register a baby with a date of birth
	output, err := run("baby", "add", "June")
	if err != nil {
		t.Fatalf("Failed to add baby: %v\n%s", err, output)
	}
	if !strings.Contains(output, "June") {
		t.Errorf("Expected 'June' in output, got: %s", output)
	}

	output, err = run("baby", "dob", "June", "2024-02-14")
	if err != nil {
		t.Fatalf("Failed to set dob: %v\n%s", err, output)
	}

	// Log entries
	output, err = run("log", "June", "--milk", "--at", "2024-03-10 08:00")
	if err != nil {
		t.Fatalf("Failed to log entry: %v\n%s", err, output)
	}
	if !strings.Contains(output, "milk") {
		t.Errorf("Expected 'milk' in output, got: %s", output)
	}

	output, err = run("log", "June", "--pee", "--poop", "--at", "2024-03-10 12:00")
	if err != nil {
		t.Fatalf("Failed to log entry: %v\n%s", err, output)
	}

	// Re-logging the same minute overwrites instead of duplicating
	output, err = run("log", "June", "--milk", "--at", "2024-03-10 12:00")
	if err != nil {
		t.Fatalf("Failed to re-log entry: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Overwriting") {
		t.Errorf("Expected overwrite warning, got: %s", output)
	}

	// List the day
	output, err = run("list", "June", "-t", "custom", "--from", "2024-03-10", "--to", "2024-03-10")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2 entries") {
		t.Errorf("Expected '2 entries' in list output, got: %s", output)
	}

	// Stats over the same window
	output, err = run("stats", "June", "-t", "custom", "--from", "2024-03-10", "--to", "2024-03-10")
	if err != nil {
		t.Fatalf("Failed to get stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Totals") {
		t.Errorf("Expected 'Totals' in stats output, got: %s", output)
	}

	// Weights
	output, err = run("weight", "add", "June", "8", "12", "--date", "2024-03-10")
	if err != nil {
		t.Fatalf("Failed to add weight: %v\n%s", err, output)
	}
	output, err = run("weight", "list", "June")
	if err != nil {
		t.Fatalf("Failed to list weights: %v\n%s", err, output)
	}
	if !strings.Contains(output, "8.750") {
		t.Errorf("Expected '8.750' in weight output, got: %s", output)
	}

	// Delete a day
	output, err = run("delete", "day", "June", "2024-03-10")
	if err != nil {
		t.Fatalf("Failed to delete day: %v\n%s", err, output)
	}
	output, err = run("list", "June", "-t", "custom", "--from", "2024-03-10", "--to", "2024-03-10")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No entries") {
		t.Errorf("Expected empty list after delete day, got: %s", output)
	}
}
