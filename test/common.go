//go:build e2e

package test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir     string
	ProjectPath string
	ConfigPath  string
	BinaryPath  string
}

// setupTestEnvironment builds nglint and writes the given project files to a temporary directory
func setupTestEnvironment(t *testing.T, files map[string]string) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	setup := &TestSetup{
		TempDir:     tempDir,
		ProjectPath: filepath.Join(tempDir, "tsconfig.json"),
		ConfigPath:  filepath.Join(tempDir, ".nglint.yaml"),
		BinaryPath:  filepath.Join(tempDir, "nglint"),
	}

	for name, content := range files {
		path := filepath.Join(tempDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	buildBinary(t, setup.BinaryPath)
	return setup
}

// buildBinary builds the nglint binary from the project root
func buildBinary(t *testing.T, output string) {
	t.Helper()

	currentDir, err := os.Getwd()
	require.NoError(t, err)
	projectRoot := filepath.Dir(currentDir) // Go up one level from test directory

	buildCmd := exec.Command("go", "build", "-o", output, "./cmd/nglint")
	buildCmd.Dir = projectRoot
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Logf("Build failed with output: %s", string(buildOutput))
		require.NoError(t, err, "Failed to build nglint binary")
	}
}

// runNglint runs the binary in the project directory and returns its combined output and exit code
func runNglint(t *testing.T, setup *TestSetup, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(setup.BinaryPath, append([]string{"--config", setup.ConfigPath}, args...)...)
	cmd.Dir = setup.TempDir

	output, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(output), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(output), 0
}
