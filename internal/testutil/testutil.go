package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func RepoRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("unable to locate testutil source file")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

func BuildBinary(t *testing.T, root string) string {
	t.Helper()
	binDir := t.TempDir()
	binName := "paramdump"
	if runtime.GOOS == "windows" {
		binName = "paramdump.exe"
	}
	binPath := filepath.Join(binDir, binName)

	// #nosec G204 -- arguments are fixed and used only in test binaries.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/paramdump")
	build.Dir = root
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("build paramdump binary: %v\n%s", err, string(out))
	}
	return binPath
}

// RunBinary runs binPath in workDir and returns stdout, stderr and the exit code.
func RunBinary(t *testing.T, binPath, workDir string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	// #nosec G204 -- binary path comes from BuildBinary.
	cmd := exec.Command(binPath)
	cmd.Dir = workDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		code = CommandExitCode(t, err)
	}
	return stdout.String(), stderr.String(), code
}

func CommandExitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected command exit error, got: %v", err)
	}
	return exitErr.ExitCode()
}

func WriteFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("create parent directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// AssertGoldenText compares actual with the repo-relative golden file.
// UPDATE_GOLDEN=1 rewrites the file instead.
func AssertGoldenText(t *testing.T, repoRelativePath string, actual []byte) {
	t.Helper()
	goldenPath := filepath.Join(RepoRoot(t), filepath.FromSlash(repoRelativePath))
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		WriteFile(t, goldenPath, actual)
		return
	}

	expected := normalizeNewlines(MustReadFile(t, goldenPath))
	if bytes.Equal(expected, normalizeNewlines(actual)) {
		return
	}

	t.Fatalf(
		"golden mismatch for %s\nexpected:\n%s\nactual:\n%s\nset UPDATE_GOLDEN=1 to refresh fixtures",
		goldenPath,
		string(expected),
		string(actual),
	)
}

func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path) // #nosec G304 -- test helper for controlled paths.
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return content
}

func normalizeNewlines(input []byte) []byte {
	return bytes.ReplaceAll(input, []byte("\r\n"), []byte("\n"))
}
