package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSolveRun(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a ^ b\n")

	res := runBoole(t, dir, path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}

	want := "[Info] Found a solution: a=true b=false\n" +
		"[Info] Found a solution: a=false b=true\n" +
		"[Info] 2 out of 4 possible results are solutions.\n"
	if res.Stdout != want {
		t.Errorf("stdout = %q, want %q", res.Stdout, want)
	}
}

func TestSolveMultipleExpressions(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a > b\nb > a\n")

	res := runBoole(t, dir, path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}

	want := "[Info] Found a solution: a=false b=false\n" +
		"[Info] Found a solution: a=true b=true\n" +
		"[Info] 2 out of 4 possible results are solutions.\n"
	if res.Stdout != want {
		t.Errorf("stdout = %q, want %q", res.Stdout, want)
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a\n!a\n")

	res := runBoole(t, dir, path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}

	want := "[Info] 0 out of 2 possible results are solutions.\n"
	if res.Stdout != want {
		t.Errorf("stdout = %q, want %q", res.Stdout, want)
	}
}

func TestSolveMissingFile(t *testing.T) {
	dir := t.TempDir()

	res := runBoole(t, dir, filepath.Join(dir, "missing.txt"))

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "[Error] Unable to open file") {
		t.Errorf("stderr = %q, want file access error", res.Stderr)
	}
	if res.Stdout != "" {
		t.Errorf("stdout = %q, want empty", res.Stdout)
	}
}

func TestSolveSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a & b\na &\n")

	res := runBoole(t, dir, path)

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "[Error] line 2: invalid expression") {
		t.Errorf("stderr = %q, want line-numbered syntax error", res.Stderr)
	}
	if res.Stdout != "" {
		t.Errorf("stdout = %q, want empty", res.Stdout)
	}
}

func TestSolveASTFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a & b\n")

	res := runBoole(t, dir, "--ast", path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}

	want := "Expression 1:\n" +
		"- node: &\n" +
		"  - node: var\n" +
		"    - value: a\n" +
		"  - node: var\n" +
		"    - value: b\n" +
		"[Info] Found a solution: a=true b=true\n" +
		"[Info] 1 out of 4 possible results are solutions.\n"
	if res.Stdout != want {
		t.Errorf("stdout = %q, want %q", res.Stdout, want)
	}
}

func TestUsageNoArguments(t *testing.T) {
	dir := t.TempDir()

	res := runBoole(t, dir)

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "[Error] expected exactly one input file, got 0 arguments") {
		t.Errorf("stderr = %q, want usage error", res.Stderr)
	}
	if !strings.Contains(res.Stderr, "Run 'boole --help' for usage.") {
		t.Errorf("stderr = %q, want help hint", res.Stderr)
	}
}

func TestUsageUnknownFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a\n")

	res := runBoole(t, dir, "--bogus", path)

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "[Error] invalid command line") {
		t.Errorf("stderr = %q, want flag error", res.Stderr)
	}
}

func TestHelpFlag(t *testing.T) {
	dir := t.TempDir()

	res := runBoole(t, dir, "-h")

	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "boole [flags] <file>") {
		t.Errorf("stdout = %q, want usage line", res.Stdout)
	}
	if !strings.Contains(res.Stdout, "--ast") {
		t.Errorf("stdout = %q, want --ast flag in help", res.Stdout)
	}
}

func TestCheckValidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a & b\n\nc | d\n")

	res := runBoole(t, dir, "check", path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}

	want := "[Info] All 2 expressions are valid.\n"
	if res.Stdout != want {
		t.Errorf("stdout = %q, want %q", res.Stdout, want)
	}
}

func TestCheckInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a & b\na &\n(c\n")

	res := runBoole(t, dir, "check", path)

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "line 2:") {
		t.Errorf("stdout = %q, want diagnostic for line 2", res.Stdout)
	}
	if !strings.Contains(res.Stdout, "line 3:") {
		t.Errorf("stdout = %q, want diagnostic for line 3", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "[Error] 2 of 3 expressions are invalid") {
		t.Errorf("stderr = %q, want summary error", res.Stderr)
	}
}

func TestTokensCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a nand b\n")

	res := runBoole(t, dir, "tokens", path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}

	for _, want := range []string{"line 1: a nand b", "IDENTIFIER(a)", "NAND(nand)", "IDENTIFIER(b)", "EOF"} {
		if !strings.Contains(res.Stdout, want) {
			t.Errorf("stdout = %q, missing %q", res.Stdout, want)
		}
	}
}

func TestTableCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a & b\n")

	res := runBoole(t, dir, "table", path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}

	lines := strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6 (header, separator, 4 rows):\n%s", len(lines), res.Stdout)
	}

	if !strings.Contains(lines[0], "set") {
		t.Errorf("header = %q, want set column", lines[0])
	}

	// Rows in enumeration order, first variable flipping fastest
	wantRows := [][]string{
		{"0", "0", "0", "0"},
		{"1", "0", "0", "0"},
		{"0", "1", "0", "0"},
		{"1", "1", "1", "1"},
	}
	for i, want := range wantRows {
		got := strings.Fields(lines[i+2])
		if len(got) != len(want) {
			t.Errorf("row %d = %v, want %v", i, got, want)
			continue
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("row %d = %v, want %v", i, got, want)
				break
			}
		}
	}
}

func TestVersionCommand(t *testing.T) {
	dir := t.TempDir()

	res := runBoole(t, dir, "version")

	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "boole v") {
		t.Errorf("stdout = %q, want version banner", res.Stdout)
	}
	if !strings.Contains(res.Stdout, "Go Version:") {
		t.Errorf("stdout = %q, want Go version line", res.Stdout)
	}
}

func TestVerboseFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a\n")

	res := runBoole(t, dir, "-v", path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}
	if !strings.Contains(res.Stderr, "Starting run") {
		t.Errorf("stderr = %q, want debug diagnostics", res.Stderr)
	}

	// Diagnostics must not leak into the result stream
	want := "[Info] Found a solution: a=true\n" +
		"[Info] 1 out of 2 possible results are solutions.\n"
	if res.Stdout != want {
		t.Errorf("stdout = %q, want %q", res.Stdout, want)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a\n")

	cfgPath := filepath.Join(dir, "custom.toml")
	cfgContent := "[solve]\nprint_ast = true\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	res := runBoole(t, dir, "--config", cfgPath, path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "Expression 1:") {
		t.Errorf("stdout = %q, want expression tree from config", res.Stdout)
	}
}

func TestConfigDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a\n")

	cfgContent := "[solve]\nprint_ast = true\n"
	if err := os.WriteFile(filepath.Join(dir, "boole.toml"), []byte(cfgContent), 0644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	res := runBoole(t, dir, path)

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "Expression 1:") {
		t.Errorf("stdout = %q, want expression tree from discovered config", res.Stdout)
	}
}

func TestConfigBadPath(t *testing.T) {
	dir := t.TempDir()
	path := writeTerms(t, dir, "a\n")

	res := runBoole(t, dir, "--config", filepath.Join(dir, "nope.toml"), path)

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "[Error]") {
		t.Errorf("stderr = %q, want configuration error", res.Stderr)
	}
}
