package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestShow(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "brilcheck-show-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	path := writeFile(t, tmpDir, "add.json", addProgram)

	t.Run("function", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run(context.Background(), []string{"show", path, "main"}, &stdout, &stderr); code != 0 {
			t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
		}
		var fn map[string]any
		if err := json.Unmarshal(stdout.Bytes(), &fn); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
		}
		if fn["name"] != "main" {
			t.Errorf("name = %v, want main", fn["name"])
		}
		if instrs, _ := fn["instrs"].([]any); len(instrs) != 4 {
			t.Errorf("instrs = %v, want 4 entries", fn["instrs"])
		}
	})

	t.Run("instructions only", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run(context.Background(), []string{"show", "-i", path, "main"}, &stdout, &stderr); code != 0 {
			t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
		}
		var instrs []any
		if err := json.Unmarshal(stdout.Bytes(), &instrs); err != nil {
			t.Fatalf("output is not a JSON array: %v\n%s", err, stdout.String())
		}
		if len(instrs) != 4 {
			t.Errorf("len(instrs) = %d, want 4", len(instrs))
		}
	})

	t.Run("large integers are printed exactly", func(t *testing.T) {
		big := writeFile(t, tmpDir, "big.json",
			`{"functions":[{"name":"main","instrs":[{"op":"const","value":9007199254740993},{"op":"const","value":1e400}]}]}`)
		var stdout, stderr bytes.Buffer
		if code := run(context.Background(), []string{"show", "-i", big, "main"}, &stdout, &stderr); code != 0 {
			t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
		}
		for _, want := range []string{`"value": 9007199254740993`, `"value": 1e400`} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("output %q does not contain %s", stdout.String(), want)
			}
		}
	})

	t.Run("unknown function", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{"show", path, "nope"}, &stdout, &stderr)
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if !strings.Contains(stderr.String(), `error: function "nope" not found`) {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("load failure", func(t *testing.T) {
		bad := writeFile(t, tmpDir, "bad.json", `{"functions": 3}`)
		var stdout, stderr bytes.Buffer
		if code := run(context.Background(), []string{"show", bad, "main"}, &stdout, &stderr); code != 2 {
			t.Errorf("exit code = %d, want 2", code)
		}
	})
}
