package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestSchema(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"default", []string{"schema"}, []string{`"functions"`, `"instrs"`}},
		{"program", []string{"schema", "program"}, []string{`"functions"`, `"name"`}},
		{"config", []string{"schema", "config"}, []string{`"noColor"`, `"logLevel"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
			}
			var v map[string]any
			if err := json.Unmarshal(stdout.Bytes(), &v); err != nil {
				t.Fatalf("schema is not JSON: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("schema missing %s", want)
				}
			}
		})
	}

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"schema", "bogus"}, &stdout, &stderr); code != 1 {
		t.Errorf("schema bogus: exit code = %d, want 1", code)
	}
}
