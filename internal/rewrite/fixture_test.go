package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"pyprune/internal/pyflakes"
	"pyprune/internal/testable"
)

// cleanFixture writes contents to a temp file, applies the diagnostics with
// commit enabled, and returns the file's contents afterwards.
func cleanFixture(t *testing.T, contents string, diags func(path string) []pyflakes.Diagnostic) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.py")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := &Cleaner{FS: testable.DefaultFS, Commit: true}
	for _, res := range c.Run(diags(path)) {
		if res.Err != nil {
			t.Fatalf("clean %s: %v", res.Path, res.Err)
		}
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture back: %v", err)
	}
	return string(got)
}

func TestEndToEndSingleLineImports(t *testing.T) {
	fixture := "import os\n" +
		"import sys\n" +
		"\n" +
		"print(sys.argv)\n"
	expected := "import sys\n" +
		"\n" +
		"print(sys.argv)\n"

	got := cleanFixture(t, fixture, func(path string) []pyflakes.Diagnostic {
		return []pyflakes.Diagnostic{{Path: path, Line: 1, Symbol: "os"}}
	})
	if got != expected {
		t.Errorf("file = %q, want %q", got, expected)
	}
}

func TestEndToEndSingleLineMultipleImports(t *testing.T) {
	fixture := "from collections import defaultdict, OrderedDict\n" +
		"\n" +
		"d = defaultdict(list)\n"
	expected := "from collections import defaultdict\n" +
		"\n" +
		"d = defaultdict(list)\n"

	got := cleanFixture(t, fixture, func(path string) []pyflakes.Diagnostic {
		return []pyflakes.Diagnostic{{Path: path, Line: 1, Symbol: "OrderedDict"}}
	})
	if got != expected {
		t.Errorf("file = %q, want %q", got, expected)
	}
}

func TestEndToEndMultilineImports(t *testing.T) {
	fixture := "from os import (\n" +
		"    chmod,\n" +
		"    chown,\n" +
		"    rename,\n" +
		")\n" +
		"\n" +
		"rename('a', 'b')\n" +
		"chmod('b', 0o644)\n"
	expected := "from os import (\n" +
		"    chmod,\n" +
		"    rename,\n" +
		")\n" +
		"\n" +
		"rename('a', 'b')\n" +
		"chmod('b', 0o644)\n"

	got := cleanFixture(t, fixture, func(path string) []pyflakes.Diagnostic {
		return []pyflakes.Diagnostic{{Path: path, Line: 1, Symbol: "chown"}}
	})
	if got != expected {
		t.Errorf("file = %q, want %q", got, expected)
	}
}

func TestEndToEndWholeStatementRemoved(t *testing.T) {
	got := cleanFixture(t, "from os import chown\n", func(path string) []pyflakes.Diagnostic {
		return []pyflakes.Diagnostic{{Path: path, Line: 1, Symbol: "chown"}}
	})
	if got != "" {
		t.Errorf("file = %q, want empty", got)
	}
}

func TestEndToEndAggregatorNeverModified(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "__init__.py")
	contents := "from pkg.module import helper\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := &Cleaner{FS: testable.DefaultFS, Commit: true}
	results := c.Run([]pyflakes.Diagnostic{{Path: path, Line: 1, Symbol: "helper"}})
	if len(results) != 1 || !results[0].Skipped {
		t.Fatalf("results = %+v, want one skipped", results)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture back: %v", err)
	}
	if string(got) != contents {
		t.Errorf("aggregator file was modified: %q", got)
	}
}
