package imports

import (
	"reflect"
	"strings"
	"testing"
)

func TestKeep(t *testing.T) {
	all := []string{"module_b", "module_c", "module_a", "module_d"}
	unused := []string{"module_b", "module_d"}
	want := []string{"module_a", "module_c"}
	if got := Keep(all, unused); !reflect.DeepEqual(got, want) {
		t.Errorf("Keep = %v, want %v", got, want)
	}
}

func TestKeepEmptyUnused(t *testing.T) {
	all := []string{"b", "a"}
	want := []string{"a", "b"}
	if got := Keep(all, nil); !reflect.DeepEqual(got, want) {
		t.Errorf("Keep = %v, want %v", got, want)
	}
}

func TestKeepAllUnused(t *testing.T) {
	if got := Keep([]string{"a", "b"}, []string{"a", "b"}); len(got) != 0 {
		t.Errorf("Keep = %v, want empty", got)
	}
}

func TestBuildMultiline(t *testing.T) {
	got := BuildMultiline("", "from package ", []string{"module_a", "module_c", "module_b"})
	want := "from package import (\n" +
		"    module_a,\n" +
		"    module_b,\n" +
		"    module_c,\n" +
		")\n"
	if got != want {
		t.Errorf("BuildMultiline = %q, want %q", got, want)
	}
}

func TestBuildMultilinePadding(t *testing.T) {
	got := BuildMultiline("    ", "from package ", []string{"module_a", "module_c", "module_b"})
	want := "    from package import (\n" +
		"        module_a,\n" +
		"        module_b,\n" +
		"        module_c,\n" +
		"    )\n"
	if got != want {
		t.Errorf("BuildMultiline = %q, want %q", got, want)
	}
}

func TestBuildMultilineBareImport(t *testing.T) {
	// A parenthesized bare import is invalid Python, so the rebuild stays
	// on one comma-separated line.
	got := BuildMultiline("", "", []string{"c", "a", "b"})
	if got != "import a, b, c\n" {
		t.Errorf("BuildMultiline = %q, want %q", got, "import a, b, c\n")
	}
}

func TestRewriteDropsStatement(t *testing.T) {
	stmt := Statement{Indent: "", Prefix: "from os "}
	if got := Rewrite(stmt, []string{"chown"}, []string{"chown"}); got != nil {
		t.Errorf("Rewrite = %v, want nil", got)
	}
}

func TestRewriteSingleSurvivor(t *testing.T) {
	tests := []struct {
		name   string
		stmt   Statement
		all    []string
		unused []string
		want   string
	}{
		{
			name:   "from_import",
			stmt:   Statement{Prefix: "from p "},
			all:    []string{"a", "b"},
			unused: []string{"b"},
			want:   "from p import a\n",
		},
		{
			name:   "bare_import",
			stmt:   Statement{},
			all:    []string{"a", "b"},
			unused: []string{"a"},
			want:   "import b\n",
		},
		{
			name:   "indented",
			stmt:   Statement{Indent: "    ", Prefix: "from p "},
			all:    []string{"a", "b"},
			unused: []string{"b"},
			want:   "    from p import a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rewrite(tt.stmt, tt.all, tt.unused)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Rewrite = %v, want [%q]", got, tt.want)
			}
		})
	}
}

func TestRewriteMultipleSurvivors(t *testing.T) {
	stmt := Statement{Prefix: "from p "}
	got := Rewrite(stmt, []string{"c", "a", "b", "d"}, []string{"d"})
	want := "from p import (\n    a,\n    b,\n    c,\n)\n"
	if strings.Join(got, "") != want {
		t.Errorf("Rewrite = %q, want %q", strings.Join(got, ""), want)
	}
}

func TestRewriteIdempotentWithNoUnused(t *testing.T) {
	// Rewriting with an empty unused set keeps every symbol.
	stmt := Statement{Prefix: "from p "}
	got := Rewrite(stmt, []string{"a", "b"}, nil)
	want := "from p import (\n    a,\n    b,\n)\n"
	if strings.Join(got, "") != want {
		t.Errorf("Rewrite = %q, want %q", strings.Join(got, ""), want)
	}
}
