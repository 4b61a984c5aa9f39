package imports

import "testing"

func TestParseStatement(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		indent string
		prefix string
	}{
		{name: "from_basic", line: "from package import module", indent: "", prefix: "from package "},
		{name: "from_submodule", line: "from package.subpackage import module", indent: "", prefix: "from package.subpackage "},
		{name: "bare", line: "import module_a, module_b", indent: "", prefix: ""},
		{name: "from_padded", line: "    from package.subpackage import module", indent: "    ", prefix: "from package.subpackage "},
		{name: "bare_padded", line: "    import module_a, module_b", indent: "    ", prefix: ""},
		{name: "paren_opener", line: "from p import (\n", indent: "", prefix: "from p "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, ok := ParseStatement(tt.line)
			if !ok {
				t.Fatalf("ParseStatement(%q) did not match", tt.line)
			}
			if stmt.Indent != tt.indent {
				t.Errorf("Indent = %q, want %q", stmt.Indent, tt.indent)
			}
			if stmt.Prefix != tt.prefix {
				t.Errorf("Prefix = %q, want %q", stmt.Prefix, tt.prefix)
			}
		})
	}
}

func TestParseStatementNotAnImport(t *testing.T) {
	if _, ok := ParseStatement("random invalid string"); ok {
		t.Error("ParseStatement matched a non-import line")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		symbol string
		want   Shape
	}{
		{name: "single_from", line: "from os import chown\n", symbol: "chown", want: ShapeSingle},
		{name: "single_bare", line: "import os\n", symbol: "os", want: ShapeSingle},
		{name: "single_alias", line: "import numpy as np\n", symbol: "np", want: ShapeSingle},
		{name: "single_padded", line: "    from os import chown\n", symbol: "chown", want: ShapeSingle},
		{name: "comma", line: "from p import a, b\n", symbol: "a", want: ShapeComma},
		{name: "comma_bare", line: "import a, b, c\n", symbol: "b", want: ShapeComma},
		{name: "paren_opener", line: "from p import (\n", symbol: "a", want: ShapeParen},
		{name: "backslash", line: "from p import a, b,\\\n", symbol: "a", want: ShapeBackslash},
		{name: "wrong_symbol", line: "from os import chown\n", symbol: "chmod", want: ShapeNone},
		{name: "empty_symbol", line: "from os import chown\n", symbol: "", want: ShapeNone},
		{name: "not_an_import", line: "x = 1\n", symbol: "x", want: ShapeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line, tt.symbol); got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.line, tt.symbol, got, tt.want)
			}
		})
	}
}
