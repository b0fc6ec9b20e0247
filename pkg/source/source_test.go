package source

import "testing"

func TestLines(t *testing.T) {
	sf := NewEvalSource("a;\nb;\nc;")

	lines := sf.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "b;" {
		t.Errorf("line 2 wrong. expected=%q, got=%q", "b;", lines[1])
	}
}

func TestDisplayPath(t *testing.T) {
	file := FromFile("/tmp/script.sk", "1;")
	if file.Name != "script.sk" {
		t.Errorf("name wrong. expected=%q, got=%q", "script.sk", file.Name)
	}
	if file.DisplayPath() != "/tmp/script.sk" {
		t.Errorf("display path wrong. got=%q", file.DisplayPath())
	}
	if !file.IsFile() {
		t.Error("file source should report IsFile")
	}

	repl := NewReplSource("1;")
	if repl.DisplayPath() != "<repl>" {
		t.Errorf("repl display path wrong. got=%q", repl.DisplayPath())
	}
	if repl.IsFile() {
		t.Error("repl source should not report IsFile")
	}
}
