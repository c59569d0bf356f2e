package clipboard

import (
	stderrors "errors"
	"testing"
)

func TestMemory_WriteText(t *testing.T) {
	var m Memory

	if got := m.Last(); got != "" {
		t.Errorf("Last() on empty clipboard = %q, want empty", got)
	}

	for _, text := range []string{"first", "print('hi')"} {
		if err := m.WriteText(text); err != nil {
			t.Fatalf("WriteText(%q) error = %v", text, err)
		}
	}

	if got := m.Last(); got != "print('hi')" {
		t.Errorf("Last() = %q, want %q", got, "print('hi')")
	}
	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestMemory_Error(t *testing.T) {
	m := &Memory{Err: stderrors.New("no display")}

	if err := m.WriteText("x"); err == nil {
		t.Error("expected error from failing clipboard")
	}
	if got := m.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestWriterImplementations(t *testing.T) {
	var _ Writer = NewSystem()
	var _ Writer = &Memory{}
}
