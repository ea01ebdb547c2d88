package attr

import (
	"testing"
)

func TestNewBuffer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		b := NewBuffer("")
		if b.Len() != 0 {
			t.Errorf("Len() = %d, want 0", b.Len())
		}
		if len(b.Runs()) != 0 {
			t.Errorf("Runs() = %v, want no runs for empty buffer", b.Runs())
		}
	})

	t.Run("single run", func(t *testing.T) {
		b := NewBuffer("hello")
		runs := b.Runs()
		if len(runs) != 1 {
			t.Fatalf("Runs() = %v, want single run", runs)
		}
		if runs[0].Start != 0 || runs[0].End != 5 {
			t.Errorf("run = [%d,%d), want [0,5)", runs[0].Start, runs[0].End)
		}
		if len(runs[0].Attrs) != 0 {
			t.Errorf("run attrs = %v, want empty", runs[0].Attrs)
		}
	})

	t.Run("multibyte runes", func(t *testing.T) {
		b := NewBuffer("прив")
		if b.Len() != 4 {
			t.Errorf("Len() = %d, want 4 runes", b.Len())
		}
	})
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Range
		n    int
		want Range
	}{
		{"all", All, 5, Range{0, 5}},
		{"inside", Range{1, 3}, 5, Range{1, 3}},
		{"negative start", Range{-2, 3}, 5, Range{0, 3}},
		{"end past length", Range{2, 99}, 5, Range{2, 5}},
		{"inverted", Range{4, 2}, 5, Range{4, 4}},
		{"start past length", Range{9, 12}, 5, Range{5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(tt.n); got != tt.want {
				t.Errorf("Clamp(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestSetAttrs(t *testing.T) {
	b := NewBuffer("hello world")
	b.SetAttrs(Range{0, 5}, Map{"k": "v"})

	runs := b.Runs()
	if len(runs) != 2 {
		t.Fatalf("Runs() = %s, want 2 runs", b.DebugString())
	}
	if runs[0].End != 5 || runs[0].Attrs["k"] != "v" {
		t.Errorf("first run = %+v, want [0,5) with k=v", runs[0])
	}
	if len(runs[1].Attrs) != 0 {
		t.Errorf("second run attrs = %v, want empty", runs[1].Attrs)
	}

	// replacement, not merge
	b.SetAttrs(Range{0, 5}, Map{"other": 1})
	if m := b.AttrsAt(0); m["k"] != nil || m["other"] != 1 {
		t.Errorf("AttrsAt(0) = %v, want only other=1", m)
	}
}

func TestMergeAttrs(t *testing.T) {
	b := NewBuffer("hello world")
	b.SetAttrs(Range{0, 5}, Map{"a": 1, "b": 1})
	b.MergeAttrs(Range{3, 8}, Map{"b": 2, "c": 2})

	if m := b.AttrsAt(0); m["a"] != 1 || m["b"] != 1 {
		t.Errorf("AttrsAt(0) = %v, want a=1 b=1", m)
	}
	// overlap: last write wins per key, disjoint keys accumulate
	if m := b.AttrsAt(4); m["a"] != 1 || m["b"] != 2 || m["c"] != 2 {
		t.Errorf("AttrsAt(4) = %v, want a=1 b=2 c=2", m)
	}
	if m := b.AttrsAt(7); m["a"] != nil || m["b"] != 2 || m["c"] != 2 {
		t.Errorf("AttrsAt(7) = %v, want b=2 c=2", m)
	}
	if m := b.AttrsAt(9); len(m) != 0 {
		t.Errorf("AttrsAt(9) = %v, want empty", m)
	}
}

func TestClearAttrs(t *testing.T) {
	b := NewBuffer("hello")
	b.SetAttrs(All, Map{"a": 1, "b": 2})

	b.ClearAttrs(Range{0, 2}, "a")
	if m := b.AttrsAt(0); m["a"] != nil || m["b"] != 2 {
		t.Errorf("AttrsAt(0) = %v, want only b=2", m)
	}
	if m := b.AttrsAt(3); m["a"] != 1 {
		t.Errorf("AttrsAt(3) = %v, want a intact outside cleared range", m)
	}

	// no keys clears everything
	b.ClearAttrs(All)
	runs := b.Runs()
	if len(runs) != 1 || len(runs[0].Attrs) != 0 {
		t.Errorf("after full clear: %s, want single unstyled run", b.DebugString())
	}
}

func TestNormalizeCoalesces(t *testing.T) {
	b := NewBuffer("abcdef")
	b.SetAttrs(Range{0, 3}, Map{"k": "v"})
	b.SetAttrs(Range{3, 6}, Map{"k": "v"})

	runs := b.Runs()
	if len(runs) != 1 {
		t.Fatalf("Runs() = %s, want equal adjacent runs coalesced", b.DebugString())
	}
	if runs[0].Start != 0 || runs[0].End != 6 {
		t.Errorf("run = [%d,%d), want [0,6)", runs[0].Start, runs[0].End)
	}
}

func TestRunsIn(t *testing.T) {
	b := NewBuffer("hello world")
	b.SetAttrs(Range{0, 5}, Map{"k": 1})

	runs := b.RunsIn(Range{3, 8})
	if len(runs) != 2 {
		t.Fatalf("RunsIn() = %v, want 2 clipped runs", runs)
	}
	if runs[0].Start != 3 || runs[0].End != 5 {
		t.Errorf("first clipped run = [%d,%d), want [3,5)", runs[0].Start, runs[0].End)
	}
	if runs[1].Start != 5 || runs[1].End != 8 {
		t.Errorf("second clipped run = [%d,%d), want [5,8)", runs[1].Start, runs[1].End)
	}
}

func TestInsertText(t *testing.T) {
	t.Run("inherits at position", func(t *testing.T) {
		b := NewBuffer("abcd")
		b.SetAttrs(Range{0, 2}, Map{"k": 1})
		b.InsertText(1, "xx", nil)
		if b.String() != "axxbcd" {
			t.Fatalf("text = %q, want %q", b.String(), "axxbcd")
		}
		if m := b.AttrsAt(1); m["k"] != 1 {
			t.Errorf("inserted text attrs = %v, want inherited k=1", m)
		}
	})

	t.Run("inserting at end inherits preceding rune", func(t *testing.T) {
		b := NewBuffer("ab")
		b.SetAttrs(All, Map{"k": 1})
		b.InsertText(2, "c", nil)
		if m := b.AttrsAt(2); m["k"] != 1 {
			t.Errorf("attrs at appended rune = %v, want inherited k=1", m)
		}
	})

	t.Run("explicit map applied verbatim", func(t *testing.T) {
		b := NewBuffer("ab")
		b.SetAttrs(All, Map{"k": 1})
		b.InsertText(1, "x", Map{"other": 2})
		if m := b.AttrsAt(1); m["k"] != nil || m["other"] != 2 {
			t.Errorf("inserted attrs = %v, want only other=2", m)
		}
	})

	t.Run("into empty buffer", func(t *testing.T) {
		b := NewBuffer("")
		b.InsertText(0, "hi", nil)
		if b.String() != "hi" || len(b.Runs()) != 1 {
			t.Errorf("buffer = %s, want single run over %q", b.DebugString(), "hi")
		}
	})
}

func TestDeleteRange(t *testing.T) {
	b := NewBuffer("hello world")
	b.SetAttrs(Range{6, 11}, Map{"k": 1})
	b.DeleteRange(Range{2, 7})

	if b.String() != "heorld" {
		t.Fatalf("text = %q, want %q", b.String(), "heorld")
	}
	if m := b.AttrsAt(2); m["k"] != 1 {
		t.Errorf("attrs after deletion = %v, want shifted k=1", m)
	}
	if m := b.AttrsAt(1); m["k"] != nil {
		t.Errorf("attrs before deletion point = %v, want unstyled", m)
	}
}

func TestReplaceRange(t *testing.T) {
	b := NewBuffer("hello world")
	b.SetAttrs(Range{0, 5}, Map{"k": 1})

	delta := b.ReplaceRange(Range{0, 5}, "hey")
	if delta != -2 {
		t.Errorf("delta = %d, want -2", delta)
	}
	if b.String() != "hey world" {
		t.Fatalf("text = %q, want %q", b.String(), "hey world")
	}
	// replacement inherits attributes of the first replaced rune
	if m := b.AttrsAt(0); m["k"] != 1 {
		t.Errorf("replacement attrs = %v, want inherited k=1", m)
	}
	if m := b.AttrsAt(4); m["k"] != nil {
		t.Errorf("attrs past replacement = %v, want unstyled", m)
	}
}

func TestSliceAndRunes(t *testing.T) {
	b := NewBuffer("héllo")
	if got := b.Slice(Range{1, 3}); got != "él" {
		t.Errorf("Slice() = %q, want %q", got, "él")
	}
	rs := b.Runes()
	rs[0] = 'X'
	if b.String() != "héllo" {
		t.Errorf("Runes() must return a copy, buffer changed to %q", b.String())
	}
}
