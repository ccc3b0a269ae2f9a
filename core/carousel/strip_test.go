package carousel

import (
	"reflect"
	"testing"
)

func TestCloneStripDuplicationFactor(t *testing.T) {
	// Buffer larger than the source forces whole-sequence replication so a
	// physical clone is never reused for two logical positions.
	s := newCloneStrip([]string{"a", "b"}, 3)
	if s.WorkingCount() != 4 {
		t.Fatalf("working=%d want 4 (dup factor 2)", s.WorkingCount())
	}
	want := []string{
		"b", "a", "b", // 3 tail clones
		"a", "b", "a", "b", // working set
		"a", "b", "a", // 3 head clones
	}
	if got := s.Physical(); !reflect.DeepEqual(got, want) {
		t.Fatalf("physical=%v want %v", got, want)
	}
}

func TestCloneStripNoDuplicationWhenBufferFits(t *testing.T) {
	s := newCloneStrip([]string{"a", "b", "c", "d"}, 2)
	if s.WorkingCount() != 4 {
		t.Fatalf("working=%d want 4", s.WorkingCount())
	}
	want := []string{"c", "d", "a", "b", "c", "d", "c", "d"}
	if got := s.Physical(); !reflect.DeepEqual(got, want) {
		t.Fatalf("physical=%v want %v", got, want)
	}
}

func TestCloneStripWrap(t *testing.T) {
	s := newCloneStrip([]string{"a", "b", "c"}, 2)
	// Index 1 sits in the safe zone: no wrap.
	if _, wrapped := s.Wrap(-300, 100); wrapped {
		t.Fatalf("safe offset wrapped")
	}
	// One full revolution past the end comes back to the equivalent offset.
	off, wrapped := s.Wrap(-600, 100) // raw index 4 → safe index 1
	if !wrapped || off != -300 {
		t.Fatalf("wrap(-600)=%f,%v want -300,true", off, wrapped)
	}
	// Backwards excursion wraps too.
	off, wrapped = s.Wrap(-100, 100) // raw index -1 → safe index 2
	if !wrapped || off != -400 {
		t.Fatalf("wrap(-100)=%f,%v want -400,true", off, wrapped)
	}
}

func TestFilmstripLayout(t *testing.T) {
	s := newFilmstrip([]string{"a", "b"})
	if got := len(s.Physical()); got != 10 {
		t.Fatalf("physical length=%d want 10 (five copies)", got)
	}
	if s.Lead() != 4 {
		t.Fatalf("lead=%d want 4 (two copies)", s.Lead())
	}
}

func TestFilmstripWrapReducesModuloBlock(t *testing.T) {
	s := newFilmstrip([]string{"a", "b", "c"}) // block length 300 at extent 100
	if _, wrapped := s.Wrap(-700, 100); wrapped {
		t.Fatalf("safe offset wrapped")
	}
	off, wrapped := s.Wrap(-1000, 100) // one block past the middle copy
	if !wrapped || off != -700 {
		t.Fatalf("wrap(-1000)=%f,%v want -700,true", off, wrapped)
	}
	// Fractional offsets keep their sub-item remainder.
	off, wrapped = s.Wrap(-950.5, 100)
	if !wrapped || off != -650.5 {
		t.Fatalf("wrap(-950.5)=%f,%v want -650.5,true", off, wrapped)
	}
}
