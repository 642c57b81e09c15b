package certgen

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func openDescriptorCount(t *testing.T) int {
	t.Helper()

	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot read /proc/self/fd: %v", err)
	}
	return len(entries)
}

func TestTempFileName(t *testing.T) {
	dir := t.TempDir()

	first, err := tempFileName(dir, "field_*.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := tempFileName(dir, "field_*.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Errorf("expected distinct scratch files, got %s twice", first)
	}

	for _, name := range []string{first, second} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("scratch file %s not reserved on disk: %v", name, err)
		}
		if filepath.Dir(name) != dir {
			t.Errorf("scratch file %s created outside %s", name, dir)
		}
	}
}

// Scratch files are only ever referenced by name; keeping the create handle
// open would exhaust the descriptor limit on a long-running server.
func TestTempFileNameClosesHandle(t *testing.T) {
	dir := t.TempDir()

	before := openDescriptorCount(t)
	for i := 0; i < 64; i++ {
		if _, err := tempFileName(dir, "leak_"+strconv.Itoa(i)+"_*.pdf"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	after := openDescriptorCount(t)

	if after > before {
		t.Errorf("descriptor count grew from %d to %d across 64 scratch files", before, after)
	}
}
