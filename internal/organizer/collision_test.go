package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		wantBase string
		wantExt  string
	}{
		{"a.txt", "a", "txt"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"README", "README", ""},
		{".env", "", "env"},
		{"notes.", "notes", ""},
		{"Screen Shot 1.00.00.png", "Screen Shot 1.00.00", "png"},
	}

	for _, tt := range tests {
		base, ext := SplitName(tt.name)
		if base != tt.wantBase || ext != tt.wantExt {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)",
				tt.name, base, ext, tt.wantBase, tt.wantExt)
		}
	}
}

func TestResolvePlainNameWhenFree(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortd-collision-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	resolver := NewResolver()
	path, err := resolver.Resolve(tempDir, "a.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if path != filepath.Join(tempDir, "a.txt") {
		t.Errorf("expected plain name, got %q", path)
	}
}

func TestResolveSuffixSequence(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortd-collision-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create collision file: %v", err)
	}

	resolver := NewResolver()

	first, err := resolver.Resolve(tempDir, "a.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(first) != "a_1.txt" {
		t.Errorf("first collision: expected a_1.txt, got %q", filepath.Base(first))
	}

	// The first result is only claimed, not on disk, and still blocks.
	second, err := resolver.Resolve(tempDir, "a.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(second) != "a_2.txt" {
		t.Errorf("second collision: expected a_2.txt, got %q", filepath.Base(second))
	}
}

func TestResolveExtensionlessName(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortd-collision-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, "README"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create collision file: %v", err)
	}

	resolver := NewResolver()
	path, err := resolver.Resolve(tempDir, "README")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(path) != "README_1" {
		t.Errorf("expected README_1, got %q", filepath.Base(path))
	}
}

func TestResolveDotfileName(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortd-collision-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, ".env"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create collision file: %v", err)
	}

	resolver := NewResolver()
	path, err := resolver.Resolve(tempDir, ".env")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(path) != "_1.env" {
		t.Errorf("expected _1.env, got %q", filepath.Base(path))
	}
}

func TestResolveDanglingSymlinkBlocksName(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortd-collision-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	link := filepath.Join(tempDir, "b.txt")
	if err := os.Symlink(filepath.Join(tempDir, "gone"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolver := NewResolver()
	path, err := resolver.Resolve(tempDir, "b.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Base(path) != "b_1.txt" {
		t.Errorf("expected b_1.txt, got %q", filepath.Base(path))
	}
}

func TestResolveExhaustion(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortd-collision-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Claim every candidate up front so probing runs out without
	// creating ten thousand files.
	resolver := NewResolver()
	resolver.claimed[filepath.Join(tempDir, "x.bin")] = true
	for n := 1; n <= maxProbes; n++ {
		resolver.claimed[filepath.Join(tempDir, "x_"+itoa(n)+".bin")] = true
	}

	_, err = resolver.Resolve(tempDir, "x.bin")
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	var moveErr *MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("expected MoveError, got %T", err)
	}
	if moveErr.Type != CollisionExhausted {
		t.Errorf("expected CollisionExhausted, got %s", moveErr.Type)
	}
}

func TestResolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	properties.Property("resolved paths are unique and avoid existing files", prop.ForAll(
		func(existing, resolutions int) bool {
			tempDir, err := os.MkdirTemp("", "sortd-collision-prop-*")
			if err != nil {
				t.Logf("failed to create temp dir: %v", err)
				return false
			}
			defer os.RemoveAll(tempDir)

			// Pre-create the plain name and the first few suffixes.
			occupied := make(map[string]bool)
			for i := 0; i < existing; i++ {
				name := "data.txt"
				if i > 0 {
					name = "data_" + itoa(i) + ".txt"
				}
				path := filepath.Join(tempDir, name)
				if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
					t.Logf("failed to create %s: %v", name, err)
					return false
				}
				occupied[path] = true
			}

			resolver := NewResolver()
			seen := make(map[string]bool)
			for i := 0; i < resolutions; i++ {
				path, err := resolver.Resolve(tempDir, "data.txt")
				if err != nil {
					t.Logf("Resolve failed: %v", err)
					return false
				}
				if occupied[path] {
					t.Logf("resolved path %q already exists on disk", path)
					return false
				}
				if seen[path] {
					t.Logf("resolved path %q handed out twice", path)
					return false
				}
				seen[path] = true
			}
			return true
		},
		gen.IntRange(0, 5),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}
