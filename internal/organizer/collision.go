package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxProbes bounds the suffix search for a free name.
const maxProbes = 10000

// SplitName splits a filename into base and extension at the last dot.
// A name without a dot has an empty extension. A leading-dot name like
// ".env" splits into an empty base and the extension "env".
func SplitName(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// Resolver hands out collision-free destination paths. It remembers
// every path it returns, so a dry run over colliding inputs previews
// exactly the names a real run would pick.
type Resolver struct {
	claimed map[string]bool
}

// NewResolver returns a Resolver with an empty claimed set.
func NewResolver() *Resolver {
	return &Resolver{claimed: make(map[string]bool)}
}

// taken reports whether path is unavailable, either on disk or already
// claimed this run. Lstat keeps a dangling symlink blocking its name.
func (r *Resolver) taken(path string) bool {
	if r.claimed[path] {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}

// Resolve returns a path for filename inside targetDir that neither
// exists on disk nor was handed out earlier in the run. The plain name
// is tried first, then base_1.ext, base_2.ext and so on; extensionless
// names get README_1 style suffixes. Probing stops at maxProbes.
func (r *Resolver) Resolve(targetDir, filename string) (string, error) {
	candidate := filepath.Join(targetDir, filename)
	if !r.taken(candidate) {
		r.claimed[candidate] = true
		return candidate, nil
	}

	base, ext := SplitName(filename)
	for n := 1; n <= maxProbes; n++ {
		var renamed string
		if ext != "" {
			renamed = fmt.Sprintf("%s_%d.%s", base, n, ext)
		} else {
			renamed = fmt.Sprintf("%s_%d", filename, n)
		}
		candidate = filepath.Join(targetDir, renamed)
		if !r.taken(candidate) {
			r.claimed[candidate] = true
			return candidate, nil
		}
	}

	return "", &MoveError{
		Type: CollisionExhausted,
		Path: filepath.Join(targetDir, filename),
		Err:  fmt.Errorf("no free name after %d attempts", maxProbes),
	}
}
