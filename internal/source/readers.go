package source

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// OSFileSystem reads files from the local file system.
type OSFileSystem struct{}

// ReadFileText returns the content of the file at path.
func (OSFileSystem) ReadFileText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Resources looks up text resources in an ordered list of bundles, typically
// embed.FS values. The first bundle holding a matching file wins.
type Resources struct {
	bundles []fs.FS
}

// NewResources returns a reader over bundles, consulted in order.
func NewResources(bundles ...fs.FS) *Resources {
	return &Resources{bundles: bundles}
}

// ReadResourceText returns the first file whose path ends with name at a
// segment boundary. The path is also compared in dotted form, so
// "inputs/settings.json" matches "settings.json" and "inputs.settings.json"
// but not "gs.json". Within a bundle files are visited in lexical order.
func (r *Resources) ReadResourceText(name string) (string, error) {
	for _, bundle := range r.bundles {
		path, err := findBySuffix(bundle, name)
		if err != nil {
			return "", fmt.Errorf("error searching resource %q: %w", name, err)
		}
		if path == "" {
			continue
		}

		b, err := fs.ReadFile(bundle, path)
		if err != nil {
			return "", fmt.Errorf("error reading resource %q: %w", path, err)
		}
		return string(b), nil
	}

	return "", fmt.Errorf("resource %q: %w", name, fs.ErrNotExist)
}

func findBySuffix(bundle fs.FS, name string) (string, error) {
	var found string
	err := fs.WalkDir(bundle, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matchesResource(path, name) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

// matchesResource reports whether name is a suffix of path that starts at a
// segment boundary, either in slash form or in dotted form.
func matchesResource(path, name string) bool {
	if path == name || strings.HasSuffix(path, "/"+name) {
		return true
	}
	dotted := strings.ReplaceAll(path, "/", ".")
	return dotted == name || strings.HasSuffix(dotted, "."+name)
}

// OSEnvironment enumerates the variables of the current process.
type OSEnvironment struct{}

// Environ returns all environment variables. Entries without a name are
// skipped.
func (OSEnvironment) Environ() map[string]string {
	vars := os.Environ()
	env := make(map[string]string, len(vars))
	for _, kv := range vars {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = value
	}
	return env
}
