package lut

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/errgo.v1"
)

//go:embed luts/*.lut
var embedded embed.FS

// ErrNotFound is the cause of errors returned when a named table does not
// exist in the manager's source.
var ErrNotFound = errgo.New("lut not found")

// Manager serves named lookup tables from a single source, either the
// embedded set or a directory on disk. It is an explicit value the caller
// constructs once and passes around; there is no package-level registry.
type Manager struct {
	fsys fs.FS
	root string
}

// NewManager returns a manager backed by the embedded table set.
func NewManager() *Manager {
	return &Manager{fsys: embedded, root: "luts"}
}

// NewDirManager returns a manager that serves .lut files from a directory.
func NewDirManager(dir string) *Manager {
	return &Manager{fsys: os.DirFS(dir), root: "."}
}

// Names returns the available table names, sorted, without the .lut suffix.
func (m *Manager) Names() ([]string, error) {
	entries, err := fs.ReadDir(m.fsys, m.root)
	if err != nil {
		return nil, errgo.Notef(err, "cannot list luts")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".lut") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".lut"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and decodes the named table. A missing table is reported with
// an ErrNotFound cause, a malformed one with ErrInvalidData; the manager's
// state is never affected by a failed load.
func (m *Manager) Load(name string) (*Data, error) {
	buf, err := fs.ReadFile(m.fsys, path.Join(m.root, name+".lut"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errgo.WithCausef(nil, ErrNotFound, "lut %q not found", name)
		}
		return nil, errgo.Notef(err, "cannot read lut %q", name)
	}
	return Parse(name, buf)
}
