package preset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// Store holds encoded presets by name. Load returns an error wrapping
// ErrPresetNotFound for unknown names.
type Store interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
	Exists(name string) bool
}

// Ext is the file extension of presets on disk.
const Ext = ".json"

// FileStore keeps each preset in <Dir>/<name>.json.
type FileStore struct {
	Dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on the
// first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file a preset is stored in.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.Dir, name+Ext)
}

// Save writes the preset, creating the directory if needed.
func (s *FileStore) Save(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.Path(name), data, 0o644)
}

// Load reads the preset.
func (s *FileStore) Load(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, s.Path(name))
	}
	return data, err
}

// Exists reports whether the preset file exists.
func (s *FileStore) Exists(name string) bool {
	if !ValidName(name) {
		return false
	}
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Names lists the stored presets, sorted. A missing directory has none.
func (s *FileStore) Names() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !isPresetFile(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}

func isPresetFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// gdataObject is the gdata object holding one property per preset.
const gdataObject = "presets"

// GdataStore keeps presets in the platform application data area through
// gdata. A nil manager degrades to an in-memory store, so saving works but
// nothing survives a restart.
type GdataStore struct {
	manager *gdata.Manager
	mem     map[string][]byte
}

// NewGdataStore wraps m, which may be nil.
func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{manager: m, mem: make(map[string][]byte)}
}

// OpenGdataStore opens the application data area of appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("preset: open app data %q: %w", appName, err)
	}
	return NewGdataStore(m), nil
}

// Persistent reports whether presets outlive the process.
func (s *GdataStore) Persistent() bool {
	return s.manager != nil
}

// Save stores the preset.
func (s *GdataStore) Save(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if s.manager == nil {
		s.mem[name] = append([]byte(nil), data...)
		return nil
	}
	return s.manager.SaveObjectProp(gdataObject, name, data)
}

// Load reads the preset.
func (s *GdataStore) Load(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if s.manager == nil {
		data, ok := s.mem[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
		}
		return append([]byte(nil), data...), nil
	}
	if !s.manager.ObjectPropExists(gdataObject, name) {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return s.manager.LoadObjectProp(gdataObject, name)
}

// Exists reports whether the preset is stored.
func (s *GdataStore) Exists(name string) bool {
	if !ValidName(name) {
		return false
	}
	if s.manager == nil {
		_, ok := s.mem[name]
		return ok
	}
	return s.manager.ObjectPropExists(gdataObject, name)
}
