package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/milk9111/splatter/splatter"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var assetsFS embed.FS

const splatterTableFile = "splatters.yaml"

// ErrLayout reports a splatter table whose shape does not match the fixed
// effect/size/frame layout.
var ErrLayout = errors.New("assets: splatter table layout")

// Splatters is the embedded splatter table, parsed on first use. A broken
// embedded table is a packaging defect and stops the process.
var Splatters = sync.OnceValue(func() *splatter.Table {
	return loadTableFromAssets(splatterTableFile)
})

type tableSpec struct {
	Splatters []splatterSpec `yaml:"splatters"`
}

type splatterSpec struct {
	ID      int      `yaml:"id"`
	Regular []string `yaml:"regular"`
	Large   []string `yaml:"large"`
}

// ParseTable decodes a YAML splatter table and checks it against the fixed
// layout: every effect id present exactly once, four frames per size.
func ParseTable(data []byte) (*splatter.Table, error) {
	var spec tableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	var (
		tbl  splatter.Table
		seen [splatter.EffectCount]bool
	)
	for _, s := range spec.Splatters {
		id := splatter.EffectID(s.ID)
		if !id.Valid() {
			return nil, fmt.Errorf("%w: unknown effect id %d", ErrLayout, s.ID)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate effect id %d", ErrLayout, s.ID)
		}
		seen[id] = true

		for size, frames := range [splatter.SizeCount][]string{splatter.Regular: s.Regular, splatter.Large: s.Large} {
			if len(frames) != splatter.FrameCount {
				return nil, fmt.Errorf("%w: effect %d %v has %d frames, want %d",
					ErrLayout, s.ID, splatter.Size(size), len(frames), splatter.FrameCount)
			}
			for i, f := range frames {
				tbl[id][size][i] = strings.TrimSpace(f)
			}
		}
	}
	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: missing effect id %d", ErrLayout, id)
		}
	}
	return &tbl, nil
}

// LoadTable reads a splatter table from disk, or the embedded table when
// path is empty. A path that does not exist on disk is looked up in the
// embedded assets, so "assets/splatters.yaml" works from any directory.
func LoadTable(path string) (*splatter.Table, error) {
	name := path
	var (
		data []byte
		err  error
	)
	if path == "" {
		name = splatterTableFile
		data, err = LoadFile(name)
	} else {
		data, err = os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			data, err = LoadFile(path)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}

	tbl, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("assets: parse %s: %w", name, err)
	}
	return tbl, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

func loadTableFromAssets(path string) *splatter.Table {
	data, err := LoadFile(path)
	if err != nil {
		log.Fatalf("embed: read %s: %v", path, err)
	}
	tbl, err := ParseTable(data)
	if err != nil {
		log.Fatalf("embed: parse %s: %v", path, err)
	}
	return tbl
}

// cleanAssetPath maps a disk-style path onto the embedded FS. Everything up
// to the last assets/ directory is dropped; other absolute paths keep only
// their base name.
func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	if filepath.IsAbs(path) {
		return filepath.Base(path)
	}
	return s
}
