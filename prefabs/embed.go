package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed rounds/*.yaml
var RoundsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadRound returns the raw preset, preferring prefabs/rounds on disk so
// edits show up without a rebuild.
func LoadRound(name string) ([]byte, error) {
	clean := cleanPath(name, "rounds", ".yaml")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return RoundsFS.ReadFile(clean)
}

// LoadScript returns the raw tengo source, disk first.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name, "scripts", ".tengo")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// RoundNames lists the embedded presets by base name.
func RoundNames() ([]string, error) {
	matches, err := fs.Glob(RoundsFS, "rounds/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list rounds: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// cleanPath maps "easy", "easy.yaml", "rounds/easy.yaml" and
// "prefabs/rounds/easy.yaml" onto "rounds/easy.yaml".
func cleanPath(name, dir, ext string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, dir+"/"); ok {
		s = after
	}
	if path.Ext(s) == "" {
		s += ext
	}
	return fmt.Sprintf("%s/%s", dir, s)
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
