package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/husk/components"
	"github.com/lafriks/go-tiled"
)

//go:embed arenas/*.tmx
var arenaFS embed.FS

// SpawnGroup is the object group holding character spawn points.
const SpawnGroup = "Spawns"

// Spawn is a character spawn point in world coordinates.
type Spawn struct {
	Name    string
	Faction components.Faction
	X, Y    float64
}

// Arena is the authored layout of a combat scene.
type Arena struct {
	Name          string
	Width, Height int // world units
	Spawns        []Spawn
}

// SpawnsOf returns the spawns of the given faction in file order.
func (a *Arena) SpawnsOf(f components.Faction) []Spawn {
	var out []Spawn
	for _, s := range a.Spawns {
		if s.Faction == f {
			out = append(out, s)
		}
	}
	return out
}

// LoadArena parses a Tiled map. It takes an fs.FS so callers can pass the
// embedded arenas or os.DirFS for files on disk.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			faction, err := components.ParseFaction(o.Properties.GetString("faction"))
			if err != nil {
				return nil, fmt.Errorf("arena %s spawn %q: %w", tmxPath, o.Name, err)
			}
			if o.X < 0 || o.Y < 0 || o.X > float64(arena.Width) || o.Y > float64(arena.Height) {
				return nil, fmt.Errorf("arena %s spawn %q at (%v, %v) is outside the map: %w",
					tmxPath, o.Name, o.X, o.Y, components.ErrInvalidConfiguration)
			}
			arena.Spawns = append(arena.Spawns, Spawn{
				Name:    o.Name,
				Faction: faction,
				X:       o.X,
				Y:       o.Y,
			})
		}
	}

	if err := arena.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return arena, nil
}

// LoadEmbeddedArena loads one of the arenas compiled into the binary.
func LoadEmbeddedArena(name string) (*Arena, error) {
	if !strings.HasPrefix(name, "arenas/") {
		name = path.Join("arenas", name)
	}
	if path.Ext(name) == "" {
		name += ".tmx"
	}
	return LoadArena(arenaFS, name)
}

// FindArena loads name from disk when such a file exists, and otherwise as
// an embedded arena. An unknown name reports the embedded arenas.
func FindArena(name string) (*Arena, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return LoadArena(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	arena, err := LoadEmbeddedArena(name)
	if err != nil {
		names, listErr := EmbeddedArenas()
		if listErr != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w (embedded arenas: %s)", err, strings.Join(names, ", "))
	}
	return arena, nil
}

// EmbeddedArenas lists the names of the arenas compiled into the binary.
func EmbeddedArenas() ([]string, error) {
	matches, err := fs.Glob(arenaFS, "arenas/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob arenas: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// Validate checks an arena built in code the same way LoadArena checks a
// file.
func (a *Arena) Validate() error {
	if a == nil {
		return fmt.Errorf("nil arena: %w", components.ErrInvalidConfiguration)
	}
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("arena %s size %dx%d: %w", a.Name, a.Width, a.Height, components.ErrInvalidConfiguration)
	}
	if len(a.SpawnsOf(components.FactionPlayer)) == 0 {
		return fmt.Errorf("arena %s has no player spawn: %w", a.Name, components.ErrInvalidConfiguration)
	}
	return nil
}
