package assets

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/automoto/husk/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Spawns">
`

const testMapFooter = ` </objectgroup>
</map>
`

func spawnObject(id, faction string, x, y string) string {
	return `  <object id="` + id + `" name="s` + id + `" x="` + x + `" y="` + y + `">
   <properties>
    <property name="faction" value="` + faction + `"/>
   </properties>
   <point/>
  </object>
`
}

func TestLoadEmbeddedArena(t *testing.T) {
	arena, err := LoadEmbeddedArena("pit")
	require.NoError(t, err)

	assert.Equal(t, "pit", arena.Name)
	assert.Equal(t, 640, arena.Width)
	assert.Equal(t, 384, arena.Height)
	assert.Len(t, arena.Spawns, 4)
	assert.Len(t, arena.SpawnsOf(components.FactionPlayer), 1)
	assert.Len(t, arena.SpawnsOf(components.FactionEnemy), 3)

	player := arena.SpawnsOf(components.FactionPlayer)[0]
	assert.Equal(t, 320.0, player.X)
	assert.Equal(t, 192.0, player.Y)
}

func TestEmbeddedArenas(t *testing.T) {
	names, err := EmbeddedArenas()
	require.NoError(t, err)
	assert.Equal(t, []string{"duel", "pit"}, names)

	for _, name := range names {
		_, err := LoadEmbeddedArena(name)
		assert.NoError(t, err, name)
	}
}

func TestLoadArena(t *testing.T) {
	tests := []struct {
		name    string
		objects string
		wantErr bool
	}{
		{
			name:    "player and enemy",
			objects: spawnObject("1", "player", "16", "16") + spawnObject("2", "enemy", "64", "64"),
		},
		{
			name:    "no player spawn",
			objects: spawnObject("1", "enemy", "16", "16"),
			wantErr: true,
		},
		{
			name:    "unknown faction",
			objects: spawnObject("1", "player", "16", "16") + spawnObject("2", "ghost", "32", "32"),
			wantErr: true,
		},
		{
			name:    "spawn outside the map",
			objects: spawnObject("1", "player", "400", "16"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"arena.tmx": {Data: []byte(testMapHeader + tt.objects + testMapFooter)},
			}
			arena, err := LoadArena(fsys, "arena.tmx")
			if tt.wantErr {
				assert.ErrorIs(t, err, components.ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 160, arena.Width)
			assert.Len(t, arena.Spawns, 2)
		})
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "missing.tmx")
	assert.Error(t, err)
}

func TestFindArena(t *testing.T) {
	arena, err := FindArena("duel")
	require.NoError(t, err)
	assert.Equal(t, "duel", arena.Name)

	data, err := arenaFS.ReadFile("arenas/pit.tmx")
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "custom.tmx")
	require.NoError(t, os.WriteFile(file, data, 0o644))

	arena, err = FindArena(file)
	require.NoError(t, err)
	assert.Len(t, arena.SpawnsOf(components.FactionEnemy), 3)

	_, err = FindArena("nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded arenas: duel, pit")
}
