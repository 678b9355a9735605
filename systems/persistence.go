package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/husk/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the client settings stored on disk
type SavedSettings struct {
	DrawHitboxes bool `json:"drawHitboxes"`
	LogCombat    bool `json:"logCombat"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "husk",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil settings when
// nothing was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the live debug switches.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		DrawHitboxes: cfg.Debug.DrawHitboxes,
		LogCombat:    cfg.Debug.LogCombat,
	})
}

// ApplySavedSettings copies loaded settings into the debug configuration.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.DrawHitboxes = saved.DrawHitboxes
	cfg.Debug.LogCombat = saved.LogCombat
}

// UpdateSettings handles the debug overlay toggle and persists the change.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	if !input.ToggleDebug {
		return
	}
	input.ToggleDebug = false
	cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	SaveCurrentSettings()
}
