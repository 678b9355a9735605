package config

import (
	"image/color"

	"github.com/automoto/husk/components"
)

// Config holds general simulation and window configuration
type Config struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	TicksPerSecond int     `yaml:"ticksPerSecond"`
	DeltaTime      float64 `yaml:"deltaTime"` // fixed step in seconds
}

// CharacterConfig contains the tuning shared by players and enemies
type CharacterConfig struct {
	MoveSpeed float64    `yaml:"moveSpeed"` // units per second
	Weight    float64    `yaml:"weight"`    // knockback decay, units per second
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Tint      color.RGBA `yaml:"tint"`

	Attack components.AttackConfig `yaml:"attack"`
}

// EnemyConfig adds the fixed-rate attack AI
type EnemyConfig struct {
	CharacterConfig `yaml:",inline"`

	AttackRate      float64 `yaml:"attackRate"`      // seconds between attacks
	AttackProximity float64 `yaml:"attackProximity"` // stop chasing inside this distance
}

// CombatConfig contains combat-wide constants
type CombatConfig struct {
	KnockbackRestThreshold float64    `yaml:"knockbackRestThreshold"`
	DamageFlashDuration    float64    `yaml:"damageFlashDuration"`
	DamageFlashColor       color.RGBA `yaml:"damageFlashColor"`
	AttackFlashColor       color.RGBA `yaml:"attackFlashColor"`
}

// ArenaConfig contains collision space settings
type ArenaConfig struct {
	CellSize int    `yaml:"cellSize"`
	Default  string `yaml:"default"` // embedded arena file
}

// DebugConfig contains debug switches
type DebugConfig struct {
	LogCombat    bool `yaml:"logCombat"`
	DrawHitboxes bool `yaml:"drawHitboxes"`
}

// Global configuration instances
var C *Config
var Player CharacterConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Arena ArenaConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	HitboxOn  = color.RGBA{R: 255, G: 255, B: 0, A: 100}
)

func init() {
	Reset()
}

// Reset restores every configuration instance to its default values.
func Reset() {
	C = &Config{
		Width:          640,
		Height:         360,
		TicksPerSecond: 60,
		DeltaTime:      1.0 / 60.0,
	}

	Player = CharacterConfig{
		MoveSpeed: 120,
		Weight:    60,
		Width:     16,
		Height:    16,
		Tint:      LightBlue,
		Attack: components.AttackConfig{
			Duration:       0.45,
			Windup:         0.1,
			Cooldown:       0.15,
			KnockbackForce: 180,
			Stagger:        0.3,
			Invincibility:  0.5,
			ShakeMagnitude: 2,
			HitStutter:     0.05,
			Reach:          14,
			Width:          20,
			Height:         20,
		},
	}

	Enemy = EnemyConfig{
		CharacterConfig: CharacterConfig{
			MoveSpeed: 45,
			Weight:    90,
			Width:     16,
			Height:    16,
			Tint:      Orange,
			Attack: components.AttackConfig{
				Duration:       0.9,
				Windup:         0.4,
				Cooldown:       0.3,
				KnockbackForce: 150,
				Stagger:        0.25,
				Invincibility:  0.8,
				ShakeMagnitude: 3,
				HitStutter:     0.08,
				Reach:          14,
				Width:          22,
				Height:         22,
			},
		},
		AttackRate:      1.5,
		AttackProximity: 18,
	}

	Combat = CombatConfig{
		KnockbackRestThreshold: 0.1,
		DamageFlashDuration:    0.2,
		DamageFlashColor:       Red,
		AttackFlashColor:       White,
	}

	Arena = ArenaConfig{
		CellSize: 16,
		Default:  "arenas/pit.tmx",
	}

	Debug = DebugConfig{}
}
