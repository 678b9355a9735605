package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/automoto/husk/components"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout accepted by Load. Keys that are absent keep their
// current values.
type File struct {
	Simulation Config          `yaml:"simulation"`
	Player     CharacterConfig `yaml:"player"`
	Enemy      EnemyConfig     `yaml:"enemy"`
	Combat     CombatConfig    `yaml:"combat"`
	Arena      ArenaConfig     `yaml:"arena"`
	Debug      DebugConfig     `yaml:"debug"`
}

// Load overlays a YAML document onto the current configuration. Nothing is
// changed unless the merged result validates.
func Load(r io.Reader) error {
	f := File{
		Simulation: *C,
		Player:     Player,
		Enemy:      Enemy,
		Combat:     Combat,
		Arena:      Arena,
		Debug:      Debug,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return err
	}

	sim := f.Simulation
	C = &sim
	Player = f.Player
	Enemy = f.Enemy
	Combat = f.Combat
	Arena = f.Arena
	Debug = f.Debug
	return nil
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer fh.Close()

	if err := Load(fh); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Validate checks the merged configuration.
func (f *File) Validate() error {
	if !(f.Simulation.DeltaTime > 0) || math.IsInf(f.Simulation.DeltaTime, 0) {
		return fmt.Errorf("simulation deltaTime %v must be positive: %w", f.Simulation.DeltaTime, components.ErrInvalidConfiguration)
	}
	if f.Simulation.TicksPerSecond <= 0 {
		return fmt.Errorf("simulation ticksPerSecond %d must be positive: %w", f.Simulation.TicksPerSecond, components.ErrInvalidConfiguration)
	}
	if err := f.Player.validate("player"); err != nil {
		return err
	}
	if err := f.Enemy.validate("enemy"); err != nil {
		return err
	}
	if !(f.Enemy.AttackRate > 0) {
		return fmt.Errorf("enemy attackRate %v must be positive: %w", f.Enemy.AttackRate, components.ErrInvalidConfiguration)
	}
	if f.Enemy.AttackProximity < 0 {
		return fmt.Errorf("enemy attackProximity %v must not be negative: %w", f.Enemy.AttackProximity, components.ErrInvalidConfiguration)
	}
	if !(f.Combat.KnockbackRestThreshold > 0) {
		return fmt.Errorf("combat knockbackRestThreshold %v must be positive: %w", f.Combat.KnockbackRestThreshold, components.ErrInvalidConfiguration)
	}
	if f.Combat.DamageFlashDuration < 0 {
		return fmt.Errorf("combat damageFlashDuration %v must not be negative: %w", f.Combat.DamageFlashDuration, components.ErrInvalidConfiguration)
	}
	if f.Arena.CellSize <= 0 {
		return fmt.Errorf("arena cellSize %d must be positive: %w", f.Arena.CellSize, components.ErrInvalidConfiguration)
	}
	return nil
}

func (c CharacterConfig) validate(name string) error {
	if c.MoveSpeed < 0 || c.Weight < 0 {
		return fmt.Errorf("%s moveSpeed %v and weight %v must not be negative: %w", name, c.MoveSpeed, c.Weight, components.ErrInvalidConfiguration)
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%s size %vx%v must be positive: %w", name, c.Width, c.Height, components.ErrInvalidConfiguration)
	}
	if err := c.Attack.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
