// Package config provides YAML-based game configuration loading and
// difficulty presets for Frogger.
package config

// FroggerConfig contains every constant the Frogger simulation depends on.
// A single value of this type is threaded through all engine functions.
type FroggerConfig struct {
	Field        FieldConfig        `yaml:"field"`
	Pilot        PilotConfig        `yaml:"pilot"`
	Bands        BandsConfig        `yaml:"bands"`
	Scoring      ScoringConfig      `yaml:"scoring"`
	Round        RoundConfig        `yaml:"round"`
	Hazards      HazardsConfig      `yaml:"hazards"`
	LandingZones LandingZonesConfig `yaml:"landing_zones"`
	Lanes        []LaneConfig       `yaml:"lanes"`
	Schedule     []ScheduleGroup    `yaml:"schedule"`
}

// FieldConfig defines the play-field size in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PilotConfig defines the pilot's size, hop sizes and start position.
type PilotConfig struct {
	Radius float64 `yaml:"radius"`
	StepX  float64 `yaml:"step_x"`
	StepY  float64 `yaml:"step_y"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// BandsConfig splits the field vertically into road and river.
type BandsConfig struct {
	RoadBoundary float64 `yaml:"road_boundary"` // pilot y above this is on the road
	SafeStrip    float64 `yaml:"safe_strip"`    // pilot y at or above this is on dry land
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	Advance int `yaml:"advance"` // safe hop up
	Landing int `yaml:"landing"` // settling in a landing zone
}

// RoundConfig defines round completion and difficulty scaling.
type RoundConfig struct {
	Landings       int     `yaml:"landings"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	SettleDelayMS  int     `yaml:"settle_delay_ms"`
}

// HazardsConfig defines hazard sizes and base speed.
type HazardsConfig struct {
	BaseSpeed  float64               `yaml:"base_speed"`
	MouthWidth float64               `yaml:"mouth_width"`
	Sizes      map[string]SizeConfig `yaml:"sizes"`
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LandingZonesConfig places the landing zones along one row.
type LandingZonesConfig struct {
	Y      float64   `yaml:"y"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Xs     []float64 `yaml:"xs"`
}

// LaneConfig describes one lane of identical hazards.
// Hazard ids are the lane name followed by a, b, c, ...
type LaneConfig struct {
	Name      string       `yaml:"name"`
	Kind      string       `yaml:"kind"` // vehicle, plank, crocodile, turtle
	Y         float64      `yaml:"y"`
	Direction string       `yaml:"direction"` // left or right
	Speed     float64      `yaml:"speed,omitempty"`
	Hazards   []LaneHazard `yaml:"hazards"`
}

// LaneHazard places one hazard in its lane.
type LaneHazard struct {
	X    float64   `yaml:"x"`
	Dive []float64 `yaml:"dive,omitempty"` // turtles only: [from, to]
}

// ScheduleGroup advances every hazard of the listed lanes once per period.
type ScheduleGroup struct {
	PeriodMS int      `yaml:"period_ms"`
	Lanes    []string `yaml:"lanes"`
}

// Lane kinds.
const (
	KindVehicle   = "vehicle"
	KindPlank     = "plank"
	KindCrocodile = "crocodile"
	KindTurtle    = "turtle"
)

// Lane directions.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Size returns the configured size for a hazard kind.
func (c HazardsConfig) Size(kind string) SizeConfig {
	return c.Sizes[kind]
}

// LaneSpeed returns the speed a lane starts with before any round bonus.
func (c FroggerConfig) LaneSpeed(l LaneConfig) float64 {
	if l.Speed > 0 {
		return l.Speed
	}
	return c.Hazards.BaseSpeed
}

// HazardID returns the id of the i-th hazard of a lane.
func (l LaneConfig) HazardID(i int) string {
	return l.Name + string(rune('a'+i))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
