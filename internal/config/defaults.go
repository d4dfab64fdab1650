package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in Frogger configuration.
// It mirrors defaults/frogger.yaml and is used when the embedded file cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	three := func() []LaneHazard {
		return []LaneHazard{{X: 0}, {X: 200}, {X: 400}}
	}

	return FroggerConfig{
		Field: FieldConfig{Width: 600, Height: 600},
		Pilot: PilotConfig{
			Radius: 20,
			StepX:  5,
			StepY:  50,
			StartX: 250,
			StartY: 580,
		},
		Bands: BandsConfig{
			RoadBoundary: 350,
			SafeStrip:    330,
		},
		Scoring: ScoringConfig{
			Advance: 10,
			Landing: 100,
		},
		Round: RoundConfig{
			Landings:       5,
			SpeedIncrement: 0.2,
			SettleDelayMS:  100,
		},
		Hazards: HazardsConfig{
			BaseSpeed:  0.5,
			MouthWidth: 15,
			Sizes: map[string]SizeConfig{
				KindVehicle:   {Width: 50, Height: 40},
				KindPlank:     {Width: 70, Height: 40},
				KindCrocodile: {Width: 80, Height: 40},
				KindTurtle:    {Width: 50, Height: 40},
			},
		},
		LandingZones: LandingZonesConfig{
			Y:      50,
			Width:  104,
			Height: 50,
			Xs:     []float64{20, 134, 248, 362, 476},
		},
		Lanes: []LaneConfig{
			{Name: "car1", Kind: KindVehicle, Y: 510, Direction: DirectionRight, Hazards: three()},
			{Name: "car2", Kind: KindVehicle, Y: 460, Direction: DirectionRight, Hazards: three()},
			{Name: "car3", Kind: KindVehicle, Y: 410, Direction: DirectionLeft, Hazards: three()},
			{Name: "car4", Kind: KindVehicle, Y: 360, Direction: DirectionLeft, Hazards: three()},
			{
				Name:      "turtle1",
				Kind:      KindTurtle,
				Y:         260,
				Direction: DirectionRight,
				Hazards: []LaneHazard{
					{X: 0, Dive: []float64{100, 150}},
					{X: 100, Dive: []float64{50, 100}},
					{X: 200, Dive: []float64{400, 450}},
					{X: 300, Dive: []float64{450, 500}},
					{X: 400, Dive: []float64{200, 250}},
				},
			},
			{Name: "plank1", Kind: KindPlank, Y: 210, Direction: DirectionLeft, Hazards: three()},
			{Name: "plank2", Kind: KindPlank, Y: 160, Direction: DirectionRight, Hazards: three()},
			{Name: "croc1", Kind: KindCrocodile, Y: 110, Direction: DirectionLeft, Hazards: three()},
		},
		Schedule: []ScheduleGroup{
			{PeriodMS: 50, Lanes: []string{"car1", "car3"}},
			{PeriodMS: 30, Lanes: []string{"car2", "car4"}},
			{PeriodMS: 50, Lanes: []string{"plank1", "plank2"}},
			{PeriodMS: 40, Lanes: []string{"turtle1"}},
			{PeriodMS: 30, Lanes: []string{"croc1"}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
