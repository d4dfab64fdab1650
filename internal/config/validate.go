package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration describes a playable field.
func (c FroggerConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return invalid("field size must be positive")
	}

	p := c.Pilot
	if p.Radius <= 0 || p.StepX <= 0 || p.StepY <= 0 {
		return invalid("pilot radius and steps must be positive")
	}
	if p.StartX < p.Radius || p.StartX > c.Field.Width-p.Radius ||
		p.StartY < p.Radius || p.StartY > c.Field.Height-p.Radius {
		return invalid("pilot start (%g, %g) is outside the field", p.StartX, p.StartY)
	}
	if c.Bands.SafeStrip > c.Bands.RoadBoundary {
		return invalid("safe strip %g lies below road boundary %g", c.Bands.SafeStrip, c.Bands.RoadBoundary)
	}

	if c.Round.Landings <= 0 {
		return invalid("round.landings must be positive")
	}
	if c.Round.Landings > len(c.LandingZones.Xs) {
		return invalid("round needs %d landings but only %d landing zones exist",
			c.Round.Landings, len(c.LandingZones.Xs))
	}
	if c.Round.SpeedIncrement < 0 {
		return invalid("round.speed_increment must not be negative")
	}
	if c.Hazards.BaseSpeed <= 0 {
		return invalid("hazards.base_speed must be positive")
	}
	if c.LandingZones.Width < 2*p.Radius || c.LandingZones.Height < 2*p.Radius {
		return invalid("landing zones are too small for the pilot")
	}

	for _, kind := range []string{KindVehicle, KindPlank, KindCrocodile, KindTurtle} {
		size, ok := c.Hazards.Sizes[kind]
		if !ok {
			return invalid("missing size for %s", kind)
		}
		if size.Width <= 0 || size.Height <= 0 || size.Width >= c.Field.Width {
			return invalid("size for %s must be positive and narrower than the field", kind)
		}
	}
	if c.Hazards.MouthWidth < 0 || c.Hazards.MouthWidth > c.Hazards.Size(KindCrocodile).Width {
		return invalid("crocodile mouth must fit inside the crocodile")
	}

	lanes := make(map[string]bool, len(c.Lanes))
	for _, l := range c.Lanes {
		if err := c.validateLane(l); err != nil {
			return err
		}
		if lanes[l.Name] {
			return invalid("duplicate lane %q", l.Name)
		}
		lanes[l.Name] = true
	}

	for i, g := range c.Schedule {
		if g.PeriodMS <= 0 {
			return invalid("schedule group %d: period must be positive", i)
		}
		for _, name := range g.Lanes {
			if !lanes[name] {
				return invalid("schedule group %d: unknown lane %q", i, name)
			}
		}
	}

	return nil
}

func (c FroggerConfig) validateLane(l LaneConfig) error {
	if l.Name == "" {
		return invalid("lane without a name")
	}
	switch l.Kind {
	case KindVehicle, KindPlank, KindCrocodile, KindTurtle:
	default:
		return invalid("lane %q: unknown kind %q", l.Name, l.Kind)
	}
	if l.Direction != DirectionLeft && l.Direction != DirectionRight {
		return invalid("lane %q: direction must be left or right", l.Name)
	}
	if len(l.Hazards) > 26 {
		return invalid("lane %q: at most 26 hazards per lane", l.Name)
	}
	if l.Speed < 0 {
		return invalid("lane %q: speed must not be negative", l.Name)
	}

	span := c.Field.Width - c.Hazards.Size(l.Kind).Width
	for i, h := range l.Hazards {
		if h.X < 0 || h.X >= span {
			return invalid("lane %q: hazard %d starts outside [0, %g)", l.Name, i, span)
		}
		if l.Kind != KindTurtle {
			continue
		}
		if len(h.Dive) != 2 || h.Dive[0] > h.Dive[1] {
			return invalid("lane %q: turtle %d needs a dive range [from, to]", l.Name, i)
		}
	}
	return nil
}
