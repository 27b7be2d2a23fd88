package botania

import "botania-ca/internal/core"

// Parameters reports the tunables and the progress of the current game.
func (s *Sim) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.StringParam("layout", "Layout file", c.Layout),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", c.Seed),
				core.FloatParam("density", "Live density", c.Density),
			},
		},
		{
			Name:    "Scoring",
			Summary: "Score is collection cells x min(age, maturity) x multiplier.",
			Params: []core.Parameter{
				core.IntParam("dandelifeon_x", "Dandelifeon X", c.Dandelifeon.X),
				core.IntParam("dandelifeon_y", "Dandelifeon Y", c.Dandelifeon.Y),
				core.IntParam("max_maturity", "Max maturity", c.MaxMaturity),
				core.IntParam("value_multiplier", "Value multiplier", c.ValueMultiplier),
				core.IntParam("max_generations", "Max generations", c.MaxGenerations),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("age", "Age", s.game.Age()),
				core.IntParam("score", "Score", s.game.Score()),
				core.StringParam("state", "State", s.game.State().String()),
			},
		},
	}}
}

// SetIntParameter updates an integer setting. Changes apply on the next Reset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		if value <= 0 {
			return false
		}
		s.cfg.Width = value
	case "h":
		if value <= 0 {
			return false
		}
		s.cfg.Height = value
	case "seed":
		s.cfg.Seed = int64(value)
	case "dandelifeon_x":
		if value < 0 {
			return false
		}
		s.cfg.Dandelifeon.X = value
	case "dandelifeon_y":
		if value < 0 {
			return false
		}
		s.cfg.Dandelifeon.Y = value
	case "max_maturity":
		if value <= 0 {
			return false
		}
		s.cfg.MaxMaturity = value
	case "value_multiplier":
		if value <= 0 {
			return false
		}
		s.cfg.ValueMultiplier = value
	case "max_generations":
		if value <= 0 {
			return false
		}
		s.cfg.MaxGenerations = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates the seeding density, accepted in [0, 1].
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	s.cfg.Density = value
	return true
}
