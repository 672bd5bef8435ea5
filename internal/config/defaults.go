package config

import _ "embed"

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the built-in yard. It mirrors the embedded YAML
// and exists as a last resort should the embedded copy fail to parse.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		World: WorldDims{Width: 1094, Height: 1112},
		Player: PlayerConfig{
			X: 500, Y: 700, Width: 16, Height: 32,
			Speed: 180,
		},
		Tuning: TuningConfig{
			BumpCooldownMS: 400,
			AnimationMS:    600,
		},
		Obstacles: []RectConfig{
			{X: 0, Y: 0, Width: 1094, Height: 30},
			{X: 0, Y: 1082, Width: 1094, Height: 30},
			{X: 0, Y: 30, Width: 30, Height: 1052},
			{X: 1064, Y: 30, Width: 30, Height: 1052},
			{X: 200, Y: 200, Width: 180, Height: 120},
			{X: 600, Y: 500, Width: 250, Height: 24},
		},
		Actors: []ActorConfig{
			{
				ID: "rex", Kind: "npc",
				X: 290, Y: 390, Width: 20, Height: 20,
				Profile: ProfileConfig{Radius: 100, EnterAction: "bark", ExitAction: "calm"},
			},
			{
				ID: "biscuit", Kind: "npc",
				X: 760, Y: 820, Width: 20, Height: 20,
				Profile: ProfileConfig{Radius: 140, EnterAction: "growl", ExitAction: "calm", AnimationMS: 900},
			},
			{
				ID: "mailbox", Kind: "mailbox",
				X: 1020, Y: 540, Width: 18, Height: 26,
				Profile: ProfileConfig{Radius: 60, EnterAction: "hush_ambient", ExitAction: "unhush_ambient"},
			},
		},
	}
}
