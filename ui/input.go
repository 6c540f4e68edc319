package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-heuristic/game/types"
	"snake-heuristic/session"
)

var steering = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// CommandForKey maps a raylib key code to a session command. In Idle every
// key starts the game.
func CommandForKey(key int32, phase session.Phase) session.Command {
	if key == rl.KeyQ {
		return session.Quit()
	}
	if phase == session.Idle {
		return session.Start()
	}

	switch key {
	case rl.KeyH:
		return session.ToggleAutoplay()
	case rl.KeyM:
		return session.ToggleSound()
	case rl.KeyEscape, rl.KeyP:
		return session.Pause()
	}
	if dir, ok := steering[key]; ok {
		return session.Steer(dir)
	}
	// any other key still wakes a paused game
	return session.Start()
}

// PollCommands drains the raylib key queue for this frame.
func PollCommands(phase session.Phase) []session.Command {
	var cmds []session.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		cmds = append(cmds, CommandForKey(key, phase))
	}
	return cmds
}
