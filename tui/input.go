package tui

import (
	"github.com/gdamore/tcell/v2"

	"snake-heuristic/game/types"
	"snake-heuristic/session"
)

// CommandForKey maps a key event to a session command. In Idle every key
// except quit starts the game.
func CommandForKey(ev *tcell.EventKey, phase session.Phase) session.Command {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		return session.Quit()
	}
	if phase == session.Idle {
		return session.Start()
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return session.Steer(types.Up)
	case tcell.KeyDown:
		return session.Steer(types.Down)
	case tcell.KeyLeft:
		return session.Steer(types.Left)
	case tcell.KeyRight:
		return session.Steer(types.Right)
	case tcell.KeyEscape:
		return session.Pause()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return session.Steer(types.Up)
		case 's', 'S':
			return session.Steer(types.Down)
		case 'a', 'A':
			return session.Steer(types.Left)
		case 'd', 'D':
			return session.Steer(types.Right)
		case 'h', 'H':
			return session.ToggleAutoplay()
		case 'm', 'M':
			return session.ToggleSound()
		case 'p', 'P':
			return session.Pause()
		}
	}
	return session.Start()
}
