package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"snake-heuristic/game/types"
	"snake-heuristic/session"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Game.Seed = 5
	cfg.Game.SoundsOn = false
	s, err := session.New(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	require.NoError(t, err)
	return s
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestCommandForKey(t *testing.T) {
	require.Equal(t, session.Quit(), CommandForKey(key(tcell.KeyRune, 'q'), session.Playing))
	require.Equal(t, session.Quit(), CommandForKey(key(tcell.KeyCtrlC, 0), session.Idle))
	require.Equal(t, session.Start(), CommandForKey(key(tcell.KeyUp, 0), session.Idle))

	require.Equal(t, session.Steer(types.Up), CommandForKey(key(tcell.KeyUp, 0), session.Playing))
	require.Equal(t, session.Steer(types.Left), CommandForKey(key(tcell.KeyRune, 'a'), session.Playing))
	require.Equal(t, session.Steer(types.Down), CommandForKey(key(tcell.KeyRune, 'S'), session.Playing))
	require.Equal(t, session.ToggleAutoplay(), CommandForKey(key(tcell.KeyRune, 'h'), session.Playing))
	require.Equal(t, session.ToggleSound(), CommandForKey(key(tcell.KeyRune, 'm'), session.Playing))
	require.Equal(t, session.Pause(), CommandForKey(key(tcell.KeyEscape, 0), session.Playing))
	require.Equal(t, session.Start(), CommandForKey(key(tcell.KeyRune, 'z'), session.Playing))
}

func TestRenderer_DrawsBoard(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)
	r := NewRenderer(screen)
	r.Draw(s)

	g := s.Game()
	hx, hy := r.cellAt(g.Head())
	mainc, _, _, _ := screen.GetContent(hx, hy)
	require.Equal(t, '▶', mainc)

	tx, ty := r.cellAt(g.Tail())
	mainc, _, style, _ := screen.GetContent(tx, ty)
	require.Equal(t, '█', mainc)
	fg, _, _ := style.Decompose()
	require.Equal(t, rgbBody, fg)

	food, ok := g.FoodPosition()
	require.True(t, ok)
	want, _ := GlyphFor(g.Cell(food))
	fx, fy := r.cellAt(food)
	// the idle prompt is written over the middle row
	if fy != r.originY+g.Rows()/2 {
		mainc, _, _, _ = screen.GetContent(fx, fy)
		require.Equal(t, want.Rune, mainc)
	}

	mainc, _, _, _ = screen.GetContent(0, 0)
	require.Equal(t, '┌', mainc)
}

func TestApp_QuitsOnKey(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)
	app := NewApp(screen, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, <-errc)
	require.True(t, s.Done())
}

func TestApp_StopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	app := NewApp(screen, newSession(t))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx) }()

	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)
}
