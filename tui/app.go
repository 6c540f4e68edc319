package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-heuristic/session"
)

// FrameInterval is how often the board is redrawn (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// App runs a session on a terminal screen.
type App struct {
	screen   tcell.Screen
	session  *session.Session
	renderer *Renderer
}

// NewApp wraps an initialized screen. The caller owns screen and must Fini it.
func NewApp(screen tcell.Screen, s *session.Session) *App {
	return &App{
		screen:   screen,
		session:  s,
		renderer: NewRenderer(screen),
	}
}

// Run pumps terminal events into the session and redraws every frame until
// the session quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	a.renderer.Draw(a.session)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			a.handleEvent(ev)

		case <-ticker.C:
			a.session.Update(time.Now())
			a.renderer.Draw(a.session)
		}

		if a.session.Done() {
			return nil
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.session.Handle(CommandForKey(ev, a.session.Phase()), time.Now())
	case *tcell.EventResize:
		a.screen.Sync()
	}
}
