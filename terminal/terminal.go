// Package terminal presents the game in a text terminal using tcell.
// Each character cell shows two vertically stacked pixels with the upper
// half block: foreground is the even row, background the odd row.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"vectoroids/game"
)

const (
	// Terminals report no key release, so steering keys count as held for
	// this long after their last press or repeat.
	holdWindow = 250 * time.Millisecond

	halfBlock = '▀'
)

// Terminal implements game.Display on a tcell screen
type Terminal struct {
	screen        tcell.Screen
	width, height int
	interval      time.Duration

	events chan tcell.Event

	// last press of each steering key
	thrustAt, leftAt, rightAt time.Time

	// edge-triggered presses waiting for the next Poll
	fire, restart, debug, exit bool

	lastPresent time.Time
	now         func() time.Time
	sleep       func(time.Duration)
}

// New wraps an initialized screen. Events must be fed with HandleEvent or
// by starting the pump with Listen.
func New(screen tcell.Screen, width, height int, interval time.Duration) *Terminal {
	return &Terminal{
		screen:   screen,
		width:    width,
		height:   height,
		interval: interval,
		events:   make(chan tcell.Event, 64),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Open initializes the controlling terminal and starts reading its events
func Open(width, height int, interval time.Duration) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := New(screen, width, height, interval)
	t.Listen()
	return t, nil
}

// Listen pumps screen events into the terminal until the screen is closed
func (t *Terminal) Listen() {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Size returns the framebuffer dimensions
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// Poll drains pending events and returns the input for the next frame
func (t *Terminal) Poll() game.Input {
loop:
	for {
		select {
		case ev := <-t.events:
			t.HandleEvent(ev)
		default:
			break loop
		}
	}

	now := t.now()
	in := game.Input{
		Thrust:      held(now, t.thrustAt),
		TurnLeft:    held(now, t.leftAt),
		TurnRight:   held(now, t.rightAt),
		Fire:        t.fire,
		Restart:     t.restart,
		ToggleDebug: t.debug,
		Exit:        t.exit,
	}
	t.fire, t.restart, t.debug = false, false, false
	return in
}

func held(now, at time.Time) bool {
	return !at.IsZero() && now.Sub(at) < holdWindow
}

// HandleEvent applies a single screen event to the input state
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	now := t.now()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.exit = true
	case tcell.KeyUp:
		t.thrustAt = now
	case tcell.KeyLeft:
		t.leftAt = now
	case tcell.KeyRight:
		t.rightAt = now
	case tcell.KeyF1:
		t.debug = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			t.thrustAt = now
		case 'a', 'h':
			t.leftAt = now
		case 'd', 'l':
			t.rightAt = now
		case ' ':
			t.fire = true
		case 'r':
			t.restart = true
		case 'q':
			t.exit = true
		}
	}
}

// Present draws the buffer and waits out the remainder of the frame interval
func (t *Terminal) Present(buffer []uint32) error {
	if len(buffer) != t.width*t.height {
		return fmt.Errorf("present: buffer has %d pixels, want %d", len(buffer), t.width*t.height)
	}

	for cy := 0; cy*2 < t.height; cy++ {
		top := cy * 2 * t.width
		bottom := top + t.width
		for x := 0; x < t.width; x++ {
			var lower uint32
			if cy*2+1 < t.height {
				lower = buffer[bottom+x]
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewHexColor(int32(buffer[top+x]))).
				Background(tcell.NewHexColor(int32(lower)))
			t.screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
	t.screen.Show()

	if !t.lastPresent.IsZero() {
		if elapsed := t.now().Sub(t.lastPresent); elapsed < t.interval {
			t.sleep(t.interval - elapsed)
		}
	}
	t.lastPresent = t.now()
	return nil
}
