// Package input turns raw terminal bytes into discrete game actions.
package input

import (
	"bufio"
)

// Action is a discrete command decoded from a key press.
type Action int

const (
	ActionNone   Action = iota
	ActionToggle        // Start / restart control
	ActionBoost         // Frequency boost
	ActionTheme         // Light / dark chrome
	ActionQuit          // Leave the client
)

func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionBoost:
		return "boost"
	case ActionTheme:
		return "theme"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Stream delivers input bytes via a channel filled by a reader goroutine.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes without blocking and returns the actions
// they encode in arrival order. A closed input yields ActionQuit.
func (s *Stream) Poll() []Action {
	var buf []byte
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	actions := Decode(buf)
	if s.closed {
		actions = append(actions, ActionQuit)
	}
	return actions
}

// Decode maps a chunk of terminal input to actions. CSI escape sequences
// (arrow keys and the like) are skipped whole.
func Decode(buf []byte) []Action {
	var actions []Action
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 < len(buf) && buf[i+1] == '[' {
			// ESC [ params... final, where final is in 0x40-0x7e
			j := i + 2
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}

		if a := actionForByte(b); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// actionForByte maps a single key byte to its action.
func actionForByte(b byte) Action {
	switch b {
	case ' ':
		return ActionBoost
	case '\n', '\r', 's', 'S':
		return ActionToggle
	case 't', 'T':
		return ActionTheme
	case 'q', 'Q', '\x03', '\x04': // Ctrl-C and Ctrl-D arrive as bytes in raw mode
		return ActionQuit
	default:
		return ActionNone
	}
}
