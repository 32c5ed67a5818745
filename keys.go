package main

import (
	"bufio"
	"io"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyKind identifies a logical key
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyInterrupt
)

// Key is a single key press. Rune is only set for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// KeySource delivers key presses one at a time, blocking until one is
// available.
type KeySource interface {
	ReadKey() (Key, error)
}

func runeKey(r rune) Key {
	switch r {
	case '\r', '\n':
		return Key{Kind: KeyEnter}
	case '\t':
		return Key{Kind: KeyTab}
	}
	if unicode.IsControl(r) {
		return Key{Kind: KeyOther}
	}
	return Key{Kind: KeyRune, Rune: r}
}

// keysFromMsg translates a bubbletea key message. Pasted text arrives as a
// single message with several runes, so more than one key may come back.
func keysFromMsg(msg tea.KeyMsg) []Key {
	switch msg.String() {
	case "left":
		return []Key{{Kind: KeyLeft}}
	case "right":
		return []Key{{Kind: KeyRight}}
	case "up":
		return []Key{{Kind: KeyUp}}
	case "down":
		return []Key{{Kind: KeyDown}}
	case "home":
		return []Key{{Kind: KeyHome}}
	case "end":
		return []Key{{Kind: KeyEnd}}
	case "backspace", "ctrl+h":
		return []Key{{Kind: KeyBackspace}}
	case "delete":
		return []Key{{Kind: KeyDelete}}
	case "enter":
		return []Key{{Kind: KeyEnter}}
	case "tab":
		return []Key{{Kind: KeyTab}}
	case " ":
		return []Key{{Kind: KeyRune, Rune: ' '}}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return []Key{{Kind: KeyOther}}
	}
	keys := make([]Key, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		keys = append(keys, runeKey(r))
	}
	return keys
}

// msgFromKey turns a key back into the message the menus understand.
func msgFromKey(k Key) tea.KeyMsg {
	switch k.Kind {
	case KeyRune:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k.Rune}}
	case KeyLeft:
		return tea.KeyMsg{Type: tea.KeyLeft}
	case KeyRight:
		return tea.KeyMsg{Type: tea.KeyRight}
	case KeyUp:
		return tea.KeyMsg{Type: tea.KeyUp}
	case KeyDown:
		return tea.KeyMsg{Type: tea.KeyDown}
	case KeyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyNull}
}

// keyReader decodes keys from a raw-mode terminal byte stream.
type keyReader struct {
	r *bufio.Reader
}

func newKeyReader(r io.Reader) *keyReader {
	return &keyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until a full key has been read
func (k *keyReader) ReadKey() (Key, error) {
	r, _, err := k.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch r {
	case 0x1b:
		// A lone ESC arrives without a sequence behind it.
		if k.r.Buffered() == 0 {
			return Key{Kind: KeyOther}, nil
		}
		return k.readEscape()
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, nil
	case 0x03:
		return Key{Kind: KeyInterrupt}, nil
	}
	return runeKey(r), nil
}

func (k *keyReader) readEscape() (Key, error) {
	intro, err := k.r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if intro != '[' && intro != 'O' {
		return Key{Kind: KeyOther}, nil
	}

	var params []byte
	for {
		c, err := k.r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if c >= 0x40 && c <= 0x7e {
			return csiKey(params, c), nil
		}
		params = append(params, c)
	}
}

func csiKey(params []byte, final byte) Key {
	switch final {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	case 'C':
		return Key{Kind: KeyRight}
	case 'D':
		return Key{Kind: KeyLeft}
	case 'H':
		return Key{Kind: KeyHome}
	case 'F':
		return Key{Kind: KeyEnd}
	case '~':
		switch string(params) {
		case "1", "7":
			return Key{Kind: KeyHome}
		case "4", "8":
			return Key{Kind: KeyEnd}
		case "3":
			return Key{Kind: KeyDelete}
		}
	}
	return Key{Kind: KeyOther}
}
