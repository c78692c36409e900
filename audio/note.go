package audio

import (
	"fmt"
	"math"
	"strconv"
)

// Note is a parsed tone label such as "A4", "C#5" or "Bb3".
type Note struct {
	Letter     byte
	Accidental int // -1 flat, 0 natural, +1 sharp
	Octave     int
}

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseTone parses a tone label: a letter, an optional '#' or 'b', then the
// octave.
func ParseTone(label string) (Note, error) {
	if len(label) < 2 {
		return Note{}, fmt.Errorf("audio: tone %q too short", label)
	}
	n := Note{Letter: label[0]}
	if _, ok := letterSemitones[n.Letter]; !ok {
		return Note{}, fmt.Errorf("audio: tone %q: bad letter", label)
	}

	rest := label[1:]
	switch rest[0] {
	case '#':
		n.Accidental = 1
		rest = rest[1:]
	case 'b':
		n.Accidental = -1
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Note{}, fmt.Errorf("audio: tone %q: bad octave: %w", label, err)
	}
	n.Octave = octave
	return n, nil
}

// MIDI returns the MIDI note number; A4 is 69.
func (n Note) MIDI() int {
	return (n.Octave+1)*12 + letterSemitones[n.Letter] + n.Accidental
}

// Frequency returns the equal-tempered frequency with A4 at 440 Hz.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, float64(n.MIDI()-69)/12)
}

func (n Note) String() string {
	acc := ""
	switch n.Accidental {
	case 1:
		acc = "#"
	case -1:
		acc = "b"
	}
	return fmt.Sprintf("%c%s%d", n.Letter, acc, n.Octave)
}

// Frequency parses label and returns its frequency.
func Frequency(label string) (float64, error) {
	n, err := ParseTone(label)
	if err != nil {
		return 0, err
	}
	return n.Frequency(), nil
}
