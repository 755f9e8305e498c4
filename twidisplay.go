// Package twidisplay controls an Akafugu TWIDisplay 4-digit 7-segment
// display via I²C.
//
// The TWIDisplay is an ATMega-based display board that acts as an I²C
// peripheral with a fixed one-byte command protocol.
//
// See the examples for how to use this package.
package twidisplay

import (
	"errors"
	"fmt"
	"math"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddr is the factory-programmed I²C address of the display.
const DefaultAddr uint16 = 0x12

// digitCount is the number of digit positions on the display.
const digitCount = 4

// ErrInvalidInput is returned when an argument is outside the range the
// display accepts. No bus traffic occurs when it is returned.
var ErrInvalidInput = errors.New("twidisplay: invalid input data")

// command is a one-byte display opcode. Opcodes 0x80-0x90 are reserved;
// bytes below that range are displayed literally.
type command byte

const (
	cmdBrightness  command = 0x80
	cmdSetAddress  command = 0x81
	cmdClear       command = 0x82
	cmdMode        command = 0x83
	cmdCustomChar  command = 0x84 // not wired, listed for completeness
	cmdDots        command = 0x85
	cmdTime        command = 0x87 // not wired; unreliable on hardware
	cmdWord        command = 0x88 // not wired
	cmdPosition    command = 0x89
	cmdFirmwareRev command = 0x8A // read-back, not wired
	cmdDigitCount  command = 0x8B // read-back, not wired
	cmdShowAddress command = 0x90
)

// dotDigit2 selects the dot after the second digit in a cmdDots payload.
const dotDigit2 = 0x04

// Mode selects how the display handles more digits than it has positions.
type Mode uint8

const (
	// Rotate pushes existing digits to the left as new ones arrive.
	Rotate Mode = iota
	// Scroll discards the display content and starts over from the left.
	Scroll
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Rotate:
		return "Rotate"
	case Scroll:
		return "Scroll"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// TempUnit selects the unit glyph shown by DisplayTemperature.
type TempUnit uint8

const (
	// Celsius shows a 'C' after the value.
	Celsius TempUnit = iota
	// Fahrenheit shows an 'F' after the value.
	Fahrenheit
)

// String returns the unit name.
func (u TempUnit) String() string {
	if u == Fahrenheit {
		return "Fahrenheit"
	}
	return "Celsius"
}

// glyph returns the character displayed for the unit.
func (u TempUnit) glyph() byte {
	if u == Fahrenheit {
		return 'F'
	}
	return 'C'
}

// Opts is the configuration for the display.
type Opts struct {
	// Addr is the 7-bit I²C address of the display. Zero selects
	// DefaultAddr.
	Addr uint16
}

// Dev is the device handle for the TWIDisplay.
//
// A Dev must not be used from multiple goroutines concurrently; callers
// needing that must add their own synchronization.
type Dev struct {
	c i2c.Dev
}

// New creates a new TWIDisplay device on the given I²C bus.
//
// opts can be nil to use defaults (address 0x12). No bus traffic occurs;
// the display is addressed on the first operation.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Addr: DefaultAddr}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	if addr > 0x7F {
		return nil, errors.New("twidisplay: address must be a 7-bit value")
	}
	return &Dev{c: i2c.Dev{Bus: bus, Addr: addr}}, nil
}

// write sends a payload as a single bus transaction to the display
// address. Every command goes through here; a payload is always one
// complete command.
func (d *Dev) write(payload []byte) error {
	if err := d.c.Tx(payload, nil); err != nil {
		return fmt.Errorf("twidisplay: bus write failed: %w", err)
	}
	return nil
}

// displayAt writes one raw byte at a 0-based wire position.
func (d *Dev) displayAt(pos uint8, b byte) error {
	return d.write([]byte{byte(cmdPosition), pos, b})
}

// displayWord writes one character per position, starting at the left.
func (d *Dev) displayWord(word string) error {
	for i := 0; i < len(word) && i < digitCount; i++ {
		if err := d.displayAt(uint8(i), word[i]); err != nil {
			return err
		}
	}
	return nil
}

// Clear clears the display.
func (d *Dev) Clear() error {
	return d.write([]byte{byte(cmdClear)})
}

// DisplayAddress shows the display's current I²C address on the display
// itself.
func (d *Dev) DisplayAddress() error {
	return d.write([]byte{byte(cmdShowAddress)})
}

// SetBrightness sets the display brightness (0-255, 127 is 50%).
func (d *Dev) SetBrightness(level uint8) error {
	return d.write([]byte{byte(cmdBrightness), level})
}

// SetAddress reprograms the display's I²C address and retargets the
// device handle so subsequent operations use the new address. The
// display persists the new address across power cycles.
func (d *Dev) SetAddress(addr uint16) error {
	if addr > 0x7F {
		return ErrInvalidInput
	}
	if err := d.write([]byte{byte(cmdSetAddress), byte(addr)}); err != nil {
		return err
	}
	d.c.Addr = addr
	return nil
}

// SetMode sets the display mode used when more digits arrive than the
// display has positions.
func (d *Dev) SetMode(m Mode) error {
	switch m {
	case Rotate:
		return d.write([]byte{byte(cmdMode), 0})
	case Scroll:
		return d.write([]byte{byte(cmdMode), 1})
	default:
		return ErrInvalidInput
	}
}

// SendDigit sends a single digit (0-9) without specifying a position.
// Where it appears depends on the current display mode.
func (d *Dev) SendDigit(digit uint8) error {
	if digit > 9 {
		return ErrInvalidInput
	}
	return d.write([]byte{digit})
}

// SendChar sends a single character without specifying a position.
// Values 0x80 and above collide with the command range and are rejected.
func (d *Dev) SendChar(ch byte) error {
	if ch > 0x7F {
		return ErrInvalidInput
	}
	return d.write([]byte{ch})
}

// SendText sends a string one character per bus transaction. How it is
// laid out depends on the current display mode.
func (d *Dev) SendText(text string) error {
	for i := 0; i < len(text); i++ {
		if err := d.SendChar(text[i]); err != nil {
			return err
		}
	}
	return nil
}

// Write sends raw character bytes to the display and implements
// io.Writer. It is equivalent to SendText.
func (d *Dev) Write(p []byte) (int, error) {
	for i, ch := range p {
		if err := d.SendChar(ch); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// DisplayDigit shows digit (0-9) at position (1-4, counted from the
// left).
func (d *Dev) DisplayDigit(position, digit uint8) error {
	if position < 1 || position > digitCount || digit > 9 {
		return ErrInvalidInput
	}
	return d.displayAt(position-1, digit)
}

// DisplayChar shows a character at position (1-4, counted from the
// left).
func (d *Dev) DisplayChar(position uint8, ch byte) error {
	if position < 1 || position > digitCount || ch > 0x7F {
		return ErrInvalidInput
	}
	return d.displayAt(position-1, ch)
}

// DisplayNumber shows a number (0-9999) using all four digits. Leading
// zeros are displayed, not blanked. A bus error mid-sequence leaves the
// positions already written in place.
func (d *Dev) DisplayNumber(n uint16) error {
	if n > 9999 {
		return ErrInvalidInput
	}
	for pos, digit := range getDigits(n) {
		if err := d.displayAt(uint8(pos), digit); err != nil {
			return err
		}
	}
	return nil
}

// DisplayTime shows the time as HHMM with an optional dot after the
// hours.
func (d *Dev) DisplayTime(hours, minutes uint8, dot bool) error {
	if hours > 23 || minutes > 59 {
		return ErrInvalidInput
	}
	if err := d.DisplayNumber(uint16(hours)*100 + uint16(minutes)); err != nil {
		return err
	}
	dots := byte(0)
	if dot {
		dots = dotDigit2
	}
	return d.write([]byte{byte(cmdDots), dots})
}

// DisplayTemperature shows a temperature between -99 and 99 with the
// unit glyph in the last position. Values below -99 show "-LO-" and
// values above 99 show "-HI-". A single leading zero in the tens place
// is blanked; the units digit never is.
func (d *Dev) DisplayTemperature(t int, unit TempUnit) error {
	if t < -99 {
		return d.displayWord("-LO-")
	}
	if t > 99 {
		return d.displayWord("-HI-")
	}

	sign := byte(' ')
	if t < 0 {
		sign = '-'
		t = -t
	}
	if err := d.displayAt(0, sign); err != nil {
		return err
	}

	if tens := uint8(t / 10); tens == 0 {
		if err := d.displayAt(1, ' '); err != nil {
			return err
		}
	} else {
		if err := d.displayAt(1, tens); err != nil {
			return err
		}
	}

	if err := d.displayAt(2, uint8(t%10)); err != nil {
		return err
	}
	return d.displayAt(3, unit.glyph())
}

// DisplayEnvTemperature shows a physic.Temperature rounded to whole
// degrees in the requested unit. It accepts readings straight from
// periph environmental sensors.
func (d *Dev) DisplayEnvTemperature(t physic.Temperature, unit TempUnit) error {
	deg := t.Celsius()
	if unit == Fahrenheit {
		deg = t.Fahrenheit()
	}
	return d.DisplayTemperature(int(math.Round(deg)), unit)
}

// Range bounds a reading shown by DisplayReading.
type Range struct {
	// Min and Max delimit the displayable span; values outside it show
	// the "----" sentinel.
	Min, Max int
	// Lo and Hi are alert thresholds within [Min, Max]; readings below
	// Lo show "-LL-" and readings above Hi show "-HH-".
	Lo, Hi int
}

// DisplayReading shows a sensor reading (-99 to 999) with a unit glyph
// in the last position and sentinel words for out-of-range values.
//
// r can be nil to use the full -99 to 999 span with thresholds at the
// bounds. Lo and Hi are clamped into [Min, Max].
func (d *Dev) DisplayReading(value int, unit byte, r *Range) error {
	if r == nil {
		r = &Range{Min: -99, Max: 999, Lo: -99, Hi: 999}
	}
	// Four positions fit a sign, two digits and a unit glyph at worst, so
	// the span can never exceed -99 to 999.
	min, max := r.Min, r.Max
	if min < -99 {
		min = -99
	}
	if max > 999 {
		max = 999
	}
	lo, hi := r.Lo, r.Hi
	if lo < min {
		lo = min
	}
	if hi > max {
		hi = max
	}

	switch {
	case value < min || value > max:
		return d.displayWord("----")
	case value < lo:
		return d.displayWord("-LL-")
	case value > hi:
		return d.displayWord("-HH-")
	}

	abs := value
	if abs < 0 {
		abs = -abs
	}
	hundreds := uint8(abs / 100)
	tens := uint8(abs % 100 / 10)

	// Position 0: hundreds digit, minus sign, or blank.
	switch {
	case value < 0:
		if err := d.displayAt(0, '-'); err != nil {
			return err
		}
	case hundreds == 0:
		if err := d.displayAt(0, ' '); err != nil {
			return err
		}
	default:
		if err := d.displayAt(0, hundreds); err != nil {
			return err
		}
	}

	// Position 1: tens digit, blanked only when it is a leading zero.
	if (hundreds == 0 || value < 0) && tens == 0 {
		if err := d.displayAt(1, ' '); err != nil {
			return err
		}
	} else {
		if err := d.displayAt(1, tens); err != nil {
			return err
		}
	}

	if err := d.displayAt(2, uint8(abs%10)); err != nil {
		return err
	}
	return d.displayAt(3, unit)
}

// DisplayHumidity shows a relative humidity reading (0-100) with an 'H'
// glyph. Values outside 0-100 show "----".
func (d *Dev) DisplayHumidity(humidity int) error {
	return d.DisplayReading(humidity, 'H', &Range{Min: 0, Max: 100, Lo: 0, Hi: 100})
}

// Halt clears the display. The I²C bus stays open and owned by the
// caller.
func (d *Dev) Halt() error {
	return d.Clear()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("twidisplay.Dev{%s}", &d.c)
}

// getDigits splits a number into its four decimal digits, thousands
// first.
func getDigits(n uint16) [digitCount]uint8 {
	var digits [digitCount]uint8
	digits[0] = uint8(n / 1000)
	n %= 1000
	digits[1] = uint8(n / 100)
	n %= 100
	digits[2] = uint8(n / 10)
	digits[3] = uint8(n % 10)
	return digits
}

var _ conn.Resource = &Dev{}
