// Package twidisplay controls an Akafugu TWIDisplay 4-digit 7-segment
// display via I²C.
//
// The TWIDisplay is an ATMega-based display board acting as an I²C
// peripheral. It implements the conn.Resource interface from periph.io.
//
// # Display Characteristics
//
//   - 4 digit positions with 7-segment glyph rendering of ASCII
//   - Adjustable brightness (0-255)
//   - Rotate or scroll mode for streamed characters
//   - Dot segments between digits (used for time display)
//   - Reprogrammable 7-bit I²C address, persisted on the board
//
// # Hardware Connection
//
// Connect the TWIDisplay to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V or 5V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// The factory default address is 0x12 (DefaultAddr).
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/twidisplay"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		// Open I²C bus
//		bus, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bus.Close()
//
//		// Create device at the default address
//		dev, err := twidisplay.New(bus, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.Clear()
//		dev.DisplayNumber(1234)
//	}
//
// # Positioned Output
//
// DisplayDigit and DisplayChar address the four positions 1-4 from the
// left:
//
//	dev.DisplayDigit(1, 7)   // leftmost position shows 7
//	dev.DisplayChar(4, 'A')  // rightmost position shows A
//
// DisplayNumber fills all four positions, keeping leading zeros, so a
// value of 42 reads "0042".
//
// # Streamed Output
//
// SendDigit, SendChar, SendText and Write push characters without a
// position. How the display lays them out depends on the mode:
//
//	dev.SetMode(twidisplay.Rotate) // push existing digits left
//	dev.SendText("1337")
//
// # Sensor Readings
//
// DisplayTemperature shows whole degrees from -99 to 99 with a unit
// glyph, using "-LO-" and "-HI-" sentinels beyond that:
//
//	dev.DisplayTemperature(-23, twidisplay.Fahrenheit) // "-23F"
//
// DisplayEnvTemperature accepts a physic.Temperature directly, so
// readings from periph environmental sensors can be shown without
// manual conversion.
//
// DisplayReading generalizes this to any value from -99 to 999 with
// configurable alert thresholds ("-LL-"/"-HH-"), and DisplayHumidity
// shows 0-100 with an 'H' glyph.
//
// # Time Display
//
// DisplayTime shows HHMM with an optional dot after the hours:
//
//	dev.DisplayTime(13, 37, true) // "13.37"
//
// # Changing the I²C Address
//
// SetAddress reprograms the display's address and retargets the device
// handle. The display persists the new address, so subsequent sessions
// must pass it via Opts:
//
//	dev, _ := twidisplay.New(bus, &twidisplay.Opts{Addr: 0x31})
//
// DisplayAddress shows the current address on the display itself, which
// helps recover a board whose address is unknown.
//
// # Wire Protocol
//
// Commands are single opcode bytes in the 0x80-0x90 range, followed by
// zero to two parameter bytes. Bytes below the command range are
// displayed literally, which is how plain digit and character sends
// work. Every operation of this package issues one complete command per
// bus transaction.
//
// # Product Page
//
// For board details and firmware documentation, see:
// https://www.akafugu.jp/posts/products/twidisplay/
package twidisplay
