package twidisplay_test

import (
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/twidisplay"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	dev, err := twidisplay.New(bus, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	_ = dev.Clear()
	_ = dev.SetBrightness(127)
	_ = dev.DisplayNumber(1234)
	time.Sleep(2 * time.Second)
	_ = dev.DisplayTemperature(-23, twidisplay.Celsius)
	time.Sleep(2 * time.Second)
	_ = dev.DisplayTime(13, 37, true)
}
