// Command gofm is a terminal FM radio tuner with a live RDS display,
// driven by an Si4703 receiver over I2C.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/pin/pinreg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/rpi"

	"github.com/bartgrantham/rbdsdecode/rds"
	"github.com/bartgrantham/rbdsdecode/tuner"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := loadConfig("rds.yaml")
	if err != nil {
		return err
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer scr.Fini()

	big, err := loadFont(cfg.BigFont)
	if err != nil {
		return err
	}
	medium, err := loadFont(cfg.MediumFont)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initializing peripherals: %w", err)
	}
	bus, err := i2creg.Open("I2C1")
	if err != nil {
		return fmt.Errorf("opening i2c bus: %w", err)
	}
	defer bus.Close()

	if p, ok := bus.(i2c.Pins); ok {
		_, sclPin := pinreg.Position(p.SCL())
		_, sdaPin := pinreg.Position(p.SDA())
		log.Printf("using i2c bus %s: SCL=%s (pin %d) SDA=%s (pin %d)", bus, p.SCL(), sclPin, p.SDA(), sdaPin)
	}

	// Pulse the reset line low then high before talking to the chip.
	if err := rpi.P1_16.Out(gpio.Low); err == nil {
		time.Sleep(100 * time.Millisecond)
		rpi.P1_16.Out(gpio.High)
		time.Sleep(100 * time.Millisecond)
	}

	si, err := tuner.New(bus, cfg.I2CAddr)
	if err != nil {
		return fmt.Errorf("opening si4703: %w", err)
	}
	if err := si.EnableRDS(); err != nil {
		return fmt.Errorf("enabling RDS: %w", err)
	}

	channel := cfg.DefaultChannel
	if err := si.SetChannel(channel); err != nil {
		return fmt.Errorf("tuning to %.1f: %w", channel, err)
	}
	if err := si.SetVolume(15); err != nil {
		return err
	}

	return eventLoop(scr, si, big, medium, channel, cfg.AdvancedPSDecoding)
}

func loadFont(path string) (*FIGfont, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", path, err)
	}
	defer f.Close()
	return NewFIGfont(f)
}

func eventLoop(scr tcell.Screen, si *tuner.Si4703, big, medium *FIGfont, channel float64, advancedPSDecoding bool) error {
	data := rds.NewData()
	dec := rds.New(rds.Config{AdvancedPSDecoding: advancedPSDecoding, Data: data})

	freqStyle := tcell.StyleDefault.
		Foreground(tcell.Color(255)).
		Background(tcell.Color(232)).
		Bold(true)
	callStyle := tcell.StyleDefault

	scr.Clear()
	scr.EnableMouse()

	events := make(chan tcell.Event, 1)
	go func() {
		for {
			events <- scr.PollEvent()
		}
	}()

	retune := func(delta float64) {
		channel += delta
		if channel > 107.9 {
			channel = 87.5
		} else if channel < 87.5 {
			channel = 107.9
		}
		si.SetChannel(channel)
		dec.Reset()
	}

	for {
		select {
		case e := <-events:
			switch e := e.(type) {
			case *tcell.EventKey:
				switch e.Key() {
				case tcell.KeyCtrlC, tcell.KeyEscape:
					return nil
				case tcell.KeyUp:
					retune(0.2)
				case tcell.KeyDown:
					retune(-0.2)
				}
			}
		case blocks := <-si.Groups:
			dec.Decode(blocks)
			render(scr, data, big, medium, callStyle, freqStyle, channel)
		}
	}
}

func render(scr tcell.Screen, data *rds.Data, big, medium *FIGfont, callStyle, freqStyle tcell.Style, channel float64) {
	w, _ := scr.Size()

	ps := string(data.PS.Display[:])
	rt := string(data.RT.A.Display[:])

	freqLines := big.Render(fmt.Sprintf("%.1f", channel))
	psLines := medium.Render(ps)

	xTmp := (w - 60) / 2
	clearRect(scr, xTmp, 4, big.Height+1, 60, ' ', freqStyle)
	xTmp = (w - len(freqLines[0])) / 2
	drawLines(scr, xTmp, 2, freqStyle, freqLines)

	xTmp = (w - 50) / 2
	clearRect(scr, xTmp, 18, medium.Height, 50, ' ', callStyle)
	xTmp = (w - len(psLines[0])) / 2
	drawLines(scr, xTmp, 15, callStyle, psLines)

	progType := rds.PTYName(rds.BandUHF, data.PTY)
	xTmp = (w - len(progType)) / 2
	drawLines(scr, xTmp, 22, callStyle, []string{progType})

	clearRect(scr, 0, 24, 1, w, ' ', callStyle)
	rtLine := "- - - = = =  " + rt + "  = = = - - -"
	drawLines(scr, (w-len(rtLine))/2, 24, callStyle, []string{rtLine})

	scr.Show()
}
