// Package tuner drives a Silicon Labs Si4703 FM receiver over I2C and
// surfaces its RDS output as rds.Blocks, ready to feed into an
// rds.Decoder.
package tuner

import (
	"errors"
	"io"
	"sync"
	"time"

	"periph.io/x/conn/v3/i2c"

	"github.com/bartgrantham/rbdsdecode/rds"
)

var (
	ErrInvalidFreq = errors.New("tuner: invalid frequency")
	ErrTimeout     = errors.New("tuner: tune timed out")
)

// Si4703 register indices, per Silicon Labs AN230.
const (
	regDeviceID = iota
	regChipID
	regPowerCFG
	regChannel
	regSysConfig1
	regSysConfig2
	regSysConfig3
	regOscillator
	_
	_
	regStatusRSSI
	regReadChan
	regRDSA
	regRDSB
	regRDSC
	regRDSD
)

const (
	powerCFGDMute  = 0x4001 // DMUTE | ENABLE
	powerCFGEnable = 0x0001
	powerCFGDisMute = 0x4000
	sysConfig1RDS  = 1 << 12
	statusRSSIRDSR = 0x8000
	statusRSSIST   = 0x0010
	statusRSSISTC  = 1 << 14
	channelTuneBit = 1 << 15
)

// Si4703 drives the chip and reports each decoded RDS group on Groups.
type Si4703 struct {
	mu      sync.Mutex
	device  i2c.Dev
	reg     [16]uint16
	Groups  chan rds.Blocks
	Polling bool
	Rate    time.Duration
}

// New opens the Si4703 at addr on bus and starts its background
// polling loop. Per AN230, the RDS ready flag appears in ~88ms
// intervals and stays set for at least 40ms, so a 40ms poll period is
// sufficient without oversampling.
func New(bus i2c.Bus, addr uint16) (*Si4703, error) {
	s := &Si4703{
		device:  i2c.Dev{Bus: bus, Addr: addr},
		Polling: true,
		Rate:    40 * time.Millisecond,
		Groups:  make(chan rds.Blocks, 16),
	}
	if err := s.read(); err != nil {
		return nil, err
	}
	go s.pollLoop()
	return s, nil
}

func (s *Si4703) pollLoop() {
	next := time.Now()
	for {
		next = next.Add(s.Rate)
		time.Sleep(time.Until(next))
		if !s.Polling {
			continue
		}
		if err := s.read(); err != nil {
			continue
		}
		s.emitIfReady()
	}
}

// emitIfReady publishes one RDS group if the chip's RDS-ready flag is
// set, using the per-block error-correction tallies the chip itself
// reports in STATUSRSSI and READCHAN.
func (s *Si4703) emitIfReady() {
	s.mu.Lock()
	status := s.reg[regStatusRSSI]
	readChan := s.reg[regReadChan]
	if status&statusRSSIRDSR == 0 {
		s.mu.Unlock()
		return
	}
	blocks := rds.Blocks{
		A: rds.Block{Val: s.reg[regRDSA], Errors: int((status >> 8) & 0x3)},
		B: rds.Block{Val: s.reg[regRDSB], Errors: int((readChan >> 14) & 0x3)},
		C: rds.Block{Val: s.reg[regRDSC], Errors: int((readChan >> 12) & 0x3)},
		D: rds.Block{Val: s.reg[regRDSD], Errors: int((readChan >> 10) & 0x3)},
	}
	s.mu.Unlock()

	select {
	case s.Groups <- blocks:
	default:
	}
}

// Stereo reports whether the tuner currently reports a stereo pilot.
func (s *Si4703) Stereo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg[regStatusRSSI]&statusRSSIST != 0
}

func (s *Si4703) read() error {
	buf := make([]byte, 32)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.device.Tx(nil, buf); err != nil {
		return err
	}
	for i := 0; i < 16; i++ {
		// Register 0xA is the first one returned by a read; the device
		// wraps registers 0..9 to the end of the buffer.
		s.reg[(i+10)%16] = uint16(buf[i*2])<<8 | uint16(buf[i*2+1])
	}
	return nil
}

func (s *Si4703) set(reg int, val uint16) error {
	if err := s.read(); err != nil {
		return err
	}

	s.mu.Lock()
	buf := make([]byte, 12)
	for i, r := range [...]int{regPowerCFG, regChannel, regSysConfig1, regSysConfig2, regSysConfig3, regOscillator} {
		v := s.reg[r]
		buf[i*2] = byte(v >> 8)
		buf[i*2+1] = byte(v & 0xFF)
	}
	idx := (reg - regPowerCFG) * 2
	buf[idx] = byte(val >> 8)
	buf[idx+1] = byte(val & 0xFF)
	n, err := s.device.Write(buf)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return s.read()
}

// EnableRDS turns on the radio, unmutes it, and enables RDS decoding.
func (s *Si4703) EnableRDS() error {
	if err := s.set(regPowerCFG, powerCFGDMute); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	s.mu.Lock()
	cfg1 := s.reg[regSysConfig1] | sysConfig1RDS
	s.mu.Unlock()
	return s.set(regSysConfig1, cfg1)
}

// SetVolume sets the volume, 0 (silent) to 15 (maximum), on the extended range.
func (s *Si4703) SetVolume(v int) error {
	if v < 0 {
		v = 0
	} else if v > 15 {
		v = 15
	}
	if err := s.set(regSysConfig3, 0x0100); err != nil {
		return err
	}
	return s.set(regSysConfig2, uint16(v))
}

// SetChannel tunes to freq MHz, in the US/European FM broadcast band
// (87.5 to 107.9 MHz), and blocks until the tune completes or 5
// seconds elapse.
func (s *Si4703) SetChannel(freq float64) error {
	if freq < 87.5 || freq > 107.9 {
		return ErrInvalidFreq
	}
	channel := uint16((freq - 87.5) / 0.2)

	s.mu.Lock()
	tmp := s.reg[regChannel]
	s.mu.Unlock()
	tmp = (tmp &^ 0x01FF) | channel | channelTuneBit
	if err := s.set(regChannel, tmp); err != nil {
		return err
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		s.mu.Lock()
		done := s.reg[regStatusRSSI]&statusRSSISTC != 0
		s.mu.Unlock()
		if done {
			break
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(100 * time.Millisecond)
		if err := s.read(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	tmp = s.reg[regChannel] &^ uint16(channelTuneBit)
	s.mu.Unlock()
	return s.set(regChannel, tmp)
}
