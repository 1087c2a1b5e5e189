// Package rdsembed is a thin alternate naming surface over rds, for
// hosts that expose C-style create/delete/decode/reset entry points
// to an embedded scripting runtime rather than importing rds
// directly. It adds no behavior beyond forwarding.
package rdsembed

import "github.com/bartgrantham/rbdsdecode/rds"

// Decoder is rds.Decoder, renamed for hosts that bind against this
// package's entry points instead of rds's.
type Decoder = rds.Decoder

// Config is rds.Config.
type Config = rds.Config

// NewDecoder forwards to rds.New.
func NewDecoder(config Config) *Decoder {
	return rds.New(config)
}

// SetODACallbacks forwards to (*rds.Decoder).SetODACallbacks.
func SetODACallbacks(decoder *Decoder, decode rds.ODADecodeFunc, clear rds.ODAClearFunc, userData any) {
	decoder.SetODACallbacks(decode, clear, userData)
}

// Decode forwards to (*rds.Decoder).Decode.
func Decode(decoder *Decoder, blocks rds.Blocks) {
	decoder.Decode(blocks)
}

// Reset forwards to (*rds.Decoder).Reset.
func Reset(decoder *Decoder) {
	decoder.Reset()
}
