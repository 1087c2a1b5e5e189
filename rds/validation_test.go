package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedPS(d *Data, s string) {
	for i := 0; i < len(s) && i < 8; i++ {
		updatePSAdvanced(d, uint8(i), s[i])
	}
}

func TestUpdatePSAdvancedConvergesAfterTwoRotations(t *testing.T) {
	d := NewData()

	feedPS(d, "HELLO!  ")
	assert.Zero(t, d.Valid&ValidPS, "PS must not validate after a single rotation")

	feedPS(d, "HELLO!  ")
	assert.NotZero(t, d.Valid&ValidPS, "PS must validate once every position repeats to the hit-count limit")
	assert.Equal(t, "HELLO!  ", string(d.PS.Display[:]))
}

func TestUpdatePSAdvancedSuppressesTransientChange(t *testing.T) {
	d := NewData()
	feedPS(d, "HELLO!  ")
	feedPS(d, "HELLO!  ")
	want := "HELLO!  "
	assert.Equal(t, want, string(d.PS.Display[:]), "setup failed")

	feedPS(d, "WORLD!  ")
	assert.Equal(t, want, string(d.PS.Display[:]), "a single conflicting rotation must not overwrite a converged display")
}

func TestUpdatePSSimpleWritesThrough(t *testing.T) {
	d := NewData()
	updatePSSimple(d, 0, 'X')
	assert.Equal(t, byte('X'), d.PS.Display[0])
	assert.NotZero(t, d.Valid&ValidPS)
}

func TestUpdateRTSimpleEndOfTextWipesTail(t *testing.T) {
	rt := &RT{}
	for i := range rt.Display {
		rt.Display[i] = 'X'
	}
	blocks := Blocks{C: Block{Errors: BLERNone}, D: Block{Errors: BLERNone}}

	updateRTSimple(rt, blocks, 4, 0, []byte{'A', 'B', 0x0d, 'C'})

	assert.Equal(t, []byte{'A', 'B', 0x0d}, rt.Display[:3])
	for i := 3; i < len(rt.Display); i++ {
		assert.Zerof(t, rt.Display[i], "Display[%d] must be wiped after the end-of-text marker", i)
	}
}

func TestUpdateRTSimpleSkipsCharactersAboveBLERTolerance(t *testing.T) {
	rt := &RT{}
	blocks := Blocks{C: Block{Errors: BLER6Plus}, D: Block{Errors: BLERNone}}

	updateRTSimple(rt, blocks, 4, 0, []byte{'A', 'B', 'C', 'D'})

	assert.Zero(t, rt.Display[0])
	assert.Zero(t, rt.Display[1])
	assert.Equal(t, []byte{'C', 'D'}, rt.Display[2:4])
}

func TestBumpRTValidationCountWipesConfidenceState(t *testing.T) {
	rt := &RT{}
	rt.hiProb[0] = 'A'
	rt.hiProbCnt[0] = rtValidateLimit
	rt.loProb[0] = 'B'

	bumpRTValidationCount(rt)

	assert.Equal(t, [64]byte{}, rt.hiProb)
	assert.Equal(t, [64]byte{}, rt.hiProbCnt)
	assert.Equal(t, [64]byte{}, rt.loProb)
}
