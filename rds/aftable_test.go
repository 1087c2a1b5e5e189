package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freqCodes used below: 98.0=105, 98.1=106, 98.3=108, 98.5=110, 98.7=112
// (afCodeToFreq(code, UHF) = 876 + code - 1, Freq in units of 0.1 MHz).

func TestDecodeGroupBlockMethodA(t *testing.T) {
	group := newAFTableGroup()

	// Start block: count code for 3 entries (225+2=227=0xE3), first
	// frequency 98.1 MHz.
	DecodeGroupBlock(&group, uint16(227)<<8|106)
	// Continuation block: 98.3 and 98.7 MHz.
	DecodeGroupBlock(&group, uint16(108)<<8|112)

	require.EqualValues(t, 1, group.Count)
	tbl := group.Table[0]
	assert.Equal(t, AFEncodingA, tbl.EncMethod)
	require.EqualValues(t, 3, tbl.Table.Count)

	want := []uint16{981, 983, 987}
	for i, w := range want {
		assert.Equal(t, w, tbl.Table.Entry[i].Freq, "entry %d", i)
	}
}

func TestDecodeTableNthBlockMethodBRegionalVariant(t *testing.T) {
	tbl := AFDecodeTable{
		EncMethod: AFEncodingB,
		Table:     AFTable{TunedFreq: Frequency{Band: BandUHF, Freq: 981}},
		expected:  10,
	}
	// Tuned frequency (98.1) sent first, alternative (98.3) second and
	// larger: the alternative is tagged a regional variant.
	decodeTableNthBlock(&tbl, 106, 108)

	require.EqualValues(t, 1, tbl.Table.Count)
	assert.Equal(t, Frequency{Band: BandUHF, Attrib: AttribRegionalVariant, Freq: 983}, tbl.Table.Entry[0])
}

func TestDecodeTableNthBlockMethodBSameProgram(t *testing.T) {
	tbl := AFDecodeTable{
		EncMethod: AFEncodingB,
		Table:     AFTable{TunedFreq: Frequency{Band: BandUHF, Freq: 981}},
		expected:  10,
	}
	// Alternative (98.3) sent first and larger, tuned frequency (98.1)
	// sent second: the alternative is tagged same-program.
	decodeTableNthBlock(&tbl, 108, 106)

	require.EqualValues(t, 1, tbl.Table.Count)
	assert.Equal(t, Frequency{Band: BandUHF, Attrib: AttribSameProgram, Freq: 983}, tbl.Table.Entry[0])
}

func TestDecodeTableNthBlockDropsOnceExpectedExhausted(t *testing.T) {
	tbl := AFDecodeTable{EncMethod: AFEncodingA, expected: 0}
	decodeTableNthBlock(&tbl, 106, 108)
	assert.EqualValues(t, 0, tbl.Table.Count, "entries added once expected is exhausted must be dropped")
}

func TestAFTablePoolBounded(t *testing.T) {
	group := newAFTableGroup()
	for i := uint8(0); i < uint8(len(group.Table))+5; i++ {
		// Every start block declares a fresh, distinct tuned frequency
		// so each one would otherwise allocate its own table.
		DecodeGroupBlock(&group, uint16(226)<<8|uint16(1+i))
	}
	assert.EqualValues(t, len(group.Table), group.Count, "pool must not grow past capacity")
}
