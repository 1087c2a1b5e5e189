package rds

// decodeMS reads the music/speech switch bit. Only call with an
// acceptable block B error rate.
func decodeMS(data *Data, b Block) {
	const msBit = 0b0000_0000_0000_1000
	data.Music = b.Val&msBit != 0
	data.setValid(ValidMS)
	data.Stats.MS++
}

// decodeAltFreq feeds block C of a 0A group into the AF table pool.
// The original decoder is intolerant of any block C error here.
func decodeAltFreq(data *Data, blocks Blocks) {
	if blocks.C.Errors != BLERNone {
		return
	}
	data.setValid(ValidAF)
	data.Stats.AF++
	DecodeGroupBlock(&data.AF, blocks.C.Val)
}

// decodeGroup0 decodes basic tuning and switching information:
//
//	0A: alternative frequencies (block C) plus PS (part of block D).
//	0B: PS only.
func (d *Decoder) decodeGroup0(gt GroupType, blocks Blocks) {
	if gt.Version == 'A' {
		decodeAltFreq(d.data, blocks)
	}

	if blocks.D.Errors > blerDMax {
		return
	}

	decodeTA(d.data, blocks.B)
	decodeMS(d.data, blocks.B)

	pairIdx := uint8(blocks.B.Val&0x03) * 2
	hi := uint8(blocks.D.Val >> 8)
	lo := uint8(blocks.D.Val & 0xFF)
	if d.advancedPSDecoding {
		updatePSAdvanced(d.data, pairIdx+0, hi)
		updatePSAdvanced(d.data, pairIdx+1, lo)
	} else {
		updatePSSimple(d.data, pairIdx+0, hi)
		updatePSSimple(d.data, pairIdx+1, lo)
	}
	d.data.Stats.PS++
}
