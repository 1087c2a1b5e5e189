package rds

// Program-type-name masks within block B, RBDS section 3.1.5.19.
const (
	ptynABBit        = 0b1_0000
	ptynSegmentAddr  = 0b0_0001
)

func updatePTYN(ptyn *PTYN, charIdx uint8, ch byte) {
	if int(charIdx) >= len(ptyn.Display) {
		return
	}
	ptyn.Display[charIdx] = ch
}

// decodePTYN decodes a Program Type Name segment. A flip of the A/B
// flag between segments discards whatever has accumulated so far,
// since the two segments no longer belong to the same name.
func decodePTYN(data *Data, blocks Blocks) {
	data.setValid(ValidPTYN)
	data.Stats.PTYN++

	abVal := blocks.B.Val&ptynABBit != 0
	if data.PTYN.lastAB != abVal {
		data.PTYN.Display = [8]byte{}
		data.PTYN.lastAB = abVal
	}

	base := uint8(0)
	if blocks.B.Val&ptynSegmentAddr != 0 {
		base = 4
	}
	if blocks.C.Errors <= blerCMax {
		updatePTYN(&data.PTYN, base+0, byte(blocks.C.Val>>8))
		updatePTYN(&data.PTYN, base+1, byte(blocks.C.Val&0xFF))
	}
	if blocks.D.Errors <= blerDMax {
		updatePTYN(&data.PTYN, base+2, byte(blocks.D.Val>>8))
		updatePTYN(&data.PTYN, base+3, byte(blocks.D.Val&0xFF))
	}
}

// decodeGroup10 decodes Program Type Name (10A) or open data (10B).
func (d *Decoder) decodeGroup10(gt GroupType, blocks Blocks) {
	if gt.Version == 'A' {
		decodePTYN(d.data, blocks)
	} else {
		d.decodeODA(gt, blocks)
	}
}
