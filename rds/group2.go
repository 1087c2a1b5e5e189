package rds

// decodeGroup2 decodes Radiotext, in either its 4-character-per-group
// (2A) or 2-character-per-group (2B) form. Both the simple write-through
// and the confidence-tracked classifier run unconditionally, on the
// buffer the A/B flag selects, regardless of the decoder's advanced-PS
// setting — the
// display always reflects the simple pass; the confidence pass runs in
// parallel bookkeeping that PS-style completeness never gates here.
func (d *Decoder) decodeGroup2(gt GroupType, blocks Blocks) {
	const rtABBit = 0b0000_0000_0001_0000

	decoding := RTTextA
	if blocks.B.Val&rtABBit == 0 {
		decoding = RTTextB
	}
	rt := &d.data.RT.A
	if decoding == RTTextB {
		rt = &d.data.RT.B
	}

	var rtchars [4]byte
	var addr, count uint8

	if gt.Version == 'A' {
		if blocks.C.Errors > blerCMax || blocks.D.Errors > blerDMax {
			return
		}
		rtchars = [4]byte{
			byte(blocks.C.Val >> 8), byte(blocks.C.Val & 0xFF),
			byte(blocks.D.Val >> 8), byte(blocks.D.Val & 0xFF),
		}
		addr = uint8(blocks.B.Val&0xF) * 4
		count = 4
	} else {
		if blocks.D.Errors > blerDMax {
			return
		}
		rtchars = [4]byte{byte(blocks.D.Val >> 8), byte(blocks.D.Val & 0xFF), 0, 0}
		addr = uint8(blocks.B.Val&0xF) * 2
		count = 2

		// The last 32 bytes are unused in this format; hold the first
		// of them (index 32) permanently at the validated end-of-text
		// marker.
		rt.Display[32] = 0x0d
		rt.hiProb[32] = 0x0d
		rt.loProb[32] = 0x0d
		rt.hiProbCnt[32] = rtValidateLimit
	}

	updateRTSimple(rt, blocks, count, addr, rtchars[:])
	if d.data.RT.decodingRT != decoding {
		bumpRTValidationCount(rt)
	}
	updateRTAdvance(rt, blocks, count, addr, rtchars[:])

	d.data.RT.decodingRT = decoding
	d.data.setValid(ValidRT)
	d.data.Stats.RT++
}
