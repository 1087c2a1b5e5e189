package rds

// Enhanced-Other-Networks variant codes, the low four bits of block B
// in a 14A group, RBDS section 3.2.1.8.
const (
	eonVCPS1 = iota
	eonVCPS2
	eonVCPS3
	eonVCPS4
	eonVCAF
	eonVCFreq1
	eonVCFreq2
	eonVCFreq3
	eonVCFreq4
	eonVCFreq5
	eonVCUnalloc1
	eonVCUnalloc2
	eonVCLinkage
	eonVCPTYTA
	eonVCPIN
	eonVCReserved
)

// decodeEONBlockA decodes one variant of a 14A group's block C payload
// into the other-network state.
//
// The PTY_TA variant's PTY extraction is corrected here: it takes the
// top five bits of block C, not a magnitude comparison against 11.
func decodeEONBlockA(on *OtherNetwork, blocks Blocks) {
	switch blocks.B.Val & 0xF {
	case eonVCPS1:
		on.PS[0], on.PS[1] = byte(blocks.C.Val>>8), byte(blocks.C.Val&0xFF)
	case eonVCPS2:
		on.PS[2], on.PS[3] = byte(blocks.C.Val>>8), byte(blocks.C.Val&0xFF)
	case eonVCPS3:
		on.PS[4], on.PS[5] = byte(blocks.C.Val>>8), byte(blocks.C.Val&0xFF)
	case eonVCPS4:
		on.PS[6], on.PS[7] = byte(blocks.C.Val>>8), byte(blocks.C.Val&0xFF)
	case eonVCAF:
		firstByte := uint8(blocks.C.Val >> 8)
		secondByte := uint8(blocks.C.Val & 0xFF)
		if isFreqCodeCount(firstByte) {
			on.AF.band = BandUHF
			decodeTableStartBlock(&on.AF, freqCodeToCount(firstByte), secondByte)
		} else {
			decodeTableNthBlock(&on.AF, firstByte, secondByte)
		}
	case eonVCFreq1, eonVCFreq2, eonVCFreq3, eonVCFreq4, eonVCFreq5:
		// Mapping table entries; not yet interpreted here.
	case eonVCUnalloc1, eonVCUnalloc2:
	case eonVCLinkage:
	case eonVCPTYTA:
		on.PTY = uint8(blocks.C.Val>>11) & 0x1F
		on.TACode = blocks.C.Val&0x1 != 0
	case eonVCPIN:
	case eonVCReserved:
	}
}

// decodeGroup14 decodes Enhanced Other Networks information, RBDS
// section 3.1.5.19:
//
//	14A: one variant per block, dispatched by the low nibble of block B.
//	14B: the other network's PI code plus its TP/TA codes.
func (d *Decoder) decodeGroup14(gt GroupType, blocks Blocks) {
	d.data.setValid(ValidEON)
	d.data.Stats.EON++

	if gt.Version == 'A' {
		decodeEONBlockA(&d.data.EON.On, blocks)
		return
	}

	if blocks.D.Errors <= blerDMax {
		d.data.EON.On.PICode = blocks.D.Val
	}
	d.data.EON.On.TPCode = blocks.B.Val&0b1000 != 0
	d.data.EON.On.TACode = blocks.B.Val&0b0100 != 0
}
