package rds

// decodeTDCBlock shifts one 16-bit block into the currently-selected
// transparent data channel's 32-byte sliding window.
func decodeTDCBlock(data *Data, b Block) {
	channel := data.TDC.CurrChannel
	if int(channel) >= numTDC {
		return
	}
	data.setValid(ValidTDC)
	data.Stats.TDC++

	ch := &data.TDC.Data[channel]
	copy(ch[:tdcLen-2], ch[2:])
	ch[tdcLen-2] = byte(b.Val >> 8)
	ch[tdcLen-1] = byte(b.Val & 0xFF)
}

// decodeGroup5 decodes transparent data channels, unless the group
// type has been claimed by a registered open data application:
//
//	5A: two TDC blocks (C and D) on the channel named in block B.
//	5B: one TDC block (D) on the previously-selected channel.
func (d *Decoder) decodeGroup5(gt GroupType, blocks Blocks) {
	if d.isGroupTypeUsedByODA(gt) {
		d.decodeODA(gt, blocks)
		return
	}

	if gt.Version == 'A' {
		d.data.TDC.CurrChannel = uint8(blocks.B.Val & 0x1F)
		decodeTDCBlock(d.data, blocks.C)
		decodeTDCBlock(d.data, blocks.D)
	} else {
		decodeTDCBlock(d.data, blocks.D)
	}
}
