package rds

// decodeEWS records an emergency-warning-system block. Format and
// application of these bits are assigned unilaterally by each country
// and are out of scope beyond exposing the raw blocks.
func decodeEWS(data *Data, blocks Blocks) {
	data.setValid(ValidEWS)
	data.Stats.EWS++

	data.EWS.B = blocks.B
	data.EWS.B.Val &= 0x1F
	data.EWS.C = blocks.C
	data.EWS.D = blocks.D
}

// decodeGroup9 decodes the allocation of EWS message bits, unless the
// group type has been claimed by an ODA:
//
//	9A: allocation of EWS message bits.
//	9B: open data.
func (d *Decoder) decodeGroup9(gt GroupType, blocks Blocks) {
	if d.isGroupTypeUsedByODA(gt) {
		d.decodeODA(gt, blocks)
		return
	}
	if gt.Version == 'A' {
		decodeEWS(d.data, blocks)
	}
}
