package rds

// decodeGroup6 decodes in-house applications, unless the group type
// has been claimed by an ODA. RBDS instructs consumer receivers to
// ignore in-house data outright; this only counts it.
//
//	6A/6B: in-house applications or open data.
func (d *Decoder) decodeGroup6(gt GroupType, blocks Blocks) {
	if d.isGroupTypeUsedByODA(gt) {
		d.decodeODA(gt, blocks)
		return
	}
	d.data.Stats.IH++
}

// decodeRadioPaging counts a radio-paging packet. No station in
// practice broadcasts this; it is otherwise unimplemented.
func decodeRadioPaging(data *Data) {
	data.Stats.Paging++
}

// decodeGroup7 decodes radio paging (7A) or open data (7B):
//
//	7A: radio paging, unless claimed by an ODA.
//	7B: open data.
func (d *Decoder) decodeGroup7(gt GroupType, blocks Blocks) {
	if gt.Version == 'A' {
		if d.isGroupTypeUsedByODA(gt) {
			d.decodeODA(gt, blocks)
		} else {
			decodeRadioPaging(d.data)
		}
		return
	}
	d.decodeODA(gt, blocks)
}

// decodeTMC counts a Traffic Message Channel packet. Full decoding
// requires EN ISO 14819-1 and is not implemented.
func decodeTMC(data *Data) {
	data.Stats.TMC++
}

// decodeGroup8 decodes the Traffic Message Channel, unless the group
// type has been claimed by an ODA:
//
//	8A: Traffic Message Channel.
//	8B: open data.
func (d *Decoder) decodeGroup8(gt GroupType, blocks Blocks) {
	if d.isGroupTypeUsedByODA(gt) {
		d.decodeODA(gt, blocks)
		return
	}
	if gt.Version == 'A' {
		decodeTMC(d.data)
	}
}
