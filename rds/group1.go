package rds

// Slow-labeling-code masks within block C, RBDS section 3.1.5.2.
const (
	slcLAMask          = 0b1000_0000_0000_0000
	slcVariantMask     = 0b0111_0000_0000_0000
	slcDataMask        = 0b0000_1111_1111_1111
	slcPagingMask      = 0b0000_1111_0000_0000
	slcCountryCodeMask = 0b0000_0000_1111_1111
)

// decodeSLC decodes the slow-labeling code carried in block C of a 1A
// group. Per RBDS 3.2.1.8.3, when the linkage actuator is set a
// service carrying TP=1, or TP=0/TA=1, must not be linked to a service
// carrying TP=0/TA=0 — that check is a host policy concern and is not
// enforced here.
func decodeSLC(data *Data, blocks Blocks) {
	if blocks.C.Errors > blerCMax {
		return
	}
	data.setValid(ValidSLC)
	data.Stats.SLC++

	c := blocks.C.Val
	slc := &data.SLC
	slc.LinkageActuator = c&slcLAMask != 0
	slc.VariantCode = VariantCode((c & slcVariantMask) >> 12)

	switch slc.VariantCode {
	case SLCPaging:
		slc.Paging = uint8((c & slcPagingMask) >> 8)
		slc.CountryCode = uint8(c & slcCountryCodeMask)
	case SLCTMCID:
		slc.TMCID = c & slcDataMask
	case SLCPagingID:
		slc.PagingID = c & slcDataMask
	case SLCLang:
		slc.LanguageCodes = c & slcDataMask
	case slcNotAssigned1, slcNotAssigned5:
		slc.TMCID = 0
	case SLCBroadcasters:
		slc.Broadcasters = c & slcDataMask
	case SLCEWSChannelID:
		slc.EWSChannelID = c & slcDataMask
	}
}

// Program item number code masks within block D, RBDS section 3.1.5.2.
const (
	picDayMask    = 0b1111_1000_0000_0000
	picHourMask   = 0b0000_0111_1100_0000
	picMinuteMask = 0b0000_0000_0011_1111
)

// decodePIC decodes the program item number: when the currently
// broadcast program started. If the top five bits (day) are zero, the
// rest of the field is undefined per spec and left zero.
func decodePIC(raw uint16, pic *PIC) {
	*pic = PIC{}
	pic.Day = uint8(raw >> 11)
	if pic.Day == 0 {
		return
	}
	pic.Hour = uint8((raw & picHourMask) >> 6)
	pic.Minute = uint8(raw & picMinuteMask)
}

// decodeGroup1 decodes program item number and slow labeling codes:
//
//	1A: slow labeling codes (block C) plus program item number.
//	1B: program item number only.
func (d *Decoder) decodeGroup1(gt GroupType, blocks Blocks) {
	if gt.Version == 'A' {
		decodeSLC(d.data, blocks)
	}

	if blocks.D.Errors <= blerDMax {
		decodePIC(blocks.D.Val, &d.data.PIC)
		d.data.setValid(ValidPIC)
		d.data.Stats.PIC++
	}
}
