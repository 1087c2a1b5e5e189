package rds

// ODADecodeFunc is invoked synchronously, inside Decode, whenever a
// group arrives whose (code, version) matches a registered ODA
// application. It must not reenter the Decoder.
type ODADecodeFunc func(appID uint16, data *Data, blocks Blocks, gt GroupType, userData any)

// ODAClearFunc is invoked by Reset to let a host discard any ODA state
// it has accumulated in userData.
type ODAClearFunc func(userData any)

// Config configures a Decoder.
type Config struct {
	// AdvancedPSDecoding selects the two-level confidence classifier
	// for Program Service text instead of the direct write-through.
	AdvancedPSDecoding bool

	// Data is the record the Decoder mutates. The caller owns it and
	// must keep it valid for the Decoder's lifetime.
	Data *Data
}

// Decoder dispatches RDS groups to the correct per-group-type decoder
// and maintains PI/PTY/TP on every accepted group. It is not
// thread-safe; callers serialize their own calls to Decode.
type Decoder struct {
	data               *Data
	advancedPSDecoding bool

	odaDecode    ODADecodeFunc
	odaClear     ODAClearFunc
	odaUserData  any
}

// New creates a Decoder bound to cfg.Data. It returns nil if cfg.Data
// is nil, mirroring the original C API's null-handle-on-failure
// contract.
func New(cfg Config) *Decoder {
	if cfg.Data == nil {
		return nil
	}
	return &Decoder{
		data:               cfg.Data,
		advancedPSDecoding: cfg.AdvancedPSDecoding,
	}
}

// SetODACallbacks registers the application-specific ODA decode and
// clear callbacks. Either may be nil.
func (d *Decoder) SetODACallbacks(decode ODADecodeFunc, clear ODAClearFunc, userData any) {
	d.odaDecode = decode
	d.odaClear = clear
	d.odaUserData = userData
}

// Reset zeros the bound Data record and invokes the registered ODA
// clear callback, if any.
func (d *Decoder) Reset() {
	*d.data = Data{}
	d.data.AF = newAFTableGroup()
	if d.odaClear != nil {
		d.odaClear(d.odaUserData)
	}
}

// Decode interprets one RDS group and updates the bound Data record.
//
// Step order, per the RBDS dispatch contract:
//  1. Block A within threshold overwrites PI code.
//  2. Block B above threshold aborts the group entirely.
//  3. Extract the group type from block B.
//  4. For B-version groups, a cleaner block C than B supplies a
//     redundant PI code, overwriting step 1's result.
//  5. TP and PTY are always updated from block B.
//  6. Dispatch to the group-type-specific decoder.
func (d *Decoder) Decode(blocks Blocks) {
	d.data.Stats.DataCount++

	if blocks.A.Errors <= blerAMax {
		d.data.PICode = blocks.A.Val
		d.data.setValid(ValidPICode)
		d.data.Stats.PICode++
	}

	if blocks.B.Errors > blerBMax {
		d.data.Stats.BlockBErrors++
		return
	}

	gt := extractGroupType(blocks.B)

	if gt.Version == 'B' && blocks.C.Errors <= blerCMax && blocks.C.Errors < blocks.B.Errors {
		d.data.PICode = blocks.C.Val
		d.data.setValid(ValidPICode)
		d.data.Stats.PICode++
	}

	if gt.Version == 'A' {
		d.data.Stats.Groups[gt.Code].A++
	} else {
		d.data.Stats.Groups[gt.Code].B++
	}

	decodePTY(d.data, blocks.B)

	switch gt.Code {
	case 0:
		d.decodeGroup0(gt, blocks)
	case 1:
		d.decodeGroup1(gt, blocks)
	case 2:
		d.decodeGroup2(gt, blocks)
	case 3:
		d.decodeGroup3(gt, blocks)
	case 4:
		d.decodeGroup4(gt, blocks)
	case 5:
		d.decodeGroup5(gt, blocks)
	case 6:
		d.decodeGroup6(gt, blocks)
	case 7:
		d.decodeGroup7(gt, blocks)
	case 8:
		d.decodeGroup8(gt, blocks)
	case 9:
		d.decodeGroup9(gt, blocks)
	case 10:
		d.decodeGroup10(gt, blocks)
	case 11, 12, 13:
		d.decodeODA(gt, blocks)
	case 14:
		d.decodeGroup14(gt, blocks)
	case 15:
		d.decodeGroup15(gt, blocks)
	}
}

func decodePTY(data *Data, b Block) {
	data.TPCode = b.Val&tpBit != 0
	data.PTY = uint8((b.Val & ptyMask) >> 5)

	data.setValid(ValidTPCode)
	if data.TPCode {
		data.Stats.TPCode++
	}

	data.setValid(ValidPTY)
	data.Stats.PTY++
}

func decodeTA(data *Data, b Block) {
	const taMask = 0b0000_0000_0001_0000
	data.TACode = b.Val&taMask != 0
	data.setValid(ValidTACode)
	data.Stats.TACode++
}
