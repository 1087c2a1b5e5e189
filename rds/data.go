package rds

// Valid is a bitmask of which Data fields have ever been populated.
// A field is undefined until its bit here is set; the mask is
// monotonic and is only cleared by Reset.
type Valid uint32

const (
	ValidAF Valid = 1 << iota
	ValidClock
	ValidEWS
	ValidFBT
	ValidMS
	ValidPIC
	ValidPICode
	ValidPS
	ValidPTY
	ValidPTYN
	ValidRT
	ValidSLC
	ValidTDC
	ValidTACode
	ValidTPCode
	ValidEON
)

// Number of transparent data channels and the bytes retained per channel.
const (
	numTDC = 32
	tdcLen = 32
)

// Number of open-data-application registrations retained.
const numODA = 10

// PS holds the Program Service name (8 characters, not null
// terminated) and its confidence-validation shadow state.
type PS struct {
	Display [8]byte

	hiProb    [8]byte
	loProb    [8]byte
	hiProbCnt [8]byte
}

// RTText selects which of the two Radiotext buffers (A or B) is
// currently being decoded, per the A/B flag in block B.
type RTText int

const (
	RTTextA RTText = iota
	RTTextB
)

// RT is one 64-character Radiotext buffer (not null terminated) with
// its confidence-validation shadow state.
type RT struct {
	Display [64]byte

	hiProb    [64]byte
	loProb    [64]byte
	hiProbCnt [64]byte
}

// Radiotext holds both the A and B radiotext buffers plus which one
// is currently in use.
type Radiotext struct {
	A, B       RT
	decodingRT RTText
}

// Clock is the last-decoded clock time and date.
type Clock struct {
	DayHigh   bool   // Modified Julian Day high bit.
	DayLow    uint16 // Modified Julian Day low 16 bits.
	Hour      uint8
	Minute    uint8
	UTCOffset int8 // In units of half an hour.
}

// VariantCode selects how SLC.Data should be interpreted.
type VariantCode int

const (
	SLCPaging VariantCode = iota
	SLCTMCID
	SLCPagingID
	SLCLang
	slcNotAssigned1
	slcNotAssigned5
	SLCBroadcasters
	SLCEWSChannelID
)

// SLC is the slow-labeling-code payload decoded from group 1A block C.
type SLC struct {
	LinkageActuator bool
	VariantCode     VariantCode

	Paging      uint8 // Valid when VariantCode == SLCPaging.
	CountryCode uint8 // Valid when VariantCode == SLCPaging.

	TMCID          uint16 // Valid when VariantCode == SLCTMCID.
	PagingID       uint16 // Valid when VariantCode == SLCPagingID.
	LanguageCodes  uint16 // Valid when VariantCode == SLCLang.
	Broadcasters   uint16 // Valid when VariantCode == SLCBroadcasters.
	EWSChannelID   uint16 // Valid when VariantCode == SLCEWSChannelID.
}

// PIC is the Program Item Number code: when the program last started.
type PIC struct {
	Day    uint8
	Hour   uint8
	Minute uint8
}

// PTYN is the Program Type Name (8 characters, not null terminated).
type PTYN struct {
	Display [8]byte
	lastAB  bool
}

// TDC is the transparent-data-channel state: a 32-byte sliding window
// per channel, plus the channel currently selected by group 5A.
type TDC struct {
	Data        [numTDC][tdcLen]byte
	CurrChannel uint8
}

// EWS is the raw emergency-warning-system payload; interpretation is
// assigned unilaterally per country and is out of scope here.
type EWS struct {
	B, C, D Block
}

// OtherNetwork is the subset of another station's data carried by
// Enhanced Other Networks groups.
type OtherNetwork struct {
	PS     [8]byte
	PTY    uint8
	TPCode bool
	TACode bool
	AF     AFDecodeTable
	PICode uint16
	PIC    PIC
}

// FreqMap pairs this network's tuned frequency with an other-network
// frequency. Decode does not fill EON.Maps: the mapped-frequency
// variants of group 14A are not interpreted.
type FreqMap struct {
	TunedFreq Frequency
	OnFreq    Frequency
}

// EON is the Enhanced Other Networks state.
type EON struct {
	On   OtherNetwork
	Maps [5]FreqMap
}

// ODAEntry is one registered open-data-application mapping.
type ODAEntry struct {
	ID       uint16
	GT       GroupType
	PktCount uint16
}

// Stats are development-time packet counters. The original C library
// gated these behind a compile-time RDS_DEV flag; a Go library has no
// equivalent a host can toggle, so they are always populated here.
type Stats struct {
	AF, Clock, EON, EWS, FBT, IH, Paging, PIC, PICode int
	PS, PTY, PTYN, RT, SLC, TDC, TMC, TACode, TPCode, MS int

	Groups       [16]struct{ A, B uint16 }
	DataCount    uint16
	BlockBErrors uint16
}

// Data is the decoder's aggregated output: the structured record of a
// station's currently broadcast auxiliary information. Every field is
// considered undefined unless its bit in Valid is set. PS and RT
// character arrays are not null terminated.
type Data struct {
	PICode uint16
	PIC    PIC
	PTY    uint8
	TPCode bool
	TACode bool
	Music  bool

	PS  PS
	RT  Radiotext
	Clock Clock
	SLC   SLC
	PTYN  PTYN
	AF    AFTableGroup
	TDC   TDC
	EWS   EWS
	EON   EON

	ODACnt int
	ODA    [numODA]ODAEntry

	Valid Valid

	Stats Stats
}

// NewData returns a zeroed Data record ready for use by a Decoder.
func NewData() *Data {
	d := &Data{}
	d.AF = newAFTableGroup()
	return d
}

func (d *Data) setValid(v Valid) { d.Valid |= v }
