package rds

// PTYNamesNA are the 32 RBDS (North American) program type names,
// indexed by Data.PTY.
var PTYNamesNA = [32]string{
	"No program type",
	"News",
	"Information",
	"Sports",
	"Talk",
	"Rock",
	"Classic Rock",
	"Adult Hits",
	"Soft Rock",
	"Top 40",
	"Country",
	"Oldies",
	"Soft",
	"Nostalgia",
	"Jazz",
	"Classical",
	"Rhythm and Blues",
	"Soft Rhythm and Blues",
	"Language",
	"Religious Music",
	"Religious Talk",
	"Personality",
	"Public",
	"College",
	"Unassigned 24",
	"Unassigned 25",
	"Unassigned 26",
	"Unassigned 27",
	"Unassigned 28",
	"Weather",
	"Emergency Test",
	"Emergency",
}

// PTYNamesEU are the 32 RDS (European) program type names, indexed by
// Data.PTY. Some receivers configured for the European band plan
// report these instead of PTYNamesNA.
var PTYNamesEU = [32]string{
	"No program type",
	"News",
	"Current Affairs",
	"Information",
	"Sport",
	"Education",
	"Drama",
	"Culture",
	"Science",
	"Varied",
	"Pop Music",
	"Rock Music",
	"M.O.R. Music",
	"Light Classical",
	"Serious Classical",
	"Other Music",
	"Weather",
	"Finance",
	"Children's Programs",
	"Social Affairs",
	"Religion",
	"Phone-In",
	"Travel",
	"Leisure",
	"Jazz Music",
	"Country Music",
	"National Music",
	"Oldies Music",
	"Folk Music",
	"Documentary",
	"Alarm test",
	"Alarm",
}

// PTYName returns the program type name for pty in the given band,
// or "" if pty is out of range.
func PTYName(band Band, pty uint8) string {
	if int(pty) >= len(PTYNamesNA) {
		return ""
	}
	if band == BandLFMF {
		return PTYNamesEU[pty]
	}
	return PTYNamesNA[pty]
}

// GroupTypeNamesA describes the version-A meaning of each of the 16
// RDS group codes, for diagnostics.
var GroupTypeNamesA = [16]string{
	"Basic Tuning and Switching Information only",
	"Program Item Number and Slow Labeling Codes only",
	"Radio Text only",
	"Applications Identification for ODA only",
	"Clock Time and Date only",
	"Transparent Data Channels (32 channels) or ODA",
	"In-House Applications of ODA",
	"Radio Paging of ODA",
	"Traffic Message Channel or ODA",
	"Emergency Warning System or ODA",
	"Program Type Name",
	"Open Data Applications",
	"Open Data Applications",
	"Enhanced Radio Paging or ODA",
	"Enhanced Other Networks Information Only",
	"Defined in RBDS only",
}

// GroupTypeNamesB describes the version-B meaning of each of the 16
// RDS group codes.
var GroupTypeNamesB = [16]string{
	"Basic Tuning and Switching Information only",
	"Program Item Number",
	"Radio Text only",
	"Open Data Applications",
	"Open Data Applications",
	"Transparent Data Channels (32 channels) or ODA",
	"In-House Applications of ODA",
	"Radio Paging of ODA",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Open Data Applications",
	"Enhanced Other Networks Information Only",
	"Fast Switching Information only",
}

// GroupTypeName returns the human-readable meaning of gt.
func GroupTypeName(gt GroupType) string {
	if int(gt.Code) >= len(GroupTypeNamesA) {
		return ""
	}
	if gt.Version == 'B' {
		return GroupTypeNamesB[gt.Code]
	}
	return GroupTypeNamesA[gt.Code]
}
