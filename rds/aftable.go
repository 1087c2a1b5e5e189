package rds

// AFTable is a tuned-frequency anchor plus the list of alternative
// frequencies discovered for it.
type AFTable struct {
	TunedFreq Frequency
	Entry     [25]Frequency
	Count     uint8
}

// AFDecodeTable wraps an AFTable with the state needed to decode it
// out of an interleaved, ambiguous AF stream: which encoding method
// applies, how many more frequencies are expected, and which band the
// next entries belong to.
type AFDecodeTable struct {
	Table      AFTable
	EncMethod  AFEncoding
	band       Band
	prevMethod AFEncoding
	expected   uint8
}

// AFTableGroup is a bounded pool of AF decode tables, indexed by
// tuned frequency, plus the index of the table currently being filled.
type AFTableGroup struct {
	Table           [20]AFDecodeTable
	Count           uint8
	currentTableIdx int8
}

func newAFTableGroup() AFTableGroup {
	return AFTableGroup{currentTableIdx: -1}
}

func findAFFreqIdx(table *AFTable, freq Frequency) int {
	for i := uint8(0); i < table.Count; i++ {
		if freqEqual(table.Entry[i], freq) {
			return int(i)
		}
	}
	return -1
}

func freqInAFTable(table *AFTable, freq Frequency) bool {
	return findAFFreqIdx(table, freq) != -1
}

func decAFExpectedCount(t *AFDecodeTable) {
	if t.expected == 0 {
		return
	}
	t.expected--
}

// insertAltFreq appends freq to table if there's room and it isn't
// already present.
func insertAltFreq(table *AFTable, freq Frequency) bool {
	if int(table.Count) >= len(table.Entry) {
		return false
	}
	if freqInAFTable(table, freq) {
		return false
	}
	table.Entry[table.Count] = freq
	table.Count++
	return true
}

func addAltFreq(t *AFDecodeTable, freq Frequency) bool {
	decAFExpectedCount(t)
	return insertAltFreq(&t.Table, freq)
}

// handleFreqCode interprets a non-frequency sentinel code (filler,
// LF/MF-follows, or any other reserved code), decrementing the
// expected count as appropriate. It returns true if freqCode was a
// sentinel and has been fully handled; false if freqCode represents an
// actual frequency the caller must still process.
func handleFreqCode(t *AFDecodeTable, freqCode uint8) bool {
	if freqCode == afFillerCode {
		decAFExpectedCount(t)
		return true
	}
	if freqCode == afLFMFFollows {
		t.band = BandLFMF
		decAFExpectedCount(t)
		return true
	}
	handled := !freqCodeIsFreq(freqCode)
	if handled {
		decAFExpectedCount(t)
	}
	return handled
}

// decodeTableStartBlock decodes the first block of an AF table: a
// count byte (already stripped by the caller into numFreqs) followed
// by the first carried frequency or sentinel.
func decodeTableStartBlock(t *AFDecodeTable, numFreqs uint8, secondByte uint8) {
	t.expected = numFreqs
	t.band = BandUHF // Always start with UHF, then LF/MF.

	if t.prevMethod != AFEncodingUnknown {
		t.EncMethod = t.prevMethod
	}

	if handleFreqCode(t, secondByte) {
		return
	}

	freq := Frequency{Band: t.band, Attrib: AttribSameProgram, Freq: afCodeToFreq(secondByte, t.band)}
	addAltFreq(t, freq)
}

// decodeTableNthBlock decodes the 2nd..nth block of an AF table,
// inferring the encoding method if not yet known.
func decodeTableNthBlock(t *AFDecodeTable, firstByte, secondByte uint8) {
	if t.expected == 0 {
		// More frequency codes than expected; probably missed a
		// start-of-table block. Drop.
		return
	}

	handledFirst := handleFreqCode(t, firstByte)
	firstFreq := Frequency{Band: t.band, Attrib: AttribSameProgram, Freq: afCodeToFreq(firstByte, t.band)}
	handledSecond := handleFreqCode(t, secondByte)
	secondFreq := Frequency{Band: t.band, Attrib: AttribSameProgram, Freq: afCodeToFreq(secondByte, t.band)}

	if t.EncMethod == AFEncodingUnknown {
		switch {
		case handledFirst && handledSecond:
			// Still don't know; wait for the next pair.
			return
		case handledFirst || handledSecond:
			// Method B always sends two real frequencies, so a single
			// sentinel means method A.
			t.EncMethod = AFEncodingA
		case freqEqual(firstFreq, t.Table.TunedFreq) || freqEqual(secondFreq, t.Table.TunedFreq):
			t.EncMethod = AFEncodingB
		default:
			t.EncMethod = AFEncodingA
			if t.Table.TunedFreq.Freq != 0 {
				// The anchor we provisionally held onto turns out to be
				// an ordinary entry now that we know this is method A.
				addAltFreq(t, t.Table.TunedFreq)
				t.Table.TunedFreq = Frequency{}
			}
		}
	}

	t.prevMethod = t.EncMethod

	if t.EncMethod == AFEncodingA {
		if !handledFirst {
			addAltFreq(t, firstFreq)
		}
		if !handledSecond {
			addAltFreq(t, secondFreq)
		}
		return
	}

	// Method B: one of the two frequencies must equal the tuned
	// frequency; the other is the alternative, tagged SAME_PROGRAM or
	// REGIONAL_VARIANT by which of the pair is numerically larger.
	if handledFirst || handledSecond {
		// Should not happen: method B always carries two real frequencies.
		return
	}
	switch {
	case freqEqual(t.Table.TunedFreq, firstFreq):
		if freqLess(firstFreq, secondFreq) {
			secondFreq.Attrib = AttribRegionalVariant
		}
		addAltFreq(t, secondFreq)
	case freqEqual(t.Table.TunedFreq, secondFreq):
		if freqLess(firstFreq, secondFreq) {
			firstFreq.Attrib = AttribRegionalVariant
		}
		addAltFreq(t, firstFreq)
	default:
		// Neither frequency matches the tuned frequency. Drop.
	}
}

// findAFTableIdx finds the pool index of the table anchored at
// tunedFreq, or -1.
func findAFTableIdx(group *AFTableGroup, tunedFreq Frequency) int {
	for i := uint8(0); i < group.Count; i++ {
		if freqEqual(group.Table[i].Table.TunedFreq, tunedFreq) {
			return int(i)
		}
	}
	return -1
}

// decodeGroupStartBlock selects (or allocates) the table this start
// block belongs to, then defers to decodeTableStartBlock.
func decodeGroupStartBlock(group *AFTableGroup, numFreqs uint8, secondByte uint8) {
	encodingMethod := AFEncodingUnknown

	if group.Count == 1 && group.Table[0].EncMethod == AFEncodingA {
		// There is only ever one method-A table; reuse it.
		group.currentTableIdx = 0
		encodingMethod = AFEncodingA
	} else {
		group.currentTableIdx = -1
	}

	if numFreqs == 1 {
		// Only method A ever declares a single-entry table, and there
		// is only one method-A table, so we know it.
		group.currentTableIdx = 0
		encodingMethod = AFEncodingA
	}

	if group.currentTableIdx == -1 {
		freq := Frequency{Band: BandUHF, Attrib: AttribSameProgram, Freq: afCodeToFreq(secondByte, BandUHF)}
		group.currentTableIdx = int8(findAFTableIdx(group, freq))
		if group.currentTableIdx == -1 {
			if int(group.Count) == len(group.Table) {
				// Pool exhausted; can't allocate a new table.
				return
			}
			group.currentTableIdx = int8(group.Count)
			group.Count++
			t := &group.Table[group.currentTableIdx]
			t.EncMethod = encodingMethod
			if t.EncMethod == AFEncodingUnknown {
				// Don't yet know if this is method A or B; hold the
				// candidate anchor here until inference resolves it.
				t.Table.TunedFreq = freq
			}
		}
	}

	decodeTableStartBlock(&group.Table[group.currentTableIdx], numFreqs, secondByte)
}

func decodeGroupNthBlock(group *AFTableGroup, firstByte, secondByte uint8) {
	if group.currentTableIdx < 0 {
		return
	}
	decodeTableNthBlock(&group.Table[group.currentTableIdx], firstByte, secondByte)
}

// DecodeGroupBlock feeds one 16-bit AF block into the table group,
// dispatching to a new table's start block or the current table's
// continuation based on whether the high byte is a count code.
func DecodeGroupBlock(group *AFTableGroup, block uint16) {
	firstByte := uint8(block >> 8)
	secondByte := uint8(block & 0xFF)

	if isFreqCodeCount(firstByte) {
		decodeGroupStartBlock(group, freqCodeToCount(firstByte), secondByte)
	} else {
		decodeGroupNthBlock(group, firstByte, secondByte)
	}
}
