package rds

// Validation hit-count limits: a character is stable once its high
// probability array hit count reaches this many consecutive matches.
const (
	psValidateLimit = 2
	rtValidateLimit = 2
)

// updatePSSimple writes a received PS character straight into the
// display array, exactly per the RBDS specification (no extra error
// detection beyond the BLER threshold the caller already applied).
func updatePSSimple(d *Data, charIdx uint8, b byte) {
	if int(charIdx) >= len(d.PS.Display) {
		return
	}
	d.PS.Display[charIdx] = b
	d.setValid(ValidPS)
}

// updatePSAdvanced runs the two-level confidence classifier against
// one PS character, promoting it into Display once every position has
// been seen stably at least psValidateLimit times.
//
// Adapted from the Silicon Labs sample application's PS hysteresis
// algorithm, as preserved in the original C rds_decoder.
func updatePSAdvanced(d *Data, charIdx uint8, b byte) {
	if int(charIdx) >= len(d.PS.Display) {
		return
	}
	ps := &d.PS
	inTransition := false

	switch {
	case ps.hiProb[charIdx] == b:
		if ps.hiProbCnt[charIdx] < psValidateLimit {
			ps.hiProbCnt[charIdx]++
		} else {
			ps.hiProbCnt[charIdx] = psValidateLimit
			ps.loProb[charIdx] = b
		}
	case ps.loProb[charIdx] == b:
		if ps.hiProbCnt[charIdx] >= psValidateLimit {
			inTransition = true
			ps.hiProbCnt[charIdx] = psValidateLimit + 1
		} else {
			ps.hiProbCnt[charIdx] = psValidateLimit
		}
		ps.loProb[charIdx] = ps.hiProb[charIdx]
		ps.hiProb[charIdx] = b
	case ps.hiProbCnt[charIdx] == 0:
		ps.hiProb[charIdx] = b
		ps.hiProbCnt[charIdx] = 1
	default:
		ps.loProb[charIdx] = b
	}

	if inTransition {
		for i := range ps.hiProbCnt {
			if ps.hiProbCnt[i] > 1 {
				ps.hiProbCnt[i]--
			}
		}
	}

	complete := true
	for _, cnt := range ps.hiProbCnt {
		if cnt < psValidateLimit {
			complete = false
			break
		}
	}
	if complete {
		d.setValid(ValidPS)
		ps.Display = ps.hiProb
	}
}

// updateRTSimple writes count received characters starting at addr
// into rt.Display, per-character gated by the C/D block error rate
// (the first two characters of a 4-char group ride on block C, the
// rest on block D — the count > 2 check distinguishes a 2A group's
// 4-character update from a 2B group's 2-character one). A 0x0D
// end-of-text character wipes everything after it; any leading nulls
// before addr become spaces.
func updateRTSimple(rt *RT, blocks Blocks, count, addr uint8, chars []byte) {
	var i uint8
	for i = 0; i < count; i++ {
		var errCount, blerMax int
		if i < 2 && count > 2 {
			errCount, blerMax = blocks.C.Errors, blerCMax
		} else {
			errCount, blerMax = blocks.D.Errors, blerDMax
		}
		if errCount > blerMax {
			continue
		}
		rt.Display[addr+i] = chars[i]
		if chars[i] == 0x0d {
			for j := addr + i + 1; int(j) < len(rt.Display); j++ {
				rt.Display[j] = 0
			}
			break
		}
	}

	for i = 0; i < addr; i++ {
		if rt.Display[i] == 0 {
			rt.Display[i] = ' '
		}
	}
}

// bumpRTValidationCount starts a fresh validation cycle on rt when the
// A/B flag has just flipped to it, discarding the confidence state rt
// kept from the last time it was the current buffer.
//
// The increments below run before the memset wipe, so — as in the
// original C implementation — they have no observable effect; the
// wipe is what matters and is preserved as specified.
func bumpRTValidationCount(rt *RT) {
	for i := range rt.hiProbCnt {
		if rt.hiProb[i] == 0 {
			rt.hiProb[i] = ' '
			rt.hiProbCnt[i]++
		}
	}
	for i := range rt.hiProbCnt {
		rt.hiProbCnt[i]++
	}

	rt.hiProbCnt = [64]byte{}
	rt.hiProb = [64]byte{}
	rt.loProb = [64]byte{}
}

// updateRTAdvance runs the confidence classifier over count received
// Radiotext bytes, translating nulls to spaces before classifying.
func updateRTAdvance(rt *RT, blocks Blocks, count, addr uint8, b []byte) {
	textChanging := false

	var i uint8
	for i = 0; i < count; i++ {
		var errCount, blerMax int
		if i < 2 && count > 2 {
			errCount, blerMax = blocks.C.Errors, blerCMax
		} else {
			errCount, blerMax = blocks.D.Errors, blerDMax
		}
		if errCount > blerMax {
			continue
		}
		ch := b[i]
		if ch == 0 {
			ch = ' '
		}
		idx := addr + i

		switch {
		case rt.hiProb[idx] == ch:
			if rt.hiProbCnt[idx] < rtValidateLimit {
				rt.hiProbCnt[idx]++
			} else {
				rt.hiProbCnt[idx] = rtValidateLimit
				rt.loProb[idx] = ch
			}
		case rt.loProb[idx] == ch:
			if rt.hiProbCnt[idx] >= rtValidateLimit {
				textChanging = true
				rt.hiProbCnt[idx] = rtValidateLimit + 1
			} else {
				rt.hiProbCnt[idx] = rtValidateLimit
			}
			rt.loProb[idx] = rt.hiProb[idx]
			rt.hiProb[idx] = ch
		case rt.hiProbCnt[idx] == 0:
			rt.hiProb[idx] = ch
			rt.hiProbCnt[idx] = 1
		default:
			rt.loProb[idx] = ch
		}
	}

	if !textChanging {
		return
	}
	for i := range rt.hiProbCnt {
		if rt.hiProbCnt[i] > 1 {
			rt.hiProbCnt[i]--
		}
	}
}
