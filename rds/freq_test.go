package rds

import "testing"

func TestAFCodeToFreqUHF(t *testing.T) {
	for code := uint8(1); code <= 204; code++ {
		got := afCodeToFreq(code, BandUHF)
		want := 876 + uint16(code) - 1
		if got != want {
			t.Fatalf("afCodeToFreq(%d, UHF) = %d, want %d", code, got, want)
		}
	}
}

func TestAFCodeToFreqLFMF(t *testing.T) {
	for code := uint8(1); code <= 15; code++ {
		got := afCodeToFreq(code, BandLFMF)
		want := 153 + 9*(uint16(code)-1)
		if got != want {
			t.Fatalf("afCodeToFreq(%d, LF) = %d, want %d", code, got, want)
		}
	}
	for code := uint8(16); code <= 204; code++ {
		got := afCodeToFreq(code, BandLFMF)
		want := 531 + 9*(uint16(code)-16)
		if got != want {
			t.Fatalf("afCodeToFreq(%d, MF) = %d, want %d", code, got, want)
		}
	}
}

func TestFreqLess(t *testing.T) {
	lf := Frequency{Band: BandLFMF, Freq: 65535}
	uhf := Frequency{Band: BandUHF, Freq: 1}
	if !freqLess(lf, uhf) {
		t.Fatal("any LF/MF frequency must sort before any UHF frequency")
	}
	if freqLess(uhf, lf) {
		t.Fatal("UHF must not sort before LF/MF")
	}
	a := Frequency{Band: BandUHF, Freq: 981}
	b := Frequency{Band: BandUHF, Freq: 983}
	if !freqLess(a, b) || freqLess(b, a) {
		t.Fatal("same-band comparison must order by Freq")
	}
}
