// Command rdsstats decodes an RDS Spy log file and prints the
// resulting packet-type statistics, demonstrating ODA registration
// against RadioText+, RDS-TMC, and iTunes tagging.
package main

import (
	"fmt"
	"os"

	"github.com/bartgrantham/rbdsdecode/rds"
	"github.com/bartgrantham/rbdsdecode/rdsspy"
)

type odaStats struct {
	rtPlusCnt, tmcCnt, itunesCnt int
}

func decodeODA(appID uint16, data *rds.Data, blocks rds.Blocks, gt rds.GroupType, userData any) {
	stats := userData.(*odaStats)
	switch appID {
	case rds.AIDRTPlus:
		stats.rtPlusCnt++
	case rds.AIDTMC:
		stats.tmcCnt++
	case rds.AIDITunes:
		stats.itunesCnt++
	}
}

func clearODA(userData any) {
	*userData.(*odaStats) = odaStats{}
}

func printStats(data *rds.Data, stats *odaStats) {
	s := &data.Stats
	fmt.Println("RDS:", s.DataCount)
	fmt.Println("BERR:", s.BlockBErrors)
	for i, g := range s.Groups {
		fmt.Printf("%dA: %d\n", i, g.A)
		fmt.Printf("%dB: %d\n", i, g.B)
	}

	fmt.Println("AF:", s.AF)
	fmt.Println("CLOCK:", s.Clock)
	fmt.Println("EON:", s.EON)
	fmt.Println("EWS:", s.EWS)
	fmt.Println("FBT:", s.FBT)
	fmt.Println("IH:", s.IH)
	fmt.Println("MS:", s.MS)
	fmt.Println("PAGING:", s.Paging)
	fmt.Println("PI_CODE:", s.PICode)
	fmt.Println("PS:", s.PS)
	fmt.Println("PTY:", s.PTY)
	fmt.Println("PTYN:", s.PTYN)
	fmt.Println("RT:", s.RT)
	fmt.Println("SLC:", s.SLC)
	fmt.Println("TA_CODE:", s.TACode)
	fmt.Println("TDC:", s.TDC)
	fmt.Println("TMC:", s.TMC)
	fmt.Println("TP_CODE:", s.TPCode)

	fmt.Println("RT+:", stats.rtPlusCnt)
	fmt.Println("RDS-TMC:", stats.tmcCnt)
	fmt.Println("iTunes:", stats.itunesCnt)
}

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: rdsstats <path/to/rdsspy.log>")
		return 1
	}

	groups, err := rdsspy.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't read %q: %v\n", os.Args[1], err)
		return 2
	}
	if len(groups) == 0 {
		fmt.Fprintf(os.Stderr, "%q is empty\n", os.Args[1])
		return 3
	}

	cfg, err := loadConfig("rds.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	data := rds.NewData()
	stats := &odaStats{}
	dec := rds.New(rds.Config{AdvancedPSDecoding: cfg.AdvancedPSDecoding, Data: data})
	if cfg.EnableODA {
		dec.SetODACallbacks(decodeODA, clearODA, stats)
	}

	for _, blocks := range groups {
		dec.Decode(blocks)
	}

	printStats(data, stats)
	return 0
}
