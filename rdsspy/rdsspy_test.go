package rdsspy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bartgrantham/rbdsdecode/rds"
)

func TestParseLineNoErrors(t *testing.T) {
	blocks, err := ParseLine("1234 0800 ABCD 0001")
	if err != nil {
		t.Fatal(err)
	}
	want := rds.Blocks{
		A: rds.Block{Val: 0x1234, Errors: rds.BLERNone},
		B: rds.Block{Val: 0x0800, Errors: rds.BLERNone},
		C: rds.Block{Val: 0xABCD, Errors: rds.BLERNone},
		D: rds.Block{Val: 0x0001, Errors: rds.BLERNone},
	}
	if blocks != want {
		t.Fatalf("ParseLine() = %+v, want %+v", blocks, want)
	}
}

func TestParseLineWithErrorSuffixes(t *testing.T) {
	blocks, err := ParseLine("1234/1 0800/X ABCD/3 0001")
	if err != nil {
		t.Fatal(err)
	}
	if blocks.A.Errors != rds.BLER12 {
		t.Fatalf("A.Errors = %d, want BLER12", blocks.A.Errors)
	}
	if blocks.B.Errors != rds.BLER6Plus {
		t.Fatalf("B.Errors = %d, want BLER6Plus for an \"X\" suffix", blocks.B.Errors)
	}
	if blocks.C.Errors != rds.BLER35 {
		t.Fatalf("C.Errors = %d, want BLER35", blocks.C.Errors)
	}
	if blocks.D.Errors != rds.BLERNone {
		t.Fatalf("D.Errors = %d, want BLERNone with no suffix", blocks.D.Errors)
	}
}

func TestParseLineRejectsWrongFieldCount(t *testing.T) {
	if _, err := ParseLine("1234 0800 ABCD"); err == nil {
		t.Fatal("want error for a line with only 3 blocks")
	}
}

func TestParseLineRejectsBadErrorSuffix(t *testing.T) {
	if _, err := ParseLine("1234/9 0800 ABCD 0001"); err == nil {
		t.Fatal("want error for an out-of-range error class")
	}
}

func TestReadFileSkipsBlankAndCommentLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.log")
	content := "# captured at 88.5 MHz\n\n1234 0800 ABCD 0001\n\n5678/2 0000/X 0000 0000\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	groups, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[1].A.Val != 0x5678 || groups[1].A.Errors != rds.BLER35 {
		t.Fatalf("groups[1].A = %+v, want Val=0x5678 Errors=BLER35", groups[1].A)
	}
}

func TestReadFileReportsLineNumberOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.log")
	content := "1234 0800 ABCD 0001\nnot hex at all\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("want an error for the malformed second line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q does not name line 2", err)
	}
}

func TestReadFileNonexistentPath(t *testing.T) {
	if _, err := ReadFile("/nonexistent/path/to/nothing.log"); err == nil {
		t.Fatal("want error for a nonexistent file")
	}
}
