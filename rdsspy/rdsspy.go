// Package rdsspy reads the line-oriented RDS group log format
// produced by RDS Spy, for offline decoder testing against captured
// traffic instead of a live tuner.
//
// Each line holds one group: four 16-bit hex words (blocks A, B, C,
// D) separated by whitespace, each optionally suffixed with
// "/<error-class>" where error-class is 0-3 (0, 1 and 2 map to
// BLERNone, BLER12 and BLER35; 3 also maps to BLER35) or "X" for an
// uncorrectable block, which maps to BLER6Plus. A block with
// no suffix is assumed error-free. Blank lines and lines beginning
// with "#" are ignored.
package rdsspy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bartgrantham/rbdsdecode/rds"
)

// ParseLine parses one RDS Spy log line into a Blocks value.
func ParseLine(line string) (rds.Blocks, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return rds.Blocks{}, fmt.Errorf("rdsspy: want 4 blocks, got %d", len(fields))
	}

	var blocks [4]rds.Block
	for i, f := range fields {
		b, err := parseBlock(f)
		if err != nil {
			return rds.Blocks{}, fmt.Errorf("rdsspy: block %d: %w", i, err)
		}
		blocks[i] = b
	}
	return rds.Blocks{A: blocks[0], B: blocks[1], C: blocks[2], D: blocks[3]}, nil
}

func parseBlock(field string) (rds.Block, error) {
	word, suffix, _ := strings.Cut(field, "/")

	val, err := strconv.ParseUint(word, 16, 16)
	if err != nil {
		return rds.Block{}, fmt.Errorf("parsing hex word %q: %w", word, err)
	}

	errors := rds.BLERNone
	if suffix != "" {
		if strings.EqualFold(suffix, "X") {
			errors = rds.BLER6Plus
		} else {
			n, err := strconv.Atoi(suffix)
			if err != nil || n < rds.BLERNone || n > rds.BLER6Plus {
				return rds.Block{}, fmt.Errorf("parsing error class %q", suffix)
			}
			if n > rds.BLER35 {
				n = rds.BLER35
			}
			errors = n
		}
	}
	return rds.Block{Val: uint16(val), Errors: errors}, nil
}

// ReadFile reads every group from the RDS Spy log at path. It returns
// an error wrapping the first unparseable line, if any; a file that
// parses cleanly but contains zero groups returns an empty, non-nil
// slice.
func ReadFile(path string) ([]rds.Blocks, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f)
}

func readAll(r io.Reader) ([]rds.Blocks, error) {
	out := []rds.Blocks{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		blocks, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("rdsspy: line %d: %w", lineNo, err)
		}
		out = append(out, blocks)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
