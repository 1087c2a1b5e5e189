// Package rds decodes a stream of 4-block RDS/RBDS groups into a
// structured record of a station's broadcast auxiliary data: program
// identification, program type, program service name, radiotext,
// clock, alternative frequencies, slow-labeling codes, transparent
// data channels, emergency-warning blocks, enhanced-other-network
// data, program-type-name, and open-data-application registrations.
//
// See the 1998 United States RBDS standard for the wire format this
// package interprets.
package rds

// Block error rate classes, per RBDS section 3.1.5, in ascending order
// of unreliability.
const (
	BLERNone = iota // No block errors.
	BLER12          // 1-2 block errors.
	BLER35          // 3-5 block errors.
	BLER6Plus       // 6+ block errors.
)

// Maximum acceptable block error rate per block. Block B governs
// group dispatch and gets the strictest tolerance since it determines
// how the remaining blocks are interpreted.
const (
	blerAMax = BLER35
	blerBMax = BLER12
	blerCMax = BLER35
	blerDMax = BLER35
)

// Block is a single 16-bit RDS data word plus its error-rate class.
type Block struct {
	Val    uint16
	Errors int
}

// Blocks holds one complete RDS group: four blocks named A through D.
type Blocks struct {
	A, B, C, D Block
}
