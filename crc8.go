package crc8

import "fmt"

// A CRC binds a polynomial and initial value to a precomputed lookup
// table. The table is built once by NewCRC and never exposed, so a
// checksum can never be paired with a table for a different polynomial.
type CRC struct {
	Name string
	Poly uint8
	Init uint8

	tbl Table
}

func NewCRC(name string, poly, init uint8) (crc CRC) {
	crc.Name = name
	crc.Poly = poly
	crc.Init = init
	crc.tbl = NewTable(crc.Poly)

	return
}

func (crc CRC) String() string {
	return fmt.Sprintf("{Name:%s Poly:0x%02X Init:0x%02X}", crc.Name, crc.Poly, crc.Init)
}

// Checksum computes the table-driven checksum of data.
func (crc CRC) Checksum(data []byte) uint8 {
	return Checksum(crc.Init, data, crc.tbl)
}

// A Table holds the checksum of each single byte value for one polynomial.
type Table [256]uint8

// NewTable runs each byte value through the bit-serial step with a zero
// remainder. Entries are independent of the initial value.
func NewTable(poly uint8) (table Table) {
	for tIdx := range table {
		table[tIdx] = update(0, uint8(tIdx), poly)
	}
	return table
}

// update folds one byte into the remainder, one bit at a time. The
// polynomial's leading x^8 term is implicit: when the high bit is set it
// is shifted out and the remaining 8 coefficients are XORed in.
func update(crc, b, poly uint8) uint8 {
	crc ^= b
	for bIdx := 0; bIdx < 8; bIdx++ {
		if crc&0x80 != 0 {
			crc = crc<<1 ^ poly
		} else {
			crc = crc << 1
		}
	}
	return crc
}

// Bitwise computes the checksum of data by plain polynomial division,
// eight shift steps per byte. An empty data slice yields init.
func Bitwise(init uint8, data []byte, poly uint8) (crc uint8) {
	crc = init
	for _, v := range data {
		crc = update(crc, v, poly)
	}
	return
}

// Checksum computes the checksum of data with one lookup per byte. The
// result matches Bitwise for the polynomial the table was built with.
func Checksum(init uint8, data []byte, table Table) (crc uint8) {
	crc = init
	for _, v := range data {
		crc = table[crc^v]
	}
	return
}
