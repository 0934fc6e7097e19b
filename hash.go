package crc8

import "hash"

// The size of a CRC-8 checksum in bytes.
const Size = 1

// Hash8 is the common interface implemented by streaming CRC-8 digests.
type Hash8 interface {
	hash.Hash
	Sum8() uint8
}

type digest struct {
	crc  uint8
	init uint8
	tbl  Table
}

// New returns a Hash8 computing the checksum for the polynomial the
// table was built with, seeded with init.
func New(init uint8, table Table) Hash8 {
	return &digest{init, init, table}
}

// NewHash returns a streaming digest bound to the same polynomial,
// initial value and table as crc.
func (crc CRC) NewHash() Hash8 {
	return New(crc.Init, crc.tbl)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = d.init }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Checksum(d.crc, p, d.tbl)
	return len(p), nil
}

func (d *digest) Sum8() uint8 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.crc)
}
