// Implements the System Management Bus (SMBus) Packet Error Code, also
// known as CRC-8-ATM HEC: polynomial x^8 + x^2 + x + 1, initial value 0.
package pec

import "github.com/embedded-go/crc8"

//go:generate crc8gen -poly 0x07 -pkg pec -var table -o table.go

const (
	Poly = 0x07
	Init = 0x00
)

// Checksum returns the Packet Error Code of data. For SMBus transactions
// data covers every byte on the wire including the pre-shifted address.
func Checksum(data []byte) uint8 {
	return crc8.Checksum(Init, data, table)
}

// New returns a streaming Packet Error Code digest.
func New() crc8.Hash8 {
	return crc8.New(Init, table)
}
