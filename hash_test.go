package crc8

import (
	"bytes"
	"testing"
	"testing/quick"

	crand "crypto/rand"
)

func TestHashWrite(t *testing.T) {
	pec := NewCRC("SMBus-PEC", 0x07, 0x00)

	for _, v := range pecVectors {
		h := pec.NewHash()
		h.Write(v.data)
		if got := h.Sum8(); got != v.want {
			t.Fatalf("Sum8(%02X) Expected: %d Got: %d\n", v.data, v.want, got)
		}
	}
}

// Splitting the input across writes must not change the digest.
func TestHashSplit(t *testing.T) {
	crc := NewCRC("CDMA2000", 0x9B, 0xFF)

	err := quick.Check(func(data []byte, split uint8) bool {
		at := int(split) % (len(data) + 1)

		h := crc.NewHash()
		h.Write(data[:at])
		h.Write(data[at:])

		return h.Sum8() == crc.Checksum(data)
	}, nil)

	if err != nil {
		t.Fatal("Error testing split writes:", err)
	}
}

func TestHashReset(t *testing.T) {
	buf := make([]byte, 32)
	crand.Read(buf)

	crc := NewCRC("I-CODE", 0x1D, 0xFD)

	h := crc.NewHash()
	h.Write(buf)
	h.Reset()

	if got := h.Sum8(); got != crc.Init {
		t.Fatalf("Reset Expected: 0x%02X Got: 0x%02X\n", crc.Init, got)
	}

	h.Write(buf)
	if got := h.Sum8(); got != crc.Checksum(buf) {
		t.Fatalf("Write after Reset Expected: 0x%02X Got: 0x%02X\n", crc.Checksum(buf), got)
	}
}

func TestHashSum(t *testing.T) {
	pec := NewCRC("SMBus-PEC", 0x07, 0x00)

	h := pec.NewHash()
	h.Write(pecVectors[0].data)

	expt := append([]byte{0xDE, 0xAD}, pecVectors[0].want)
	if got := h.Sum([]byte{0xDE, 0xAD}); !bytes.Equal(got, expt) {
		t.Fatalf("Sum Expected: %02X Got: %02X\n", expt, got)
	}

	if h.Size() != Size || h.BlockSize() != 1 {
		t.Fatalf("Size Expected: %d,1 Got: %d,%d\n", Size, h.Size(), h.BlockSize())
	}
}
