package bloom

import "encoding/binary"

func readU32LE(b []byte) uint32     { return binary.LittleEndian.Uint32(b) }
func writeU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// readU48LE reads a 6 byte little-endian unsigned integer.
func readU48LE(b []byte) uint64 {
	_ = b[5]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 |
		uint64(b[3])<<24 | uint64(b[4])<<32 | uint64(b[5])<<40
}

// writeU48LE writes the low 48 bits of v. The caller checks v <= MaxMBitsV1.
func writeU48LE(b []byte, v uint64) {
	_ = b[5]
	for i := range 6 {
		b[i] = byte(v >> (8 * i))
	}
}
