package bloom

// DecodeHeaderV1 decodes the fixed v1 prefix from src.
//
// Only the prefix is checked; the seed table and bitset are checked by Decode.
func DecodeHeaderV1(src []byte) (HeaderV1, error) {
	if len(src) < HeaderBytesV1 {
		return HeaderV1{}, ErrBadRegionSize
	}
	if src[0] != VersionV1 {
		return HeaderV1{}, ErrBadVersion
	}

	h := HeaderV1{
		MBits: readU48LE(src[1:7]),
		K:     src[7],
	}
	if h.MBits == 0 {
		return HeaderV1{}, ErrBadMBits
	}
	if h.K == 0 {
		return HeaderV1{}, ErrBadK
	}
	return h, nil
}

// EncodeHeaderV1 writes the fixed v1 prefix into dst.
func EncodeHeaderV1(dst []byte, h HeaderV1) error {
	if len(dst) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if h.MBits == 0 {
		return ErrBadMBits
	}
	if h.MBits > MaxMBitsV1 {
		return ErrMBitsOverflow
	}
	if h.K == 0 {
		return ErrBadK
	}

	dst[0] = VersionV1
	writeU48LE(dst[1:7], h.MBits)
	dst[7] = h.K
	return nil
}
