package table

// Reference tables for morse.BaseCodes (A, B) and morse.ExtendedCodes (C), as
// embedded in the C decoders the generator was written for.

var goldenIndexDoubling = []byte{
	0xac, 0xca, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x80, 0x86, 0x92, 0x80, 0x94, 0x82, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x46, 0x50, 0x0e, 0x00,
	0x00, 0x00, 0x26, 0x52, 0x34, 0x24, 0x00, 0x00, 0x56, 0x44,
	0x0c, 0x0a, 0x48, 0x4c, 0x00, 0x04, 0x28, 0x54, 0x00, 0x00,
	0x30, 0x40, 0x2a, 0x38, 0x18, 0x1a, 0x00, 0x00, 0x00, 0x00,
	0x3a, 0x00, 0x32, 0x4e, 0x3e, 0x3c, 0x2e, 0x16, 0x00, 0x08,
	0x42, 0x36, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
}

var goldenBitPacked = []byte{
	0x03, 0x5b, 0x97, 0x6b, 0x4b, 0x7f, 0x7b, 0x93, 0x9b, 0x8d,
	0xa3, 0x57, 0x73, 0x63, 0x83, 0x67, 0x9e, 0x5c, 0x02, 0x74,
	0x00, 0x84, 0x6e, 0x4d, 0xa4, 0x50, 0xa8, 0xad, 0x88, 0x01,
	0x03, 0x18, 0x14, 0x00, 0x10, 0x00, 0x00, 0x00, 0x0c, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x1c, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x24,
	0x00, 0x28, 0x04,
}

var goldenSparse = []byte{
	0x01, 0x45, 0x54, 0x49, 0x41, 0x4e, 0x4d, 0x53, 0x55, 0x52,
	0x57, 0x44, 0x4b, 0x47, 0x4f, 0x48, 0x56, 0x46, 0x01, 0x4c,
	0x01, 0x50, 0x4a, 0x42, 0x58, 0x43, 0x59, 0x5a, 0x51, 0x01,
	0x01, 0x35, 0x34, 0x01, 0x33, 0x01, 0x01, 0x01, 0x32, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x31, 0x36, 0x3d, 0x2f,
	0x01, 0x01, 0x01, 0x28, 0x01, 0x37, 0x01, 0x01, 0x01, 0x38,
	0x01, 0x39, 0x30, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x3f, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x2e, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x27, 0x01, 0x01, 0x2d, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x29, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x2c, 0x01, 0x01, 0x01, 0x01, 0x3a,
}
