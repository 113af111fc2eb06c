package utils

// BytesToUint16 composes a word from its high and low bytes.
func BytesToUint16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Uint16ToBytes splits a word into its high and low bytes.
func Uint16ToBytes(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
