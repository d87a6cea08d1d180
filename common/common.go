package common

import (
	"encoding/binary"
)

const uint64ByteSize = 8

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(num uint64) []byte {
	bytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(bytes, num)

	return bytes
}

// BytesToUint64 converts a byte slice to a uint64
func BytesToUint64(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes)
}

// Uint64ToLittleEndianBytes converts a uint64 to a byte slice in little-endian order,
// which is the layout used by the host platform serializer for fixed size integers
func Uint64ToLittleEndianBytes(num uint64) []byte {
	bytes := make([]byte, uint64ByteSize)
	binary.LittleEndian.PutUint64(bytes, num)

	return bytes
}

// LittleEndianBytesToUint64 converts a little-endian byte slice to a uint64
func LittleEndianBytesToUint64(bytes []byte) uint64 {
	return binary.LittleEndian.Uint64(bytes)
}
