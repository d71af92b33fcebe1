// Package wal holds helpers shared by the entry journal and the exit
// outbox.
package wal

import "hash/crc32"

// CRC32 computes the IEEE checksum used to frame journal records.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// CRC32Valid reports whether sum matches data.
func CRC32Valid(data []byte, sum uint32) bool {
	return CRC32(data) == sum
}
