// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash functions

// nodehash returns the bucket of node (level, hi, lo) in a table with size
// buckets. The key is packed in buff, which must have at least 10 bytes.
func nodehash(buff []byte, level int, hi, lo Edge, size int) uint32 {
	binary.LittleEndian.PutUint16(buff[0:], uint16(level))
	binary.LittleEndian.PutUint32(buff[2:], hi.word())
	binary.LittleEndian.PutUint32(buff[6:], lo.word())
	return uint32(xxhash.Sum64(buff[:10]) % uint64(size))
}

// _TRIPLE returns the slot for the operands (a, b, c) of operation op in a
// cache of size len. The four fields are packed in a 13-byte key, as in
// nodehash.
func _TRIPLE(op uint8, a, b, c uint32, len int) int {
	var buff [13]byte
	buff[0] = op
	binary.LittleEndian.PutUint32(buff[1:], a)
	binary.LittleEndian.PutUint32(buff[5:], b)
	binary.LittleEndian.PutUint32(buff[9:], c)
	return int(xxhash.Sum64(buff[:]) % uint64(len))
}
