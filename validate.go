package listpack

import (
	"encoding/binary"
	"fmt"

	"github.com/run-mojo/listpack/lperror"
)

// Validate checks that data is a structurally sound listpack: header
// totals match the length, every entry decodes within bounds with a
// backlen that round-trips, and the terminator closes the pack. It is
// the gate deserialized bytes must pass before being wrapped.
func Validate(data []byte) error {
	if len(data) < headerSize+1 {
		return malformed("shorter than the header and terminator")
	}

	tb := int(binary.LittleEndian.Uint32(data[0:4]))
	if tb != len(data) {
		return malformed(fmt.Sprintf("total-bytes field %d, actual length %d", tb, len(data)))
	}
	if data[tb-1] != eofByte {
		return malformed("missing terminator byte")
	}

	count := 0
	p := headerSize
	for p < tb-1 {
		es := encodedSizeAt(data, p)
		if es == 0 {
			return malformed(fmt.Sprintf("invalid encoding byte 0x%02X at offset %d", data[p], p))
		}
		bl := backlenSize(uint64(es))
		if p+es+bl > tb-1 {
			return malformed(fmt.Sprintf("entry at offset %d overruns the pack", p))
		}
		if decodeBacklen(data, p+es+bl-1) != uint64(es) {
			return malformed(fmt.Sprintf("entry at offset %d has a corrupt reverse length", p))
		}
		p += es + bl
		count++
	}
	if p != tb-1 {
		return malformed("element bytes do not end at the terminator")
	}

	num := binary.LittleEndian.Uint16(data[4:6])
	if num != numEleUnknown && int(num) != count {
		return malformed(fmt.Sprintf("header count %d, found %d elements", num, count))
	}
	return nil
}

// Validate checks the listpack's own buffer.
func (lp *Listpack) Validate() error {
	return Validate(lp.Bytes())
}

func malformed(detail string) lperror.Error {
	return lperror.New(lperror.MalformedListpack, detail)
}
