package listpack

import "github.com/run-mojo/listpack/conv"

// The int64 convenience wrappers hand the container the decimal text of
// the value. The insert path packs canonical decimal text back into the
// native integer encodings, so these never actually store the text
// unless a value somehow falls outside every integer tier, which a
// 64 bit input cannot.

// AppendInt64 appends v as the new last element.
func (lp *Listpack) AppendInt64(v int64) error {
	var buf [intBufSize]byte
	n := conv.EncodeInt64(buf[:], v)
	return lp.Append(buf[:n])
}

// InsertInt64 inserts v relative to position p per the placement and
// returns the element's position, which supersedes p.
func (lp *Listpack) InsertInt64(v int64, p int, where Placement) (int, error) {
	var buf [intBufSize]byte
	n := conv.EncodeInt64(buf[:], v)
	return lp.Insert(buf[:n], p, where)
}

// ReplaceInt64 replaces the element at *p with v, updating *p in place
// so the position stays valid after the pack is rewritten.
func (lp *Listpack) ReplaceInt64(p *int, v int64) error {
	var buf [intBufSize]byte
	n := conv.EncodeInt64(buf[:], v)
	newp, err := lp.Insert(buf[:n], *p, Replace)
	if err != nil {
		return err
	}
	*p = newp
	return nil
}
