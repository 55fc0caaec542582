package table

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit digest of the table's column names, kinds and
// cells. Two tables with the same content have the same fingerprint.
func (t *Table) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte

	for _, c := range t.columns {
		_, _ = h.WriteString(c.Name())
		_, _ = h.Write([]byte{0, byte(c.Kind())})
		for i := 0; i < c.Len(); i++ {
			cell := c.Cell(i)
			_, _ = h.Write([]byte{byte(cell.Type)})
			switch cell.Type {
			case CellNumber:
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(cell.Number))
				_, _ = h.Write(buf[:])
			case CellText:
				_, _ = h.WriteString(cell.Text)
				_, _ = h.Write([]byte{0})
			}
		}
	}
	return h.Sum64()
}
