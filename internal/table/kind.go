package table

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Kind is the declared type of a column. It is decided once when the column
// is built and never changes afterwards.
type Kind int

const (
	// Numeric columns store float64 values.
	Numeric Kind = iota
	// Text columns store strings.
	Text
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DataType returns the Arrow type used to store cells of this kind
func (k Kind) DataType() arrow.DataType {
	if k == Numeric {
		return arrow.PrimitiveTypes.Float64
	}
	return arrow.BinaryTypes.String
}
