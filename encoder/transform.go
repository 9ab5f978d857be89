package encoder

import (
	"github.com/arloliu/labello/bitvec"
	"github.com/arloliu/labello/format"
)

// Transform is the strategy-tagged result of encoding a sequence.
//
// Ordinal and CustomMapping transforms carry integer codes; OneHot transforms
// carry fixed-width bit vectors. The tag is what allows InverseTransform to
// reject data whose shape does not match the encoder it is handed to.
type Transform struct {
	strategy format.StrategyType
	codes    []uint64
	vectors  []bitvec.Vector
}

// NewCodeTransform wraps integer codes as a Transform for an Ordinal or
// CustomMapping encoder. Used by blob decoding and by callers that obtained
// codes out of band.
func NewCodeTransform(strategy format.StrategyType, codes []uint64) Transform {
	return Transform{strategy: strategy, codes: codes}
}

// NewVectorTransform wraps one-hot bit vectors as a Transform.
func NewVectorTransform(vectors []bitvec.Vector) Transform {
	return Transform{strategy: format.StrategyOneHot, vectors: vectors}
}

// Strategy returns the strategy that produced this transform.
func (t Transform) Strategy() format.StrategyType {
	return t.strategy
}

// Len returns the number of encoded elements.
func (t Transform) Len() int {
	if t.strategy == format.StrategyOneHot {
		return len(t.vectors)
	}

	return len(t.codes)
}

// Codes returns the integer codes of an Ordinal or CustomMapping transform.
// Nil for OneHot transforms. The slice is shared, not copied.
func (t Transform) Codes() []uint64 {
	return t.codes
}

// Vectors returns the bit vectors of a OneHot transform. Nil for integer
// transforms. The slice is shared, not copied.
func (t Transform) Vectors() []bitvec.Vector {
	return t.vectors
}
