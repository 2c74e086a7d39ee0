package cpu

import (
	"github.com/cube-ml/cube/internal/tensor"
)

// projector translates flat indices of an output tensor into flat
// indices of a source tensor read through different strides: a
// broadcast view (missing and length-1 dimensions repeat in place) or
// a permuted view (transpose).
type projector struct {
	out []int // strides of the output shape
	src []int // strides the source is read through
}

// broadcastProjector builds a projector reading srcShape as if it were
// stretched to outShape. Source strides are accumulated right to left
// in a single pass: a dimension of length > 1 keeps its stride, while
// padded and length-1 dimensions stay at stride 0 so they repeat.
func broadcastProjector(srcShape, outShape tensor.Shape) projector {
	src := make([]int, len(outShape))
	stride := 1
	for i := 1; i <= len(srcShape); i++ {
		if d := srcShape[len(srcShape)-i]; d > 1 {
			src[len(outShape)-i] = stride
			stride *= d
		}
	}
	return projector{out: outShape.ComputeStrides(), src: src}
}

// index maps a flat output index to the source's flat index by
// decomposing it into per-dimension coordinates and re-weighting each
// coordinate with the source stride.
func (p projector) index(i int) int {
	flat := 0
	for d, s := range p.out {
		flat += (i / s) * p.src[d]
		i %= s
	}
	return flat
}
