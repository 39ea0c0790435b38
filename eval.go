package mlpoly

import (
	"runtime"
	"sync"

	"github.com/consensys/mlpoly/internal/utils"
	"github.com/consensys/mlpoly/ring"
)

// Eval evaluates p against positional variable values: values[i] is the
// value of x_i. Variables whose index falls beyond the sequence take the
// ring's zero. A term with an empty index set contributes its coefficient
// (the empty product).
func Eval[E any](rg ring.Ring[E], p Polynomial[E], values []E) E {
	return evalRange(rg, p.terms, func(i uint) E {
		if int(i) < len(values) {
			return values[i]
		}
		return rg.Zero()
	})
}

// EvalByIndex evaluates p against a sparse assignment of variable values;
// indices absent from the map take the ring's zero.
func EvalByIndex[E any](rg ring.Ring[E], p Polynomial[E], values map[uint]E) E {
	return evalRange(rg, p.terms, func(i uint) E {
		if v, ok := values[i]; ok {
			return v
		}
		return rg.Zero()
	})
}

// EvalParallel is Eval with the term sum split across nbTasks goroutines.
// nbTasks <= 0 selects runtime.NumCPU(). Inputs are read-only, so no
// synchronization beyond joining the partial sums is needed.
func EvalParallel[E any](rg ring.Ring[E], p Polynomial[E], values []E, nbTasks int) E {
	if nbTasks <= 0 {
		nbTasks = runtime.NumCPU()
	}
	chunks := utils.IntoChunkRanges(nbTasks, len(p.terms))
	if len(chunks) <= 1 {
		return Eval(rg, p, values)
	}

	at := func(i uint) E {
		if int(i) < len(values) {
			return values[i]
		}
		return rg.Zero()
	}

	partial := make([]E, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for ci, chunk := range chunks {
		go func(ci int, chunk utils.ChunkRange) {
			partial[ci] = evalRange(rg, p.terms[chunk.Begin:chunk.End], at)
			wg.Done()
		}(ci, chunk)
	}
	wg.Wait()

	sum := partial[0]
	for _, ps := range partial[1:] {
		sum = rg.Add(sum, ps)
	}
	return sum
}

func evalRange[E any](rg ring.Ring[E], terms []Term[E], at func(uint) E) E {
	sum := rg.Zero()
	for _, t := range terms {
		acc := t.Coeff
		for _, i := range t.Key.Indices() {
			acc = rg.Mul(acc, at(i))
		}
		sum = rg.Add(sum, acc)
	}
	return sum
}
