package swapnet

import (
	"sort"

	"github.com/pkg/errors"
)

// Run describes one maximal block of the qubit line [0,n): Length consecutive
// qubits that are either all acted on by the local operator (Active) or all
// untouched. The partition is the intermediate the embedding folds over, kept
// explicit so it can be tested on its own.
type Run struct {
	Length int
	Active bool
}

// Runs partitions [0,n) against the given subset of qubit indices. The subset
// must already be sorted; duplicates and out-of-range indices are rejected.
func Runs(subset []int, n int) ([]Run, error) {
	runs := make([]Run, 0, 2*len(subset)+1)
	next := 0
	for _, q := range subset {
		if err := checkIndex(q, n); err != nil {
			return nil, err
		}
		if q < next {
			return nil, errors.Wrapf(ErrInvalidIndex, "duplicate qubit %d in subset", q)
		}
		if gap := q - next; gap > 0 {
			runs = append(runs, Run{Length: gap})
		}
		if k := len(runs) - 1; k >= 0 && runs[k].Active && q == next {
			runs[k].Length++
		} else {
			runs = append(runs, Run{Length: 1, Active: true})
		}
		next = q + 1
	}
	if gap := n - next; gap > 0 {
		runs = append(runs, Run{Length: gap})
	}
	return runs, nil
}

/*
Embed places the 2x2 local operator a on every qubit in subset and the
identity everywhere else, over an n-qubit space. Qubit 0 is the
most-significant tensor factor.

Rather than taking n-1 Kronecker products of 2x2 factors, the subset is
folded into maximal runs: an active run of length L becomes the (L-1)-fold
Kronecker self-product of a, an untouched run becomes a single identity of
dimension 2^L, and the full operator is the left-to-right product of the run
blocks. The result is bit-for-bit identical to the naive per-qubit product;
only the number of sparse kron calls changes. Each block is dropped as soon
as it is folded into the accumulator, which keeps peak memory at one partial
product plus one block.
*/
func Embed(a LocalOperator, subset []int, n int) (*Sparse, error) {
	return embedWith(a, subset, n, nil)
}

func embedWith(a LocalOperator, subset []int, n int, cfg *Config) (*Sparse, error) {
	if err := guardQubits(n, cfg); err != nil {
		return nil, err
	}
	sorted := append([]int(nil), subset...)
	sort.Ints(sorted)
	runs, err := Runs(sorted, n)
	if err != nil {
		return nil, err
	}
	var op *Sparse
	for _, r := range runs {
		var block *Sparse
		if r.Active {
			block = selfKron(a, r.Length)
		} else {
			block = NewIdentity(1 << r.Length)
		}
		if op == nil {
			op = block
		} else {
			op = op.Kron(block)
		}
	}
	return op, nil
}

// selfKron builds a⊗a⊗...⊗a over count qubits (count-1 kron calls).
func selfKron(a LocalOperator, count int) *Sparse {
	op := a.Sparse()
	for i := 1; i < count; i++ {
		op = op.Kron(a.Sparse())
	}
	return op
}

// EmbedInterval is Embed over the open interval (i,j): the qubits strictly
// between i and j. Used for Jordan-Wigner parity strings.
func EmbedInterval(a LocalOperator, i, j, n int) (*Sparse, error) {
	if j-i < 1 {
		return nil, errors.Wrapf(ErrInvalidIndex, "interval (%d,%d) is not ascending", i, j)
	}
	between := make([]int, 0, j-i-1)
	for q := i + 1; q < j; q++ {
		between = append(between, q)
	}
	return Embed(a, between, n)
}
