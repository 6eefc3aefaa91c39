package swapnet

import (
	"math/cmplx"
	"sort"

	"github.com/pkg/errors"
)

type entry struct {
	col int
	val complex128
}

/*
Sparse is a square complex matrix in compressed-row form. Each row holds its
nonzero entries sorted by column. Every operator the package builds (embedded
Paulis, two-qubit gates, full circuit operators) is one of these; dimensions
are always powers of two.

Exact zeros are never stored. All values produced here are sums and products
of dyadic rationals and unit imaginaries, so cancellation to zero is exact in
float64 and no epsilon-based dropping is needed.
*/
type Sparse struct {
	dim  int
	rows [][]entry
}

func NewZero(dim int) *Sparse {
	return &Sparse{dim: dim, rows: make([][]entry, dim)}
}

func NewIdentity(dim int) *Sparse {
	s := NewZero(dim)
	for i := 0; i < dim; i++ {
		s.rows[i] = []entry{{col: i, val: 1}}
	}
	return s
}

func (s *Sparse) Dim() int { return s.dim }

// NNZ reports the stored nonzero count.
func (s *Sparse) NNZ() int {
	n := 0
	for _, row := range s.rows {
		n += len(row)
	}
	return n
}

func (s *Sparse) At(i, j int) complex128 {
	row := s.rows[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].col >= j })
	if k < len(row) && row[k].col == j {
		return row[k].val
	}
	return 0
}

// Set writes a single entry, keeping the row sorted. Intended for small
// hand-built matrices; bulk construction goes through Kron/Mul/Add.
func (s *Sparse) Set(i, j int, v complex128) {
	row := s.rows[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].col >= j })
	switch {
	case k < len(row) && row[k].col == j:
		if v == 0 {
			s.rows[i] = append(row[:k], row[k+1:]...)
		} else {
			row[k].val = v
		}
	case v != 0:
		row = append(row, entry{})
		copy(row[k+1:], row[k:])
		row[k] = entry{col: j, val: v}
		s.rows[i] = row
	}
}

// Scale returns k*s.
func (s *Sparse) Scale(k complex128) *Sparse {
	out := NewZero(s.dim)
	if k == 0 {
		return out
	}
	for i, row := range s.rows {
		dst := make([]entry, len(row))
		for j, e := range row {
			dst[j] = entry{col: e.col, val: k * e.val}
		}
		out.rows[i] = dst
	}
	return out
}

// Add returns s+o, merging the sorted rows and dropping exact cancellations.
func (s *Sparse) Add(o *Sparse) (*Sparse, error) {
	return s.combine(o, 1)
}

// Sub returns s-o.
func (s *Sparse) Sub(o *Sparse) (*Sparse, error) {
	return s.combine(o, -1)
}

func (s *Sparse) combine(o *Sparse, sign complex128) (*Sparse, error) {
	if s.dim != o.dim {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d vs %d", s.dim, o.dim)
	}
	out := NewZero(s.dim)
	for i := range s.rows {
		a, b := s.rows[i], o.rows[i]
		dst := make([]entry, 0, len(a)+len(b))
		var ka, kb int
		for ka < len(a) || kb < len(b) {
			switch {
			case kb == len(b) || (ka < len(a) && a[ka].col < b[kb].col):
				dst = append(dst, a[ka])
				ka++
			case ka == len(a) || b[kb].col < a[ka].col:
				dst = append(dst, entry{col: b[kb].col, val: sign * b[kb].val})
				kb++
			default:
				if v := a[ka].val + sign*b[kb].val; v != 0 {
					dst = append(dst, entry{col: a[ka].col, val: v})
				}
				ka++
				kb++
			}
		}
		if len(dst) > 0 {
			out.rows[i] = dst
		}
	}
	return out, nil
}

// Mul returns the matrix product s·o. Row i of the product is accumulated in
// a scratch map keyed by column, then flushed sorted; the operators seen here
// keep only a handful of entries per row, so the scratch stays tiny even when
// the dimension is astronomical.
func (s *Sparse) Mul(o *Sparse) (*Sparse, error) {
	if s.dim != o.dim {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d vs %d", s.dim, o.dim)
	}
	out := NewZero(s.dim)
	acc := make(map[int]complex128)
	for i, row := range s.rows {
		if len(row) == 0 {
			continue
		}
		clear(acc)
		for _, e := range row {
			for _, f := range o.rows[e.col] {
				acc[f.col] += e.val * f.val
			}
		}
		dst := make([]entry, 0, len(acc))
		for c, v := range acc {
			if v != 0 {
				dst = append(dst, entry{col: c, val: v})
			}
		}
		sort.Slice(dst, func(a, b int) bool { return dst[a].col < dst[b].col })
		if len(dst) > 0 {
			out.rows[i] = dst
		}
	}
	return out, nil
}

// Kron returns the Kronecker product s⊗o, with s supplying the
// most-significant block structure.
func (s *Sparse) Kron(o *Sparse) *Sparse {
	out := NewZero(s.dim * o.dim)
	for ia, ra := range s.rows {
		if len(ra) == 0 {
			continue
		}
		for ib, rb := range o.rows {
			if len(rb) == 0 {
				continue
			}
			dst := make([]entry, 0, len(ra)*len(rb))
			for _, ea := range ra {
				for _, eb := range rb {
					dst = append(dst, entry{
						col: ea.col*o.dim + eb.col,
						val: ea.val * eb.val,
					})
				}
			}
			out.rows[ia*o.dim+ib] = dst
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (s *Sparse) Dagger() *Sparse {
	out := NewZero(s.dim)
	for i, row := range s.rows {
		for _, e := range row {
			out.rows[e.col] = append(out.rows[e.col], entry{col: i, val: cmplx.Conj(e.val)})
		}
	}
	for _, row := range out.rows {
		sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
	}
	return out
}

// MaxAbsDiff is the verification oracle: the largest |a-b| over all entries,
// zero when the operators are exactly equal.
func MaxAbsDiff(a, b *Sparse) (float64, error) {
	if a.dim != b.dim {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%d vs %d", a.dim, b.dim)
	}
	max := 0.0
	note := func(v complex128) {
		if d := cmplx.Abs(v); d > max {
			max = d
		}
	}
	for i := range a.rows {
		ra, rb := a.rows[i], b.rows[i]
		var ka, kb int
		for ka < len(ra) || kb < len(rb) {
			switch {
			case kb == len(rb) || (ka < len(ra) && ra[ka].col < rb[kb].col):
				note(ra[ka].val)
				ka++
			case ka == len(ra) || rb[kb].col < ra[ka].col:
				note(rb[kb].val)
				kb++
			default:
				note(ra[ka].val - rb[kb].val)
				ka++
				kb++
			}
		}
	}
	return max, nil
}
