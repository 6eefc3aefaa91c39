package swapnet

import "github.com/pkg/errors"

// RestrictAncillaZero projects op onto the subspace where every listed
// ancilla qubit reads 0 and re-indexes the surviving basis states over the
// remaining qubits. The restriction of a 2^total operator over k ancillas is
// a 2^(total-k) operator.
func RestrictAncillaZero(op *Sparse, totalQubits int, ancillas []int) (*Sparse, error) {
	if op.dim != 1<<totalQubits {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"operator dim %d, expected 2^%d", op.dim, totalQubits)
	}
	mask := 0
	for _, q := range ancillas {
		if err := checkIndex(q, totalQubits); err != nil {
			return nil, err
		}
		bit := 1 << (totalQubits - 1 - q)
		if mask&bit != 0 {
			return nil, errors.Wrapf(ErrInvalidIndex, "duplicate ancilla %d", q)
		}
		mask |= bit
	}
	out := NewZero(1 << (totalQubits - len(ancillas)))
	for i, row := range op.rows {
		if i&mask != 0 || len(row) == 0 {
			continue
		}
		dst := make([]entry, 0, len(row))
		for _, e := range row {
			if e.col&mask != 0 {
				continue
			}
			dst = append(dst, entry{col: compressIndex(e.col, mask, totalQubits), val: e.val})
		}
		if len(dst) > 0 {
			// compression is monotone on mask-zero indices, so the row
			// stays sorted
			out.rows[compressIndex(i, mask, totalQubits)] = dst
		}
	}
	return out, nil
}

func compressIndex(idx, mask, totalBits int) int {
	out := 0
	for b := totalBits - 1; b >= 0; b-- {
		if mask&(1<<b) != 0 {
			continue
		}
		out <<= 1
		if idx&(1<<b) != 0 {
			out |= 1
		}
	}
	return out
}

// Verifier checks the synthesized encoding circuit against directly
// constructed reference operators. It is a consumer of the core, not part of
// it: everything here goes through the public construction API.
type Verifier struct {
	cfg  *Config
	eval *Evaluator
}

func NewVerifier(cfg *Config) *Verifier {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Verifier{cfg: cfg, eval: NewEvaluator(cfg)}
}

// EdgeCheck is the outcome for one vertical grid edge: the Jordan-Wigner
// mode indices of its endpoints and the worst entry-wise discrepancy between
// the encoded and the reference hopping operator.
type EdgeCheck struct {
	Row, Col     int
	ModeI, ModeJ int
	Discrepancy  float64
}

// Report collects the per-edge results of one verification run.
type Report struct {
	GridSize int
	Max      float64
	Edges    []EdgeCheck
}

// Passes applies the configured tolerance to a report.
func (v *Verifier) Passes(rep *Report) bool {
	return rep.Max <= v.cfg.Tolerance
}

/*
VerifyVerticalHopping builds the encoding circuit for an n×n grid, conjugates
the hopping term of every vertical edge into the transformed basis, restricts
to the all-ancilla-zero subspace and compares against the bare hopping term
on the system qubits alone. A max discrepancy of zero means the circuit
reproduces every vertical edge exactly.

Beware the dimensions: the operator space is 2^(n²+n), so anything past
n=4 needs the memory of a large machine and a raised Config.MaxQubits.
*/
func (v *Verifier) VerifyVerticalHopping(n int) (*Report, error) {
	total := n*n + n
	circuit, _, err := BuildEncodingCircuit(n)
	if err != nil {
		return nil, err
	}
	u, err := v.eval.Evaluate(circuit, total)
	if err != nil {
		return nil, err
	}
	udag := u.Dagger()
	ancillas := ancillaRange(n)
	rep := &Report{GridSize: n}
	for r := 0; r+1 < n; r++ {
		for c := 0; c < n; c++ {
			i := SerpentineIndex(r, c, n)
			j := SerpentineIndex(r+1, c, n)
			hop, err := Hopping(i, j, total)
			if err != nil {
				return nil, err
			}
			enc, err := u.Mul(hop)
			if err != nil {
				return nil, err
			}
			if enc, err = enc.Mul(udag); err != nil {
				return nil, err
			}
			restricted, err := RestrictAncillaZero(enc, total, ancillas)
			if err != nil {
				return nil, err
			}
			ref, err := BareHopping(i, j, n*n)
			if err != nil {
				return nil, err
			}
			d, err := MaxAbsDiff(restricted, ref)
			if err != nil {
				return nil, err
			}
			rep.Edges = append(rep.Edges, EdgeCheck{
				Row: r, Col: c, ModeI: i, ModeJ: j, Discrepancy: d,
			})
			if d > rep.Max {
				rep.Max = d
			}
		}
	}
	return rep, nil
}

// StrippedIdentityDiscrepancy evaluates the encoding circuit with every CZ
// removed and reports its distance from the identity. SWAP and CNOT only
// ever permute and copy basis states, so any deviation from a permutation,
// let alone from the identity, points at a routing defect.
func (v *Verifier) StrippedIdentityDiscrepancy(n int) (float64, error) {
	circuit, _, err := BuildEncodingCircuit(n)
	if err != nil {
		return 0, err
	}
	total := n*n + n
	u, err := v.eval.Evaluate(StripCZ(circuit), total)
	if err != nil {
		return 0, err
	}
	return MaxAbsDiff(u, NewIdentity(1<<total))
}

// ancillaRange lists the physical ancilla indices n²..n²+n-1.
func ancillaRange(n int) []int {
	out := make([]int, n)
	for r := 0; r < n; r++ {
		out[r] = n*n + r
	}
	return out
}
