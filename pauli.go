package swapnet

// LocalOperator is an exact 2x2 complex matrix acting on a single qubit.
// The identity and the three Pauli matrices below are the only local
// operators the encoding ever embeds.
type LocalOperator [2][2]complex128

var (
	Identity2 = LocalOperator{{1, 0}, {0, 1}}
	PauliX    = LocalOperator{{0, 1}, {1, 0}}
	PauliY    = LocalOperator{{0, -1i}, {1i, 0}}
	PauliZ    = LocalOperator{{1, 0}, {0, -1}}
)

// Sparse lifts the 2x2 matrix into the sparse representation used for
// full-space operators.
func (a LocalOperator) Sparse() *Sparse {
	s := NewZero(2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if a[i][j] != 0 {
				s.rows[i] = append(s.rows[i], entry{col: j, val: a[i][j]})
			}
		}
	}
	return s
}
