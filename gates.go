package swapnet

import "github.com/pkg/errors"

// The two-qubit gates are derived from embedded Paulis through closed-form
// identities rather than written out entry by entry:
//
//	SWAP(i,j) = (I + X_iX_j + Y_iY_j + Z_iZ_j) / 2
//	CZ(i,j)   = (I + Z_i + Z_j - Z_iZ_j) / 2
//	CNOT(i,j) = (I + X_j + Z_i - Z_i·X_j) / 2   (control i, target j)
//
// All builders are pure functions of (i, j, n).

func SwapOperator(i, j, n int) (*Sparse, error) {
	return pairOperator(i, j, n, func(i, j, n int) (*Sparse, error) {
		xx, err := Embed(PauliX, []int{i, j}, n)
		if err != nil {
			return nil, err
		}
		yy, err := Embed(PauliY, []int{i, j}, n)
		if err != nil {
			return nil, err
		}
		zz, err := Embed(PauliZ, []int{i, j}, n)
		if err != nil {
			return nil, err
		}
		op, err := NewIdentity(1 << n).Add(xx)
		if err != nil {
			return nil, err
		}
		if op, err = op.Add(yy); err != nil {
			return nil, err
		}
		if op, err = op.Add(zz); err != nil {
			return nil, err
		}
		return op.Scale(0.5), nil
	})
}

func CzOperator(i, j, n int) (*Sparse, error) {
	return pairOperator(i, j, n, func(i, j, n int) (*Sparse, error) {
		zi, err := Embed(PauliZ, []int{i}, n)
		if err != nil {
			return nil, err
		}
		zj, err := Embed(PauliZ, []int{j}, n)
		if err != nil {
			return nil, err
		}
		zz, err := Embed(PauliZ, []int{i, j}, n)
		if err != nil {
			return nil, err
		}
		op, err := NewIdentity(1 << n).Add(zi)
		if err != nil {
			return nil, err
		}
		if op, err = op.Add(zj); err != nil {
			return nil, err
		}
		if op, err = op.Sub(zz); err != nil {
			return nil, err
		}
		return op.Scale(0.5), nil
	})
}

// CnotOperator builds the controlled-NOT with the given control and target.
func CnotOperator(control, target, n int) (*Sparse, error) {
	return pairOperator(control, target, n, func(control, target, n int) (*Sparse, error) {
		xt, err := Embed(PauliX, []int{target}, n)
		if err != nil {
			return nil, err
		}
		zc, err := Embed(PauliZ, []int{control}, n)
		if err != nil {
			return nil, err
		}
		zx, err := zc.Mul(xt)
		if err != nil {
			return nil, err
		}
		op, err := NewIdentity(1 << n).Add(xt)
		if err != nil {
			return nil, err
		}
		if op, err = op.Add(zc); err != nil {
			return nil, err
		}
		if op, err = op.Sub(zx); err != nil {
			return nil, err
		}
		return op.Scale(0.5), nil
	})
}

// BareHopping is (X_iY_j - Y_iX_j)/2: the hopping term between modes i and j
// with no regard for the fermionic parity of the modes in between.
func BareHopping(i, j, n int) (*Sparse, error) {
	return pairOperator(i, j, n, func(i, j, n int) (*Sparse, error) {
		xi, err := Embed(PauliX, []int{i}, n)
		if err != nil {
			return nil, err
		}
		yj, err := Embed(PauliY, []int{j}, n)
		if err != nil {
			return nil, err
		}
		xy, err := xi.Mul(yj)
		if err != nil {
			return nil, err
		}
		yi, err := Embed(PauliY, []int{i}, n)
		if err != nil {
			return nil, err
		}
		xj, err := Embed(PauliX, []int{j}, n)
		if err != nil {
			return nil, err
		}
		yx, err := yi.Mul(xj)
		if err != nil {
			return nil, err
		}
		op, err := xy.Sub(yx)
		if err != nil {
			return nil, err
		}
		return op.Scale(0.5), nil
	})
}

// Hopping is the bare hopping term multiplied by the Jordan-Wigner parity
// string Z_{i+1}...Z_{j-1}. The string compensates fermionic anticommutation
// through the intervening modes and is only correct for i < j.
func Hopping(i, j, n int) (*Sparse, error) {
	if i >= j {
		return nil, errors.Wrapf(ErrInvalidIndex,
			"hopping needs ascending modes, got (%d,%d)", i, j)
	}
	bare, err := BareHopping(i, j, n)
	if err != nil {
		return nil, err
	}
	str, err := EmbedInterval(PauliZ, i, j, n)
	if err != nil {
		return nil, err
	}
	return bare.Mul(str)
}

func pairOperator(i, j, n int, build func(i, j, n int) (*Sparse, error)) (*Sparse, error) {
	if err := guardQubits(n, nil); err != nil {
		return nil, err
	}
	if err := checkIndex(i, n); err != nil {
		return nil, err
	}
	if err := checkIndex(j, n); err != nil {
		return nil, err
	}
	if i == j {
		return nil, errors.Wrapf(ErrInvalidIndex, "qubits must be distinct, got %d twice", i)
	}
	return build(i, j, n)
}
