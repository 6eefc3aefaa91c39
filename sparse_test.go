package swapnet

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSparseAlgebra(t *testing.T) {
	Convey("Given small sparse matrices", t, func() {
		x := PauliX.Sparse()
		y := PauliY.Sparse()
		z := PauliZ.Sparse()
		id := NewIdentity(2)

		Convey("Pauli products follow the algebra", func() {
			xy, err := x.Mul(y)
			So(err, ShouldBeNil)

			// XY = iZ
			iz := z.Scale(1i)
			d, err := MaxAbsDiff(xy, iz)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0)

			xx, err := x.Mul(x)
			So(err, ShouldBeNil)
			d, err = MaxAbsDiff(xx, id)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0)
		})

		Convey("Addition cancels exactly", func() {
			sum, err := x.Add(x.Scale(-1))
			So(err, ShouldBeNil)
			So(sum.NNZ(), ShouldEqual, 0)
		})

		Convey("Subtraction of equal operators is empty", func() {
			diff, err := y.Sub(y)
			So(err, ShouldBeNil)
			So(diff.NNZ(), ShouldEqual, 0)
		})

		Convey("Kron dimensions and entries line up", func() {
			zx := z.Kron(x)
			So(zx.Dim(), ShouldEqual, 4)
			So(zx.At(0, 1), ShouldEqual, complex(1, 0))
			So(zx.At(2, 3), ShouldEqual, complex(-1, 0))
			So(zx.At(0, 0), ShouldEqual, complex(0, 0))
		})

		Convey("Dagger conjugates and transposes", func() {
			yd := y.Dagger()
			d, err := MaxAbsDiff(yd, y)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0)

			up := NewZero(2)
			up.Set(0, 1, 2i)
			So(up.Dagger().At(1, 0), ShouldEqual, complex(0, -2))
		})

		Convey("Set keeps rows ordered and drops zeros", func() {
			m := NewZero(4)
			m.Set(0, 3, 1)
			m.Set(0, 1, 2)
			So(m.At(0, 1), ShouldEqual, complex(2, 0))
			So(m.At(0, 3), ShouldEqual, complex(1, 0))
			m.Set(0, 1, 0)
			So(m.NNZ(), ShouldEqual, 1)
		})

		Convey("Mismatched dimensions are rejected", func() {
			_, err := x.Mul(NewIdentity(4))
			So(errors.Cause(err), ShouldEqual, ErrDimensionMismatch)

			_, err = x.Add(NewIdentity(4))
			So(errors.Cause(err), ShouldEqual, ErrDimensionMismatch)

			_, err = MaxAbsDiff(x, NewIdentity(4))
			So(errors.Cause(err), ShouldEqual, ErrDimensionMismatch)
		})
	})
}

func TestMaxAbsDiff(t *testing.T) {
	Convey("Given two operators differing in one entry", t, func() {
		a := NewIdentity(4)
		b := NewIdentity(4)
		b.Set(2, 2, 0.75)

		Convey("The difference is located regardless of argument order", func() {
			d, err := MaxAbsDiff(a, b)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0.25)

			d, err = MaxAbsDiff(b, a)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0.25)
		})

		Convey("Identical operators have zero discrepancy", func() {
			d, err := MaxAbsDiff(a, NewIdentity(4))
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0)
		})
	})
}
