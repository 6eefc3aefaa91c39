package swapnet

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSerpentineIndex(t *testing.T) {
	Convey("Given a 3x3 grid", t, func() {
		Convey("Even rows run left to right, odd rows right to left", func() {
			So(SerpentineIndex(0, 0, 3), ShouldEqual, 0)
			So(SerpentineIndex(0, 2, 3), ShouldEqual, 2)
			So(SerpentineIndex(1, 2, 3), ShouldEqual, 3)
			So(SerpentineIndex(1, 0, 3), ShouldEqual, 5)
			So(SerpentineIndex(2, 0, 3), ShouldEqual, 6)
			So(SerpentineIndex(2, 1, 3), ShouldEqual, 7)
		})

		Convey("Grid-adjacent same-column qubits sit one serpentine step apart at the turns", func() {
			So(SerpentineIndex(0, 2, 3)+1, ShouldEqual, SerpentineIndex(1, 2, 3))
			So(SerpentineIndex(1, 0, 3)+1, ShouldEqual, SerpentineIndex(2, 0, 3))
		})
	})
}

func TestRoleMapLifecycle(t *testing.T) {
	Convey("Given a fresh router", t, func() {
		rt, err := NewRouter(2)
		So(err, ShouldBeNil)

		Convey("The initial assignment is the identity", func() {
			So(rt.Roles().SysSnapshot(), ShouldResemble, []int{0, 1, 2, 3})
			So(rt.Roles().AncSnapshot(), ShouldResemble, []int{4, 5})
			So(rt.Roles().Validate(), ShouldBeNil)
		})

		Convey("A leftward swap exchanges role bindings and records the fixup", func() {
			c := rt.LeftwardSwap(0)
			So(c, ShouldResemble, Circuit{
				Swap(4, 1), Cnot(4, 1),
				Swap(5, 2), Cnot(5, 2),
			})
			So(rt.Roles().SysSnapshot(), ShouldResemble, []int{0, 4, 5, 3})
			So(rt.Roles().AncSnapshot(), ShouldResemble, []int{1, 2})
			So(rt.Roles().Validate(), ShouldBeNil)
		})

		Convey("Grids below 2x2 are rejected", func() {
			_, err := NewRouter(1)
			So(errors.Cause(err), ShouldEqual, ErrInvalidIndex)
		})
	})
}

func TestParityStages(t *testing.T) {
	Convey("Given the parity basis change on a 2x2 grid", t, func() {
		rt, err := NewRouter(2)
		So(err, ShouldBeNil)

		fwd := rt.ParityForward()

		Convey("Rows CNOT upward bottom-to-top, then the ancilla chain", func() {
			So(fwd, ShouldResemble, Circuit{
				Cnot(3, 0), Cnot(2, 1), Cnot(5, 4),
			})
		})

		Convey("The reverse stage is the exact reversed gate list", func() {
			rev := rt.ParityReverse()
			So(len(rev), ShouldEqual, len(fwd))
			for i, g := range rev {
				So(g, ShouldResemble, fwd[len(fwd)-1-i])
			}
		})

		Convey("Forward followed by reverse composes to the identity operator", func() {
			circuit := append(append(Circuit{}, fwd...), rt.ParityReverse()...)
			u, err := Evaluate(circuit, rt.TotalQubits())
			So(err, ShouldBeNil)
			d, err := MaxAbsDiff(u, NewIdentity(1<<rt.TotalQubits()))
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0)
		})
	})
}

func TestLeftwardCZ(t *testing.T) {
	Convey("Given a 4x4 grid", t, func() {
		rt, err := NewRouter(4)
		So(err, ShouldBeNil)

		Convey("Depth 0 couples each even row's ancilla to its neighbor rows at grid column 3", func() {
			c := rt.LeftwardCZ(0)
			anc0 := rt.Roles().Anc(0)
			anc2 := rt.Roles().Anc(2)
			So(c, ShouldResemble, Circuit{
				Cz(anc0, SerpentineIndex(1, 3, 4)),
				Cz(anc2, SerpentineIndex(1, 3, 4)),
				Cz(anc2, SerpentineIndex(3, 3, 4)),
			})
		})

		Convey("The mapping is untouched by phase stages", func() {
			before := rt.Roles().SysSnapshot()
			rt.LeftwardCZ(1)
			So(rt.Roles().SysSnapshot(), ShouldResemble, before)
		})
	})
}

func TestRoleMappingInvariants(t *testing.T) {
	Convey("Given routers for the reference grid sizes", t, func() {
		for _, n := range []int{2, 3, 4, 5} {
			n := n
			Convey(fmt.Sprintf("On a %dx%d grid the mapping stays a bijection through every stage", n, n), func() {
				rt, err := NewRouter(n)
				So(err, ShouldBeNil)

				rt.ParityForward()
				So(rt.Roles().Validate(), ShouldBeNil)

				for depth := 0; depth < n; depth++ {
					rt.LeftwardCZ(depth)
					So(rt.Roles().Validate(), ShouldBeNil)
					rt.LeftwardSwap(depth)
					So(rt.Roles().Validate(), ShouldBeNil)
				}

				rt.ParityReverse()
				So(rt.Roles().Validate(), ShouldBeNil)

				for depth := 0; depth < n; depth++ {
					rt.RightwardSwap(depth)
					So(rt.Roles().Validate(), ShouldBeNil)
				}
			})

			Convey(fmt.Sprintf("The %dx%d build round-trips the mapping to the identity", n, n), func() {
				rt, err := NewRouter(n)
				So(err, ShouldBeNil)
				circuit, metrics := rt.BuildEncodingCircuit()
				So(len(circuit), ShouldEqual, metrics.TotalGates)

				fresh := newRoleMap(n)
				got := rt.Roles()
				t.Log(spew.Sdump(got.SysSnapshot(), got.AncSnapshot()))
				So(got.SysSnapshot(), ShouldResemble, fresh.SysSnapshot())
				So(got.AncSnapshot(), ShouldResemble, fresh.AncSnapshot())
			})
		}
	})
}

func TestBuildMetrics(t *testing.T) {
	Convey("Given a full 3x3 build", t, func() {
		rt, err := NewRouter(3)
		So(err, ShouldBeNil)
		circuit, metrics := rt.BuildEncodingCircuit()

		Convey("Stage counts sum to the circuit length", func() {
			total := 0
			for _, s := range metrics.Stages() {
				total += s.Gates
			}
			So(total, ShouldEqual, len(circuit))
			So(metrics.TotalGates, ShouldEqual, len(circuit))
		})

		Convey("Kind counts sum to the circuit length too", func() {
			total := 0
			for _, k := range metrics.Kinds() {
				total += k.Gates
			}
			So(total, ShouldEqual, len(circuit))
		})

		Convey("The stages appear in schedule order", func() {
			stages := metrics.Stages()
			names := make([]string, len(stages))
			for i, s := range stages {
				names[i] = s.Name
			}
			So(names, ShouldResemble, []string{
				"parity-forward",
				"leftward-cz",
				"leftward-swap",
				"parity-reverse",
				"rightward-swap",
			})
		})

		Convey("Grid geometry is reported", func() {
			So(metrics.GridSize, ShouldEqual, 3)
			So(metrics.TotalQubits, ShouldEqual, 12)
		})
	})
}

func TestBuildEncodingCircuitEntryPoint(t *testing.T) {
	Convey("Given the package-level builder", t, func() {
		circuit, roles, err := BuildEncodingCircuit(3)
		So(err, ShouldBeNil)
		So(len(circuit), ShouldBeGreaterThan, 0)
		So(roles.Validate(), ShouldBeNil)

		Convey("The schedule is deterministic", func() {
			again, _, err := BuildEncodingCircuit(3)
			So(err, ShouldBeNil)
			So(again, ShouldResemble, circuit)
		})

		Convey("Invalid grid sizes propagate the index error", func() {
			_, _, err := BuildEncodingCircuit(0)
			So(errors.Cause(err), ShouldEqual, ErrInvalidIndex)
		})
	})
}
