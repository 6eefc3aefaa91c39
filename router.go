package swapnet

import (
	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

// SerpentineIndex maps grid position (row, col) on an n×n grid to its
// physical qubit index. Columns run left-to-right on even rows and
// right-to-left on odd rows, so physically consecutive qubits are always
// grid-adjacent and every column chain stays short.
func SerpentineIndex(row, col, n int) int {
	if row%2 == 0 {
		return row*n + col
	}
	return row*n + (n - 1 - col)
}

/*
RoleMap is the bidirectional binding between logical roles and physical
qubits: one system role per grid position (r,c) and one ancilla role per row.
It starts as the identity assignment (system roles on physical 0..n²-1 in
serpentine order, ancilla role r on physical n²+r) and is mutated only by
the router's swap-bearing stages. At all times the bound physical indices
form a bijection onto [0, n²+n); Validate checks exactly that.
*/
type RoleMap struct {
	n   int
	sys []int // serpentine grid role -> physical index
	anc []int // row role -> physical index
}

func newRoleMap(n int) *RoleMap {
	m := &RoleMap{
		n:   n,
		sys: make([]int, n*n),
		anc: make([]int, n),
	}
	for i := range m.sys {
		m.sys[i] = i
	}
	for r := range m.anc {
		m.anc[r] = n*n + r
	}
	return m
}

// Sys returns the physical qubit currently bound to the system role at grid
// position (row, col).
func (m *RoleMap) Sys(row, col int) int {
	return m.sys[SerpentineIndex(row, col, m.n)]
}

// Anc returns the physical qubit currently bound to the ancilla role of row.
func (m *RoleMap) Anc(row int) int {
	return m.anc[row]
}

// exchange swaps the ancilla role of row with the system role at (row, col),
// mirroring the relabeling a SWAP gate performs.
func (m *RoleMap) exchange(row, col int) {
	s := SerpentineIndex(row, col, m.n)
	m.anc[row], m.sys[s] = m.sys[s], m.anc[row]
}

func (m *RoleMap) Clone() *RoleMap {
	return &RoleMap{
		n:   m.n,
		sys: append([]int(nil), m.sys...),
		anc: append([]int(nil), m.anc...),
	}
}

// SysSnapshot copies the current system-role bindings (serpentine role order).
func (m *RoleMap) SysSnapshot() []int {
	return append([]int(nil), m.sys...)
}

// AncSnapshot copies the current ancilla-role bindings.
func (m *RoleMap) AncSnapshot() []int {
	return append([]int(nil), m.anc...)
}

// Validate confirms the mapping is still a bijection onto the full physical
// range: no collisions, no gaps.
func (m *RoleMap) Validate() error {
	total := m.n*m.n + m.n
	seen := make([]bool, total)
	note := func(p int) error {
		if p < 0 || p >= total {
			return errors.Wrapf(ErrInvalidIndex, "physical index %d outside [0,%d)", p, total)
		}
		if seen[p] {
			return errors.Wrapf(ErrInvalidIndex, "physical index %d bound to two roles", p)
		}
		seen[p] = true
		return nil
	}
	for _, p := range m.sys {
		if err := note(p); err != nil {
			return err
		}
	}
	for _, p := range m.anc {
		if err := note(p); err != nil {
			return err
		}
	}
	return nil
}

/*
Router owns the role mapping and generates the four stages of the encoding
circuit. Stage methods return the gates they emit and mutate the mapping in
place where SWAPs relabel qubits; callers must not mutate the mapping
directly. The schedule is fixed and non-adaptive: for a given grid size the
emitted circuit is always the same.
*/
type Router struct {
	n     int
	roles *RoleMap
}

// NewRouter prepares a router for an n×n system grid with n ancillas.
func NewRouter(n int) (*Router, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidIndex, "grid size %d, need at least 2", n)
	}
	return &Router{n: n, roles: newRoleMap(n)}, nil
}

// Roles exposes the live mapping for inspection. Read-only by contract.
func (rt *Router) Roles() *RoleMap { return rt.roles }

// GridSize returns n.
func (rt *Router) GridSize() int { return rt.n }

// TotalQubits returns the physical qubit count n²+n.
func (rt *Router) TotalQubits() int { return rt.n*rt.n + rt.n }

/*
ParityForward changes basis from occupation numbers to cumulative column
parities: processing rows bottom-to-top, each row CNOTs into the row above
it, column by column, so after the stage the qubit at (r,c) holds the XOR of
column c from row r downward. A CNOT chain over the ancillas follows, run in
the same bottom-to-top direction.
*/
func (rt *Router) ParityForward() Circuit {
	m := rt.roles
	var c Circuit
	for r := rt.n - 1; r >= 1; r-- {
		for col := 0; col < rt.n; col++ {
			c = append(c, Cnot(m.Sys(r, col), m.Sys(r-1, col)))
		}
	}
	for r := rt.n - 1; r >= 1; r-- {
		c = append(c, Cnot(m.Anc(r), m.Anc(r-1)))
	}
	return c
}

// ParityReverse undoes ParityForward: the same gates in reversed list order,
// emitted against the live mapping. CNOT is self-inverse and each column
// chain is independent, so plain reversal is a valid inverse.
func (rt *Router) ParityReverse() Circuit {
	m := rt.roles
	var c Circuit
	for r := 1; r < rt.n; r++ {
		c = append(c, Cnot(m.Anc(r), m.Anc(r-1)))
	}
	for r := 1; r < rt.n; r++ {
		for col := rt.n - 1; col >= 0; col-- {
			c = append(c, Cnot(m.Sys(r, col), m.Sys(r-1, col)))
		}
	}
	return c
}

/*
LeftwardCZ emits the conditional phases for one depth step. Each even row's
ancilla has, by depth d, accumulated the parity of the row's columns right of
grid column n-1-d; CZ-coupling it to the system qubits of the two adjacent
rows (two rows apart from each other) at that column plants exactly the
Jordan-Wigner string phase every vertical edge through those rows needs. Rows
0 and n-1 have a single neighbor and get a single CZ. The mapping is
untouched.
*/
func (rt *Router) LeftwardCZ(depth int) Circuit {
	m := rt.roles
	col := rt.n - 1 - depth
	var c Circuit
	for w := 0; w < rt.n; w += 2 {
		if w > 0 {
			c = append(c, Cz(m.Anc(w), m.Sys(w-1, col)))
		}
		if w+1 < rt.n {
			c = append(c, Cz(m.Anc(w), m.Sys(w+1, col)))
		}
	}
	return c
}

// LeftwardSwap moves every ancilla one column deeper into the lattice: SWAP
// with the system qubit at grid column n-1-depth, role bindings exchanged,
// then a CNOT from the relocated system qubit onto the relocated ancilla to
// fix up the parity it now carries.
func (rt *Router) LeftwardSwap(depth int) Circuit {
	m := rt.roles
	col := rt.n - 1 - depth
	var c Circuit
	for r := 0; r < rt.n; r++ {
		c = append(c, Swap(m.Anc(r), m.Sys(r, col)))
		m.exchange(r, col)
		c = append(c, Cnot(m.Sys(r, col), m.Anc(r)))
	}
	return c
}

// RightwardSwap walks the ancillas back out through grid column depth, two
// adjacent rows at a time. Per row: the parity fix-up CNOT again (undoing the
// leftward one), then the SWAP that moves the ancilla, with the mapping
// update mirroring LeftwardSwap in the opposite direction. No phases are
// emitted on the way out; the leftward pass already planted all of them.
func (rt *Router) RightwardSwap(depth int) Circuit {
	m := rt.roles
	emit := func(row int) Circuit {
		a, s := m.Anc(row), m.Sys(row, depth)
		m.exchange(row, depth)
		return Circuit{Cnot(s, a), Swap(a, s)}
	}
	var c Circuit
	r := 0
	for ; r+1 < rt.n; r += 2 {
		c = append(c, emit(r)...)
		c = append(c, emit(r+1)...)
	}
	if r < rt.n {
		// odd grids leave a final unpaired row; its ancilla still has to
		// walk out
		c = append(c, emit(r)...)
	}
	return c
}

/*
BuildEncodingCircuit emits the full transform: forward parity change, n
depth steps of leftward CZ+SWAP, the reverse parity change, and n depth
steps of rightward swap-out. Returns the concatenated circuit and build
metrics; the final role mapping is available through Roles and lands back on
the identity assignment.
*/
func (rt *Router) BuildEncodingCircuit() (Circuit, *Metrics) {
	m := newMetrics(rt.n, rt.TotalQubits())
	var c Circuit

	stage := rt.ParityForward()
	m.record("parity-forward", stage)
	c = append(c, stage...)

	for depth := 0; depth < rt.n; depth++ {
		cz := rt.LeftwardCZ(depth)
		m.record("leftward-cz", cz)
		c = append(c, cz...)

		sw := rt.LeftwardSwap(depth)
		m.record("leftward-swap", sw)
		c = append(c, sw...)
	}
	errnie.Info(
		"swap network: leftward pass done - %d gates over %d qubits",
		len(c),
		rt.TotalQubits(),
	)

	stage = rt.ParityReverse()
	m.record("parity-reverse", stage)
	c = append(c, stage...)

	for depth := 0; depth < rt.n; depth++ {
		sw := rt.RightwardSwap(depth)
		m.record("rightward-swap", sw)
		c = append(c, sw...)
	}
	errnie.Info(
		"swap network: complete - %d gates, grid %dx%d",
		len(c),
		rt.n,
		rt.n,
	)
	return c, m
}

// BuildEncodingCircuit is the package-level entry point: the four-stage gate
// list for an n×n grid plus the final role mapping.
func BuildEncodingCircuit(n int) (Circuit, *RoleMap, error) {
	rt, err := NewRouter(n)
	if err != nil {
		return nil, nil, err
	}
	c, _ := rt.BuildEncodingCircuit()
	return c, rt.Roles(), nil
}
