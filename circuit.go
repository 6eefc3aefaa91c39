package swapnet

import "github.com/pkg/errors"

// GateKind is the closed set of two-qubit gate kinds a circuit may contain.
// The zero value is deliberately invalid so an uninitialized Gate cannot
// silently evaluate as anything.
type GateKind int

const (
	KindCnot GateKind = iota + 1
	KindCz
	KindSwap
)

func (k GateKind) String() string {
	switch k {
	case KindCnot:
		return "cnot"
	case KindCz:
		return "cz"
	case KindSwap:
		return "swap"
	default:
		return "invalid"
	}
}

/*
Gate is one two-qubit gate on physical qubits. Operand convention: Control is
the CNOT control; for the symmetric CZ and SWAP kinds it is simply the
first-listed qubit. Target is the CNOT target / second qubit. The field names
carry the convention so call sites cannot get it wrong positionally.
*/
type Gate struct {
	Kind    GateKind
	Control int
	Target  int
}

func Cnot(control, target int) Gate {
	return Gate{Kind: KindCnot, Control: control, Target: target}
}

func Cz(a, b int) Gate {
	return Gate{Kind: KindCz, Control: a, Target: b}
}

func Swap(a, b int) Gate {
	return Gate{Kind: KindSwap, Control: a, Target: b}
}

// Circuit is an ordered gate sequence. Operators compose in emission order:
// the gate appended last acts last in time, so its matrix ends up leftmost in
// the product.
type Circuit []Gate

// StripCZ returns the circuit with every CZ removed. SWAP and CNOT alone only
// permute basis states, which is what the identity check in the verifier
// relies on.
func StripCZ(c Circuit) Circuit {
	out := make(Circuit, 0, len(c))
	for _, g := range c {
		if g.Kind != KindCz {
			out = append(out, g)
		}
	}
	return out
}

// Evaluator composes circuits into full-space operators under a resource
// configuration.
type Evaluator struct {
	cfg *Config
}

func NewEvaluator(cfg *Config) *Evaluator {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Evaluator{cfg: cfg}
}

// Evaluate multiplies the circuit's gates, newest premultiplied, onto the
// 2^n identity. Fails fast on the first bad gate; no partial operator is
// ever returned.
func (e *Evaluator) Evaluate(c Circuit, n int) (*Sparse, error) {
	if err := guardQubits(n, e.cfg); err != nil {
		return nil, err
	}
	op := NewIdentity(1 << n)
	for k, g := range c {
		gop, err := e.operatorFor(g, n)
		if err != nil {
			return nil, errors.WithMessagef(err, "gate %d of %d", k, len(c))
		}
		if op, err = gop.Mul(op); err != nil {
			return nil, err
		}
	}
	return op, nil
}

func (e *Evaluator) operatorFor(g Gate, n int) (*Sparse, error) {
	switch g.Kind {
	case KindCnot:
		return CnotOperator(g.Control, g.Target, n)
	case KindCz:
		return CzOperator(g.Control, g.Target, n)
	case KindSwap:
		return SwapOperator(g.Control, g.Target, n)
	default:
		return nil, errors.Wrapf(ErrUnsupportedGateKind, "kind %d", int(g.Kind))
	}
}

// Evaluate composes the circuit under the default configuration.
func Evaluate(c Circuit, n int) (*Sparse, error) {
	return NewEvaluator(nil).Evaluate(c, n)
}
