package swapnet

import "github.com/pkg/errors"

// Sentinel error kinds. Callers compare with errors.Cause (or errors.Is);
// every error returned by this package wraps exactly one of these.
var (
	// ErrInvalidIndex marks a qubit index outside [0,n) or a subset
	// containing duplicates.
	ErrInvalidIndex = errors.New("invalid qubit index")

	// ErrUnsupportedGateKind marks a circuit entry whose kind is not one of
	// the declared GateKind values (typically a zero-valued Gate).
	ErrUnsupportedGateKind = errors.New("unsupported gate kind")

	// ErrDimensionMismatch marks operators whose dimensions are inconsistent
	// with each other or with the declared qubit count.
	ErrDimensionMismatch = errors.New("operator dimension mismatch")

	// ErrResourceExhausted marks a qubit count whose 2^n operator dimension
	// exceeds the configured ceiling. Raised before any allocation happens.
	ErrResourceExhausted = errors.New("operator dimension out of reach")
)

func checkIndex(q, n int) error {
	if q < 0 || q >= n {
		return errors.Wrapf(ErrInvalidIndex, "qubit %d outside [0,%d)", q, n)
	}
	return nil
}

// guardQubits rejects qubit counts whose full operator cannot be materialized
// under cfg. A nil cfg means the defaults from NewConfig.
func guardQubits(n int, cfg *Config) error {
	if cfg == nil {
		cfg = NewConfig()
	}
	if n < 1 {
		return errors.Wrapf(ErrInvalidIndex, "qubit count %d, need at least 1", n)
	}
	if n > cfg.MaxQubits {
		return errors.Wrapf(ErrResourceExhausted,
			"%d qubits imply a 2^%d-dimensional operator; the configured ceiling is %d qubits: reduce the problem size or raise Config.MaxQubits",
			n, n, cfg.MaxQubits)
	}
	return nil
}
