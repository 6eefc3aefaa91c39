package swapnet

type Config struct {
	// MaxQubits caps the total qubit count an operator may span. The full
	// operator dimension is 2^n, so this is a memory ceiling, not a
	// correctness parameter.
	MaxQubits int

	// Tolerance is the discrepancy at or below which the verifier treats two
	// operators as equal. Everything in this package is dyadic-rational
	// arithmetic, so the default of zero is achievable.
	Tolerance float64
}

func NewConfig() *Config {
	return &Config{
		MaxQubits: 30,
		Tolerance: 0,
	}
}
