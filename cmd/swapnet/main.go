package main

import (
	"fmt"
	"log"
	"os"

	"github.com/theapemachine/errnie"
	"github.com/urfave/cli"

	"github.com/qlattice/swapnet"
)

// VERSION is populated via build flags when packaging binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "swapnet"
	app.Usage = "synthesize and verify the fermion-to-qubit encoding swap network"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "grid, g",
			Value: 4,
			Usage: "grid side length n (n*n system qubits + n ancillas)",
		},
		cli.BoolFlag{
			Name:  "verify",
			Usage: "evaluate the circuit operator and check every vertical hopping edge (dimension 2^(n*n+n): feasible up to about n=4)",
		},
		cli.BoolFlag{
			Name:  "strip-cz",
			Usage: "also check that the circuit without its CZ gates is the identity",
		},
		cli.IntFlag{
			Name:  "maxqubits",
			Value: 30,
			Usage: "refuse to materialize operators over more qubits than this",
		},
		cli.BoolFlag{
			Name:  "mapping",
			Usage: "print the final role-to-physical mapping",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	n := c.Int("grid")
	router, err := swapnet.NewRouter(n)
	if err != nil {
		return err
	}

	circuit, metrics := router.BuildEncodingCircuit()
	fmt.Printf("grid %dx%d: %d system qubits, %d ancillas, %d gates\n",
		n, n, n*n, n, len(circuit))
	for _, s := range metrics.Stages() {
		fmt.Printf("  %-18s %6d gates\n", s.Name, s.Gates)
	}
	for _, k := range metrics.Kinds() {
		fmt.Printf("  %-18s %6d total\n", k.Kind, k.Gates)
	}

	if c.Bool("mapping") {
		roles := router.Roles()
		fmt.Printf("system roles:  %v\n", roles.SysSnapshot())
		fmt.Printf("ancilla roles: %v\n", roles.AncSnapshot())
	}
	if err := router.Roles().Validate(); err != nil {
		return err
	}

	if !c.Bool("verify") && !c.Bool("strip-cz") {
		return nil
	}

	cfg := swapnet.NewConfig()
	cfg.MaxQubits = c.Int("maxqubits")
	verifier := swapnet.NewVerifier(cfg)

	if c.Bool("strip-cz") {
		d, err := verifier.StrippedIdentityDiscrepancy(n)
		if err != nil {
			return err
		}
		fmt.Printf("CZ-stripped circuit vs identity: max discrepancy %g\n", d)
	}

	if c.Bool("verify") {
		errnie.Info("verifying %d vertical edges over %d qubits", n*(n-1), n*n+n)
		rep, err := verifier.VerifyVerticalHopping(n)
		if err != nil {
			return err
		}
		for _, e := range rep.Edges {
			fmt.Printf("  edge (%d,%d)-(%d,%d) modes %d-%d: discrepancy %g\n",
				e.Row, e.Col, e.Row+1, e.Col, e.ModeI, e.ModeJ, e.Discrepancy)
		}
		fmt.Printf("max discrepancy: %g\n", rep.Max)
		if !verifier.Passes(rep) {
			return fmt.Errorf("verification failed: %g above tolerance %g", rep.Max, cfg.Tolerance)
		}
	}
	return nil
}
