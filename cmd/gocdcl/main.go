// Command gocdcl is a DIMACS CNF SAT solver built on internal/core's
// CDCL engine: urfave/cli flags, a wall-clock timeout watchdog
// (-cpu-time-limit) and a SIGINT/SIGTERM handler that both print partial
// statistics before exiting.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli"

	"github.com/basaltsat/gocdcl/internal/driver"
)

var startTime time.Time
var debugMode bool

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{Name: "debug, d", Usage: "print the parsed problem and final statistics with pp"},
		cli.BoolTFlag{Name: "verbosity, verb", Usage: "print statistics on completion"},
		cli.StringFlag{Name: "input-file, in", Usage: "DIMACS CNF file to solve (required)", Value: "None"},
		cli.IntFlag{Name: "cpu-time-limit", Usage: "abort after this many seconds (-1: unlimited)", Value: -1},
	}
}

func validateFlags(c *cli.Context) error {
	if c.String("input-file") == "None" {
		return fmt.Errorf("input-file is required")
	}
	return nil
}

func printStatistics(s *driver.Solver) {
	elapsed := time.Since(startTime).Seconds()
	fmt.Printf("c ================================================================================\n")
	fmt.Printf("c restarts:      %12d\n", s.Stats.RestartCount)
	fmt.Printf("c conflicts:     %12d (%.02f / sec)\n", s.Stats.ConflictCount, float64(s.Stats.ConflictCount)/elapsed)
	fmt.Printf("c decisions:     %12d (%.02f / sec)\n", s.Stats.DecisionCount, float64(s.Stats.DecisionCount)/elapsed)
	fmt.Printf("c cpu time:      %12f\n", elapsed)
}

func printModel(s *driver.Solver) {
	st := s.State()
	fmt.Print("v ")
	for i := 1; i <= st.NumVars(); i++ {
		if st.Value(st.IndexToVar(i)) {
			fmt.Printf("%d ", i)
		} else {
			fmt.Printf("%d ", -i)
		}
	}
	fmt.Print("0\n")
}

func setTimeout(s *driver.Solver, seconds int, verbose bool) {
	if seconds <= 0 {
		return
	}
	go func() {
		<-time.After(time.Duration(seconds) * time.Second)
		fmt.Println("c TIMEOUT")
		if verbose {
			printStatistics(s)
		}
		fmt.Println("\ns INDETERMINATE")
		os.Exit(0)
	}()
}

func setInterrupt(s *driver.Solver, verbose bool) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("c INTERRUPT")
		if verbose {
			printStatistics(s)
		}
		fmt.Println("\ns INDETERMINATE")
		os.Exit(0)
	}()
}

func init() {
	startTime = time.Now()
}

func main() {
	app := cli.NewApp()
	app.Name = "gocdcl"
	app.Usage = "a CDCL SAT solver with dominator-based 1-UIP conflict analysis"
	app.Flags = flags()

	app.Before = func(c *cli.Context) error {
		debugMode = c.Bool("debug")
		return nil
	}

	app.Action = func(c *cli.Context) error {
		if err := validateFlags(c); err != nil {
			fmt.Println(err)
			cli.ShowAppHelpAndExit(c, 2)
		}

		fp, err := os.Open(c.String("input-file"))
		if err != nil {
			return err
		}
		defer fp.Close()

		problem, err := driver.ParseDIMACS(bufio.NewScanner(fp))
		if err != nil {
			return err
		}
		if debugMode {
			pp.Println(problem)
		}

		solver := driver.NewSolver(problem)
		verbose := c.BoolT("verbosity")
		setTimeout(solver, c.Int("cpu-time-limit"), verbose)
		setInterrupt(solver, verbose)

		result := solver.Solve()
		if verbose {
			printStatistics(solver)
		}

		switch result {
		case driver.Satisfiable:
			fmt.Println("\ns SATISFIABLE")
			printModel(solver)
		case driver.Unsatisfiable:
			fmt.Println("\ns UNSATISFIABLE")
		default:
			fmt.Println("\ns INDETERMINATE")
		}
		if debugMode {
			pp.Println(solver.Stats)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
