package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/tathmini/core/analytics"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db           *sql.DB
	analyticsSvc *analytics.Service
	threshold    float64 // default high-stress cutoff
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  calcstress [-threshold SCORE] - recompute every student's stress score and list the watchlist")
	fmt.Println("  migrate COMMAND [args] - manage database migrations (up, down, status, ...)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	calcStressCmd := flag.NewFlagSet("calcstress", flag.ExitOnError)
	calcStressThreshold := calcStressCmd.Float64("threshold", 0, "Stress score above which a student makes the watchlist. Defaults to the configured alert threshold.")

	switch args[1] {
	case "calcstress":
		if err := calcStressCmd.Parse(args[2:]); err != nil {
			return err
		}
		threshold := *calcStressThreshold
		if threshold <= 0 {
			threshold = cli.threshold
		}
		return cli.calcStress(threshold)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) calcStress(threshold float64) error {
	reports, err := cli.analyticsSvc.StressReports()
	if err != nil {
		return err
	}

	var flagged int
	for _, r := range reports {
		marker := " "
		if r.Stress.Score >= threshold {
			marker = "!"
			flagged++
		}
		fmt.Printf("%s %-36s %-20s %6.1f %s\n", marker, r.Student.ID, r.Student.Name, r.Stress.Score, r.Stress.Level)
	}
	fmt.Printf("\n%d student(s), %d above %.1f\n", len(reports), flagged, threshold)
	return nil
}
