package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkobierski/polyquad"
)

var exprLines bool

var rootCmd = &cobra.Command{
	Use:   "polyquad <input-file> <output-file>",
	Short: "Integrate polynomials read from a file",
	Long: `polyquad reads integration bounds from the first line of the input file
and one polynomial per following line, integrates each polynomial over the
bounds with 1000-step rectangle and trapezoid rules, and writes one result
line per polynomial to the output file.

Polynomial lines are comma-separated coefficient lists (constant term
first) by default, or algebraic expressions like 5x^3-8 with
--expressions.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1], exprLines)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&exprLines, "expressions", false,
		"parse polynomial lines as algebraic expressions instead of CSV")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println("OPERATION FAILED!")
		os.Exit(1)
	}
	fmt.Println("OPERATION SUCCEEDED!")
}

// run reads bounds and polynomials from inname and writes one line of
// integrals per polynomial to outname. All input is parsed before any
// output is written, so a malformed line leaves no partial output file.
func run(inname, outname string, expressions bool) error {
	in, err := os.ReadFile(inname)
	if err != nil {
		return err
	}
	lines := strings.Split(strings.TrimSuffix(string(in), "\n"), "\n")
	for k, line := range lines {
		lines[k] = strings.TrimSuffix(line, "\r")
	}

	lower, upper, err := polyquad.ParseBounds(lines[0])
	if err != nil {
		return fmt.Errorf("line 1: %w", err)
	}
	parse := polyquad.ParseCSVLine
	if expressions {
		parse = polyquad.ParseExpression
	}
	polys := make([]*polyquad.Polynomial, 0, len(lines)-1)
	for k, line := range lines[1:] {
		p, err := parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", k+2, err)
		}
		polys = append(polys, p)
	}

	out, err := os.Create(outname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "bounds: %s, %s\n", lower, upper)
	for _, p := range polys {
		r, err := p.IntegrateRectangles(lower, upper)
		if err != nil {
			out.Close()
			return err
		}
		t, err := p.IntegrateTrapezoids(lower, upper)
		if err != nil {
			out.Close()
			return err
		}
		fmt.Fprintf(w, "integrated using rectangles: %s, integrated using trapezoids: %s\n", r, t)
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
