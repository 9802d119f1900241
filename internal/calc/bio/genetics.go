// Package bio implements population genetics and DNA sequence tools.
package bio

import (
	"fmt"
	"sort"
	"strings"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// Genotypes of a biallelic locus.
var Genotypes = [3]string{"AA", "AB", "BB"}

// HardyWeinbergInput gives either the allele frequency P (when HasP is set)
// or genotype counts from which P is estimated. Counts, when present, are
// also compared against the equilibrium frequencies.
type HardyWeinbergInput struct {
	P    float64
	HasP bool
	AA   int
	AB   int
	BB   int
}

func (in HardyWeinbergInput) total() int { return in.AA + in.AB + in.BB }

// HardyWeinbergResult holds p, q and the genotype frequencies in the order
// of Genotypes.
type HardyWeinbergResult struct {
	P         float64
	Q         float64
	Estimated bool
	Expected  [3]float64
	Observed  [3]float64
	HasCounts bool
}

// HardyWeinberg computes the equilibrium genotype frequencies p², 2pq and q².
func HardyWeinberg(in HardyWeinbergInput) (HardyWeinbergResult, error) {
	if in.AA < 0 || in.AB < 0 || in.BB < 0 {
		return HardyWeinbergResult{}, scierr.OutOfRange("genotype counts must be non-negative")
	}
	n := in.total()
	if !in.HasP && n == 0 {
		return HardyWeinbergResult{}, scierr.InvalidInput("provide either p or genotype counts")
	}

	var res HardyWeinbergResult
	if in.HasP {
		if err := calc.InRange("p", in.P, 0, 1); err != nil {
			return HardyWeinbergResult{}, err
		}
		res.P = in.P
	} else {
		res.P = float64(2*in.AA+in.AB) / float64(2*n)
		res.Estimated = true
	}
	res.Q = 1 - res.P
	res.Expected = [3]float64{res.P * res.P, 2 * res.P * res.Q, res.Q * res.Q}

	if n > 0 {
		res.HasCounts = true
		total := float64(n)
		res.Observed = [3]float64{float64(in.AA) / total, float64(in.AB) / total, float64(in.BB) / total}
	}
	return res, nil
}

// Report implements calc.Reporter.
func (r HardyWeinbergResult) Report() calc.Report {
	rep := calc.Report{
		Title: "Hardy-Weinberg equilibrium",
		Rows: []calc.Row{
			calc.Num("p", r.P, ""),
			calc.Num("q", r.Q, ""),
		},
	}
	for i, g := range Genotypes {
		rep.Rows = append(rep.Rows, calc.Num("Expected "+g, r.Expected[i], ""))
	}
	if r.HasCounts {
		for i, g := range Genotypes {
			rep.Rows = append(rep.Rows, calc.Num("Observed "+g, r.Observed[i], ""))
		}
	}
	if r.Estimated {
		rep.Notes = append(rep.Notes, "p estimated from genotype counts")
	}
	return rep
}

// Offspring is one genotype of a cross with its probability.
type Offspring struct {
	Genotype    string  `json:"genotype" yaml:"genotype"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// PunnettResult lists the offspring genotypes sorted by genotype.
type PunnettResult struct {
	Parent1   string
	Parent2   string
	Offspring []Offspring
}

// Punnett crosses two single-locus diploid genotypes such as "Aa".
// Alleles within a child genotype are sorted so "aA" and "Aa" coincide.
func Punnett(parent1, parent2 string) (PunnettResult, error) {
	p1 := strings.TrimSpace(parent1)
	p2 := strings.TrimSpace(parent2)
	for _, g := range []string{p1, p2} {
		if len([]rune(g)) != 2 {
			return PunnettResult{}, scierr.InvalidInput("genotype must be 2 characters, e.g. 'Aa' or 'aa', got %q", g)
		}
	}

	counts := make(map[string]int)
	for _, a := range []rune(p1) {
		for _, b := range []rune(p2) {
			pair := []rune{a, b}
			sort.Slice(pair, func(i, j int) bool { return pair[i] < pair[j] })
			counts[string(pair)]++
		}
	}

	res := PunnettResult{Parent1: p1, Parent2: p2}
	for g, n := range counts {
		res.Offspring = append(res.Offspring, Offspring{Genotype: g, Probability: float64(n) / 4})
	}
	sort.Slice(res.Offspring, func(i, j int) bool { return res.Offspring[i].Genotype < res.Offspring[j].Genotype })
	return res, nil
}

// Report implements calc.Reporter.
func (r PunnettResult) Report() calc.Report {
	rep := calc.Report{Title: fmt.Sprintf("Punnett square %s x %s", r.Parent1, r.Parent2)}
	for _, o := range r.Offspring {
		rep.Rows = append(rep.Rows, calc.Num(o.Genotype, o.Probability, ""))
	}
	return rep
}
