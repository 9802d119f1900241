package bio

import (
	"fmt"
	"sort"
	"strings"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/calc"
)

// CodonTable is the standard genetic code. Stop codons map to '*'.
var CodonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

const (
	startCodon = "ATG"
	stop       = '*'
	unknownAA  = 'X'
)

// Amino returns the one-letter amino acid for codon, or 'X' when the codon
// contains anything but A, C, G and T.
func Amino(codon string) byte {
	if aa, ok := CodonTable[codon]; ok {
		return aa
	}
	return unknownAA
}

// Normalize upper-cases seq and strips all whitespace.
func Normalize(seq string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, seq)
}

// Clean normalizes seq and drops every character that is not a base. The
// dropped characters are returned sorted and deduplicated.
func Clean(seq string) (bases, ignored string) {
	seq = Normalize(seq)
	var b strings.Builder
	seen := make(map[rune]bool)
	for _, r := range seq {
		switch r {
		case 'A', 'C', 'G', 'T':
			b.WriteRune(r)
		default:
			seen[r] = true
		}
	}

	bad := make([]string, 0, len(seen))
	for r := range seen {
		bad = append(bad, string(r))
	}
	sort.Strings(bad)
	return b.String(), strings.Join(bad, "")
}

// GCResult holds the GC content of a sequence.
type GCResult struct {
	Length   int
	GC       int
	Fraction float64
	Ignored  string
}

// GCContent computes the fraction of G and C bases, ignoring invalid
// characters.
func GCContent(seq string) (GCResult, error) {
	if Normalize(seq) == "" {
		return GCResult{}, scierr.InvalidInput("empty sequence")
	}
	bases, ignored := Clean(seq)
	if bases == "" {
		return GCResult{}, scierr.InvalidInput("no valid bases left after filtering")
	}

	gc := strings.Count(bases, "G") + strings.Count(bases, "C")
	return GCResult{
		Length:   len(bases),
		GC:       gc,
		Fraction: float64(gc) / float64(len(bases)),
		Ignored:  ignored,
	}, nil
}

// Warnings returns the user-facing warnings about the input.
func (r GCResult) Warnings() []string {
	if r.Ignored == "" {
		return nil
	}
	return []string{"ignoring invalid characters: " + r.Ignored}
}

// Report implements calc.Reporter.
func (r GCResult) Report() calc.Report {
	return calc.Report{
		Title: "GC content",
		Rows: []calc.Row{
			calc.Num("Length", float64(r.Length), "nt"),
			calc.Num("GC count", float64(r.GC), ""),
			calc.Num("GC fraction", r.Fraction, ""),
		},
		Notes: r.Warnings(),
	}
}

// TranslateInput selects how a coding sequence is read. Frame is the
// 0-based offset. With ORFOnly, translation starts at the first ATG in
// that frame.
type TranslateInput struct {
	Sequence    string
	Frame       int
	ReadThrough bool
	ORFOnly     bool
}

// TranslateResult holds the protein in one-letter code.
type TranslateResult struct {
	Start   int // 0-based nucleotide offset of the first codon
	Protein string
}

// Translate converts DNA into protein. An incomplete trailing codon is
// ignored; unknown codons translate to 'X'.
func Translate(in TranslateInput) (TranslateResult, error) {
	seq := Normalize(in.Sequence)
	if seq == "" {
		return TranslateResult{}, scierr.InvalidInput("empty sequence")
	}
	if in.Frame < 0 || in.Frame > 2 {
		return TranslateResult{}, scierr.OutOfRange("frame must be 0, 1, or 2").WithDetail("frame", in.Frame)
	}

	start := in.Frame
	if in.ORFOnly {
		start = -1
		for i := in.Frame; i+3 <= len(seq); i += 3 {
			if seq[i:i+3] == startCodon {
				start = i
				break
			}
		}
		if start < 0 {
			return TranslateResult{}, scierr.New("no in-frame start codon (ATG) found from the chosen frame").
				WithCode(scierr.CodeNotFound)
		}
	}

	protein, _ := translateFrom(seq, start, !in.ReadThrough)
	return TranslateResult{Start: start, Protein: protein}, nil
}

// translateFrom reads codons from start. With stopAtStop it halts before
// the first stop codon. The returned end is the offset just past the last
// codon consumed, excluding a terminating stop.
func translateFrom(seq string, start int, stopAtStop bool) (string, int) {
	var b strings.Builder
	i := start
	for ; i+3 <= len(seq); i += 3 {
		aa := Amino(seq[i : i+3])
		if aa == stop && stopAtStop {
			break
		}
		b.WriteByte(aa)
	}
	return b.String(), i
}

// Report implements calc.Reporter.
func (r TranslateResult) Report() calc.Report {
	return calc.Report{
		Title: "Translation",
		Rows:  []calc.Row{calc.Txt("Protein", r.Protein)},
	}
}

// DefaultMinAA is the default minimum ORF length in amino acids.
const DefaultMinAA = 30

// ORFInput configures an ORF scan. Frames are numbered 1 to 3; an empty
// list scans all three.
type ORFInput struct {
	Sequence    string
	MinAA       int
	Frames      []int
	ReadThrough bool
}

// ORF is an open reading frame. Start and End are 1-based nucleotide
// positions; End is the last base before the stop codon.
type ORF struct {
	Frame   int    `json:"frame" yaml:"frame"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Protein string `json:"protein" yaml:"protein"`
}

// Length returns the ORF length in amino acids.
func (o ORF) Length() int { return len(o.Protein) }

// Preview shortens the protein to at most 30 residues.
func (o ORF) Preview() string {
	if len(o.Protein) > 30 {
		return o.Protein[:30] + "..."
	}
	return o.Protein
}

// ORFResult lists the ORFs found, frame by frame in sequence order.
type ORFResult struct {
	MinAA   int
	Frames  []int
	ORFs    []ORF
	Ignored string
}

// FindORFs scans the requested frames for ATG-initiated reading frames of
// at least MinAA residues. Every in-frame ATG starts a candidate, so
// nested ORFs are reported too.
func FindORFs(in ORFInput) (ORFResult, error) {
	if Normalize(in.Sequence) == "" {
		return ORFResult{}, scierr.InvalidInput("empty sequence")
	}
	seq, ignored := Clean(in.Sequence)
	if seq == "" {
		return ORFResult{}, scierr.InvalidInput("no valid bases left after filtering")
	}
	if in.MinAA < 0 {
		return ORFResult{}, scierr.OutOfRange("minimum length must be non-negative").WithDetail("min_aa", in.MinAA)
	}

	frames, err := normalizeFrames(in.Frames)
	if err != nil {
		return ORFResult{}, err
	}

	res := ORFResult{MinAA: in.MinAA, Frames: frames, Ignored: ignored}
	for _, frame := range frames {
		for i := frame - 1; i+3 <= len(seq); i += 3 {
			if seq[i:i+3] != startCodon {
				continue
			}
			protein, end := translateFrom(seq, i, !in.ReadThrough)
			if len(protein) >= in.MinAA {
				res.ORFs = append(res.ORFs, ORF{Frame: frame, Start: i + 1, End: end, Protein: protein})
			}
		}
	}
	return res, nil
}

func normalizeFrames(frames []int) ([]int, error) {
	if len(frames) == 0 {
		return []int{1, 2, 3}, nil
	}
	set := make(map[int]bool)
	for _, f := range frames {
		if f < 1 || f > 3 {
			return nil, scierr.OutOfRange("frames must be among 1, 2, 3").WithDetail("frame", f)
		}
		set[f] = true
	}
	out := make([]int, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Ints(out)
	return out, nil
}

// Report implements calc.Reporter.
func (r ORFResult) Report() calc.Report {
	rep := calc.Report{Title: fmt.Sprintf("ORFs (min length %d aa)", r.MinAA)}
	for _, o := range r.ORFs {
		rep.Rows = append(rep.Rows, calc.Txt(
			fmt.Sprintf("frame %d %d-%d", o.Frame, o.Start, o.End),
			fmt.Sprintf("%d aa %s", o.Length(), o.Preview()),
		))
	}
	if len(r.ORFs) == 0 {
		rep.Notes = append(rep.Notes, fmt.Sprintf("no ORFs found with length >= %d aa in frames %v", r.MinAA, r.Frames))
	}
	if r.Ignored != "" {
		rep.Notes = append(rep.Notes, "ignoring invalid characters: "+r.Ignored)
	}
	return rep
}
