package tasks

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/taskgym/internal/dataset"
)

// countdownMaxAttempts bounds the resample loop. The search is heuristic:
// an unreachable target range would otherwise loop forever.
const countdownMaxAttempts = 100

// countdownPrompts are the question templates; {numbers} and {target} are
// substituted per sample.
var countdownPrompts = []string{
	"Using the numbers {numbers}, create an expression that equals {target}.\nYou can only use each number once.",
	"Find a way to make {target} using some or all of these numbers: {numbers}.\nEach number can only be used once.",
	"Calculate {target} using the numbers {numbers}.\nEach number may be used at most once.",
}

// allowedOperators is the full operator set countdown configs may draw from.
var allowedOperators = []string{"+", "-", "*", "/"}

// CountdownConfig holds the parameters for countdown number game tasks.
type CountdownConfig struct {
	MinNumbers int      `json:"min_numbers"` // Minimum numbers to provide
	MaxNumbers int      `json:"max_numbers"` // Maximum numbers to provide
	MinValue   int      `json:"min_value"`   // Minimum value for source numbers
	MaxValue   int      `json:"max_value"`   // Maximum value for source numbers
	MinTarget  int      `json:"min_target"`  // Minimum target value
	MaxTarget  int      `json:"max_target"`  // Maximum target value
	Operators  []string `json:"operators"`   // Allowed operators, subset of + - * /
	Shuffle    bool     `json:"shuffle"`     // Shuffle the presented number order
	Seed       *int64   `json:"seed,omitempty"`
	Size       int      `json:"size"`
}

// DefaultCountdownConfig returns the standard parameters.
func DefaultCountdownConfig() CountdownConfig {
	return CountdownConfig{
		MinNumbers: 4,
		MaxNumbers: 6,
		MinValue:   1,
		MaxValue:   100,
		MinTarget:  100,
		MaxTarget:  999,
		Operators:  []string{"+", "-", "*", "/"},
		Shuffle:    true,
		Size:       500,
	}
}

// Validate checks the configured ranges and the operator set.
func (c CountdownConfig) Validate() error {
	if c.MinNumbers <= 1 {
		return fmt.Errorf("%w: min_numbers must be greater than 1 (got %d)", dataset.ErrInvalidConfig, c.MinNumbers)
	}
	if c.MaxNumbers < c.MinNumbers {
		return fmt.Errorf("%w: max_numbers (%d) must be >= min_numbers (%d)", dataset.ErrInvalidConfig, c.MaxNumbers, c.MinNumbers)
	}
	if c.MinValue <= 0 {
		return fmt.Errorf("%w: min_value must be positive (got %d)", dataset.ErrInvalidConfig, c.MinValue)
	}
	if c.MaxValue < c.MinValue {
		return fmt.Errorf("%w: max_value (%d) must be >= min_value (%d)", dataset.ErrInvalidConfig, c.MaxValue, c.MinValue)
	}
	if c.MinTarget <= 0 {
		return fmt.Errorf("%w: min_target must be positive (got %d)", dataset.ErrInvalidConfig, c.MinTarget)
	}
	if c.MaxTarget < c.MinTarget {
		return fmt.Errorf("%w: max_target (%d) must be >= min_target (%d)", dataset.ErrInvalidConfig, c.MaxTarget, c.MinTarget)
	}
	if len(c.Operators) == 0 {
		return fmt.Errorf("%w: must specify at least one operator", dataset.ErrInvalidConfig)
	}
	for _, op := range c.Operators {
		valid := false
		for _, a := range allowedOperators {
			if op == a {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%w: invalid operator %q", dataset.ErrInvalidConfig, op)
		}
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", dataset.ErrInvalidConfig, c.Size)
	}
	return nil
}

// CountdownDataset builds arithmetic expressions over a bag of numbers that
// hit a target value.
type CountdownDataset struct {
	dataset.Base
	cfg CountdownConfig
}

// NewCountdown validates cfg and returns the dataset.
func NewCountdown(cfg CountdownConfig) (*CountdownDataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CountdownDataset{Base: dataset.NewBase(cfg.Seed, cfg.Size), cfg: cfg}, nil
}

// Get generates the countdown task at index i. It fails with ErrInfeasible
// when no expression lands in the target range within the retry budget.
func (d *CountdownDataset) Get(i int) (dataset.Sample, error) {
	if err := d.CheckBounds(i); err != nil {
		return dataset.Sample{}, err
	}
	rng := d.Stream(i)

	expression, numbers, target, err := d.generateExpression(rng)
	if err != nil {
		return dataset.Sample{}, fmt.Errorf("countdown index %d: %w", i, err)
	}

	if d.cfg.Shuffle {
		rng.Shuffle(len(numbers), func(a, b int) { numbers[a], numbers[b] = numbers[b], numbers[a] })
	}
	numbersStr := joinInts(numbers, ", ")

	prompt := countdownPrompts[rng.IntN(len(countdownPrompts))]
	question := strings.NewReplacer(
		"{numbers}", numbersStr,
		"{target}", fmt.Sprintf("%d", target),
	).Replace(prompt)

	return dataset.Sample{
		Question: question,
		Answer:   expression,
		Metadata: map[string]any{
			"numbers":    append([]int(nil), numbers...),
			"target":     target,
			"expression": expression,
		},
	}, nil
}

// runningExpr is a left-associative expression under construction: its text
// with standard operator precedence, the exact rational value, and the
// precedence of the top-level operator (atoms bind tightest).
type runningExpr struct {
	text string
	val  *big.Rat
	prec int
}

func opPrec(op string) int {
	if op == "*" || op == "/" {
		return 2
	}
	return 1
}

// combine folds the next operand into the expression, parenthesizing the
// accumulated text when the new operator binds tighter than its top level.
func (e *runningExpr) combine(op string, n int) {
	p := opPrec(op)
	text := e.text
	if e.prec < p {
		text = "(" + text + ")"
	}
	e.text = fmt.Sprintf("%s %s %d", text, op, n)
	e.prec = p

	r := big.NewRat(int64(n), 1)
	switch op {
	case "+":
		e.val.Add(e.val, r)
	case "-":
		e.val.Sub(e.val, r)
	case "*":
		e.val.Mul(e.val, r)
	case "/":
		e.val.Quo(e.val, r)
	}
}

// generateExpression repeatedly builds a candidate expression until its
// exact value is an integer inside the configured target range. Division is
// kept feasible by swapping the divisor for a value drawn from the
// remaining pool excluding zeros, falling back to subtraction when the pool
// is empty and to addition on a zero divisor.
func (d *CountdownDataset) generateExpression(rng *rand.Rand) (string, []int, int, error) {
	for attempt := 0; attempt < countdownMaxAttempts; attempt++ {
		numTerms := dataset.IntBetween(rng, d.cfg.MinNumbers, d.cfg.MaxNumbers)
		numbers := make([]int, numTerms)
		for j := range numbers {
			numbers[j] = dataset.IntBetween(rng, d.cfg.MinValue, d.cfg.MaxValue)
		}

		e := runningExpr{
			text: fmt.Sprintf("%d", numbers[0]),
			val:  big.NewRat(int64(numbers[0]), 1),
			prec: 3,
		}

		for j := 1; j < numTerms; j++ {
			op := d.cfg.Operators[rng.IntN(len(d.cfg.Operators))]
			if op == "/" {
				switch {
				case numbers[j] == 0:
					op = "+"
				default:
					var candidates []int
					for _, n := range numbers[j:] {
						if n != 0 {
							candidates = append(candidates, n)
						}
					}
					if len(candidates) == 0 {
						op = "-"
					} else {
						numbers[j] = candidates[rng.IntN(len(candidates))]
					}
				}
			}
			e.combine(op, numbers[j])
		}

		if !e.val.IsInt() {
			continue
		}
		target := int(e.val.Num().Int64())
		if target < d.cfg.MinTarget || target > d.cfg.MaxTarget {
			continue
		}
		return e.text, numbers, target, nil
	}
	return "", nil, 0, fmt.Errorf("%w: no expression hit [%d, %d] in %d attempts",
		dataset.ErrInfeasible, d.cfg.MinTarget, d.cfg.MaxTarget, countdownMaxAttempts)
}

func joinInts(ns []int, sep string) string {
	parts := make([]string, len(ns))
	for j, n := range ns {
		parts[j] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, sep)
}
