package tasks

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/abhisek/taskgym/internal/corpus"
	"github.com/abhisek/taskgym/internal/dataset"
)

// LetterCountingConfig holds the parameters for letter counting tasks.
type LetterCountingConfig struct {
	MinWords int    `json:"min_words"` // Minimum words in the span
	MaxWords int    `json:"max_words"` // Maximum words in the span
	Seed     *int64 `json:"seed,omitempty"`
	Size     int    `json:"size"` // Virtual dataset size
}

// DefaultLetterCountingConfig returns the standard parameters.
func DefaultLetterCountingConfig() LetterCountingConfig {
	return LetterCountingConfig{MinWords: 5, MaxWords: 15, Size: 500}
}

// Validate checks the configured ranges.
func (c LetterCountingConfig) Validate() error {
	if c.MinWords <= 0 {
		return fmt.Errorf("%w: min_words must be positive (got %d)", dataset.ErrInvalidConfig, c.MinWords)
	}
	if c.MaxWords < c.MinWords {
		return fmt.Errorf("%w: max_words (%d) must be >= min_words (%d)", dataset.ErrInvalidConfig, c.MaxWords, c.MinWords)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", dataset.ErrInvalidConfig, c.Size)
	}
	return nil
}

// LetterCountingDataset asks how often a letter occurs in a contiguous span
// of corpus words.
type LetterCountingDataset struct {
	dataset.Base
	cfg   LetterCountingConfig
	words []string
}

// NewLetterCounting validates cfg, loads and tokenizes the corpus once, and
// returns the dataset.
func NewLetterCounting(cfg LetterCountingConfig) (*LetterCountingDataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	text, err := corpus.Read(corpus.InTheYear2889)
	if err != nil {
		return nil, err
	}
	words := corpus.Words(text)
	if len(words) < cfg.MaxWords {
		return nil, fmt.Errorf("%w: corpus has %d words, max_words is %d", dataset.ErrInvalidConfig, len(words), cfg.MaxWords)
	}
	return &LetterCountingDataset{
		Base:  dataset.NewBase(cfg.Seed, cfg.Size),
		cfg:   cfg,
		words: words,
	}, nil
}

// Get generates the letter counting task at index i.
func (d *LetterCountingDataset) Get(i int) (dataset.Sample, error) {
	if err := d.CheckBounds(i); err != nil {
		return dataset.Sample{}, err
	}
	rng := d.Stream(i)

	spanLen := dataset.IntBetween(rng, d.cfg.MinWords, d.cfg.MaxWords)
	start := rng.IntN(len(d.words) - spanLen + 1)
	span := d.words[start : start+spanLen]

	// Letters present in the span, case-folded, in sorted order so the
	// uniform pick below is reproducible.
	present := map[rune]bool{}
	for _, r := range strings.ToLower(strings.Join(span, "")) {
		if unicode.IsLetter(r) {
			present[r] = true
		}
	}
	letters := make([]rune, 0, len(present))
	for r := range present {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(a, b int) bool { return letters[a] < letters[b] })
	if len(letters) == 0 {
		// Span of pure digits: fall back to a fixed letter, count zero.
		letters = []rune{'a'}
	}

	target := string(letters[rng.IntN(len(letters))])
	count := 0
	for _, w := range span {
		count += strings.Count(strings.ToLower(w), target)
	}

	return dataset.Sample{
		Question: fmt.Sprintf("How many times does the letter %q appear in the text: %q?",
			target, strings.Join(span, " ")),
		Answer: fmt.Sprintf("%d", count),
		Metadata: map[string]any{
			"span_length":   spanLen,
			"target_letter": target,
			"span":          append([]string(nil), span...),
		},
	}, nil
}
