package tasks

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/abhisek/taskgym/internal/corpus"
	"github.com/abhisek/taskgym/internal/dataset"
)

// TextTransformation selects the casing applied to words before sorting.
type TextTransformation string

const (
	TransformLowercase  TextTransformation = "lowercase"
	TransformUppercase  TextTransformation = "uppercase"
	TransformOriginal   TextTransformation = "original"
	TransformRandomcase TextTransformation = "randomcase"
)

// AllTransformations returns the transformations in their fixed order.
func AllTransformations() []TextTransformation {
	return []TextTransformation{TransformLowercase, TransformUppercase, TransformOriginal, TransformRandomcase}
}

// WordSortingConfig holds the parameters for word sorting tasks.
type WordSortingConfig struct {
	MinWords       int                `json:"min_words"`       // Minimum words to sort
	MaxWords       int                `json:"max_words"`       // Maximum words to sort
	MinWordLength  int                `json:"min_word_length"` // Minimum word length
	MaxWordLength  int                `json:"max_word_length"` // Maximum word length
	Transformation TextTransformation `json:"transformation"`
	Seed           *int64             `json:"seed,omitempty"`
	Size           int                `json:"size"`
}

// DefaultWordSortingConfig returns the standard parameters.
func DefaultWordSortingConfig() WordSortingConfig {
	return WordSortingConfig{
		MinWords:       3,
		MaxWords:       10,
		MinWordLength:  3,
		MaxWordLength:  12,
		Transformation: TransformOriginal,
		Size:           500,
	}
}

// Validate checks the configured ranges and the transformation membership.
func (c WordSortingConfig) Validate() error {
	if c.MinWords <= 0 {
		return fmt.Errorf("%w: min_words must be positive (got %d)", dataset.ErrInvalidConfig, c.MinWords)
	}
	if c.MaxWords < c.MinWords {
		return fmt.Errorf("%w: max_words (%d) must be >= min_words (%d)", dataset.ErrInvalidConfig, c.MaxWords, c.MinWords)
	}
	if c.MinWordLength <= 0 {
		return fmt.Errorf("%w: min_word_length must be positive (got %d)", dataset.ErrInvalidConfig, c.MinWordLength)
	}
	if c.MaxWordLength < c.MinWordLength {
		return fmt.Errorf("%w: max_word_length (%d) must be >= min_word_length (%d)",
			dataset.ErrInvalidConfig, c.MaxWordLength, c.MinWordLength)
	}
	valid := false
	for _, t := range AllTransformations() {
		if c.Transformation == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unknown transformation %q", dataset.ErrInvalidConfig, c.Transformation)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", dataset.ErrInvalidConfig, c.Size)
	}
	return nil
}

// WordSortingDataset asks for a list of corpus words sorted lexically in a
// stated direction.
type WordSortingDataset struct {
	dataset.Base
	cfg   WordSortingConfig
	words []string
}

// NewWordSorting validates cfg and collects the unique corpus words within
// the length bounds, in first-occurrence order so the pool is stable.
func NewWordSorting(cfg WordSortingConfig) (*WordSortingDataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	text, err := corpus.Read(corpus.InTheYear2889)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var words []string
	for _, w := range corpus.Words(text) {
		if len(w) < cfg.MinWordLength || len(w) > cfg.MaxWordLength || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if len(words) < cfg.MaxWords {
		return nil, fmt.Errorf("%w: corpus has %d distinct words in length range, max_words is %d",
			dataset.ErrInvalidConfig, len(words), cfg.MaxWords)
	}
	return &WordSortingDataset{
		Base:  dataset.NewBase(cfg.Seed, cfg.Size),
		cfg:   cfg,
		words: words,
	}, nil
}

// Get generates the sorting task at index i.
func (d *WordSortingDataset) Get(i int) (dataset.Sample, error) {
	if err := d.CheckBounds(i); err != nil {
		return dataset.Sample{}, err
	}
	rng := d.Stream(i)

	count := dataset.IntBetween(rng, d.cfg.MinWords, d.cfg.MaxWords)
	perm := rng.Perm(len(d.words))[:count]
	original := make([]string, count)
	transformed := make([]string, count)
	for j, p := range perm {
		original[j] = d.words[p]
		transformed[j] = d.transform(d.words[p], rng)
	}

	sorted := append([]string(nil), transformed...)
	sort.Strings(sorted)
	ascending := rng.IntN(2) == 0
	direction := "ascending"
	if !ascending {
		direction = "descending"
		for a, b := 0, len(sorted)-1; a < b; a, b = a+1, b-1 {
			sorted[a], sorted[b] = sorted[b], sorted[a]
		}
	}

	return dataset.Sample{
		Question: fmt.Sprintf("Sort these words in %s order: %s", direction, strings.Join(transformed, ", ")),
		Answer:   strings.Join(sorted, ", "),
		Metadata: map[string]any{
			"original_words":    original,
			"transformed_words": transformed,
			"direction":         direction,
			"transformation":    string(d.cfg.Transformation),
			"sorted_words":      sorted,
		},
	}, nil
}

func (d *WordSortingDataset) transform(word string, rng *rand.Rand) string {
	switch d.cfg.Transformation {
	case TransformLowercase:
		return strings.ToLower(word)
	case TransformUppercase:
		return strings.ToUpper(word)
	case TransformRandomcase:
		var b strings.Builder
		b.Grow(len(word))
		for _, r := range word {
			if rng.IntN(2) == 0 {
				b.WriteString(strings.ToUpper(string(r)))
			} else {
				b.WriteString(strings.ToLower(string(r)))
			}
		}
		return b.String()
	default:
		return word
	}
}
