package tasks

import (
	"fmt"
	"strings"

	"github.com/abhisek/taskgym/internal/corpus"
	"github.com/abhisek/taskgym/internal/dataset"
)

// CaesarCipherConfig holds the parameters for Caesar cipher tasks.
type CaesarCipherConfig struct {
	Delimiter   string `json:"delimiter"`    // Sentence delimiter in the corpus
	MinWords    int    `json:"min_words"`    // Minimum words per sentence
	MaxWords    int    `json:"max_words"`    // Maximum words per sentence
	MinRotation int    `json:"min_rotation"` // Minimum Caesar rotation
	MaxRotation int    `json:"max_rotation"` // Maximum Caesar rotation
	Seed        *int64 `json:"seed,omitempty"`
	Size        int    `json:"size"`
}

// DefaultCaesarCipherConfig returns the standard parameters.
func DefaultCaesarCipherConfig() CaesarCipherConfig {
	return CaesarCipherConfig{
		Delimiter:   ".",
		MinWords:    3,
		MaxWords:    20,
		MinRotation: 1,
		MaxRotation: 25,
		Size:        500,
	}
}

// Validate checks the configured ranges.
func (c CaesarCipherConfig) Validate() error {
	if c.MinWords <= 0 {
		return fmt.Errorf("%w: min_words must be positive (got %d)", dataset.ErrInvalidConfig, c.MinWords)
	}
	if c.MaxWords < c.MinWords {
		return fmt.Errorf("%w: max_words (%d) must be >= min_words (%d)", dataset.ErrInvalidConfig, c.MaxWords, c.MinWords)
	}
	if c.MinRotation < 1 || c.MinRotation > c.MaxRotation || c.MaxRotation > 25 {
		return fmt.Errorf("%w: rotation range [%d, %d] must lie within [1, 25]",
			dataset.ErrInvalidConfig, c.MinRotation, c.MaxRotation)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", dataset.ErrInvalidConfig, c.Size)
	}
	return nil
}

// CaesarCipherDataset asks for the decryption of a rotated corpus sentence.
type CaesarCipherDataset struct {
	dataset.Base
	cfg       CaesarCipherConfig
	sentences []string
}

// NewCaesarCipher validates cfg and preprocesses the corpus: sentences are
// split on the delimiter, reduced to their purely alphabetic words
// uppercased, and kept when the word count is within range.
func NewCaesarCipher(cfg CaesarCipherConfig) (*CaesarCipherDataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	text, err := corpus.Read(corpus.InTheYear2889)
	if err != nil {
		return nil, err
	}
	var sentences []string
	for _, sentence := range corpus.Sentences(text, cfg.Delimiter) {
		var words []string
		for _, w := range strings.Fields(sentence) {
			if isAlpha(w) {
				words = append(words, strings.ToUpper(w))
			}
		}
		if len(words) >= cfg.MinWords && len(words) <= cfg.MaxWords {
			sentences = append(sentences, strings.Join(words, " "))
		}
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: no corpus sentence has %d to %d alphabetic words",
			dataset.ErrInvalidConfig, cfg.MinWords, cfg.MaxWords)
	}
	return &CaesarCipherDataset{
		Base:      dataset.NewBase(cfg.Seed, cfg.Size),
		cfg:       cfg,
		sentences: sentences,
	}, nil
}

// Get generates the cipher task at index i.
func (d *CaesarCipherDataset) Get(i int) (dataset.Sample, error) {
	if err := d.CheckBounds(i); err != nil {
		return dataset.Sample{}, err
	}
	rng := d.Stream(i)

	clear := d.sentences[rng.IntN(len(d.sentences))]
	rotation := dataset.IntBetween(rng, d.cfg.MinRotation, d.cfg.MaxRotation)
	cipher := caesarEncrypt(clear, rotation)

	return dataset.Sample{
		Question: fmt.Sprintf("Decrypt this Caesar cipher text: %s", cipher),
		Answer:   clear,
		Metadata: map[string]any{
			"rotation":    rotation,
			"cipher_text": cipher,
			"clear_text":  clear,
		},
	}, nil
}

// caesarEncrypt rotates the letters A-Z of text by rotation positions,
// leaving everything else untouched. Input is already uppercased.
func caesarEncrypt(text string, rotation int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			r = 'A' + (r-'A'+rune(rotation))%26
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}
