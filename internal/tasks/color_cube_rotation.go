package tasks

import (
	"fmt"
	"strings"

	"github.com/abhisek/taskgym/internal/dataset"
)

// Color is one of the six colors a cube face can hold.
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorWhite  Color = "white"
	ColorOrange Color = "orange"
)

// AllColors returns the palette in its fixed iteration order.
func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorWhite, ColorOrange}
}

// Side names one face of the cube.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideFront  Side = "front"
	SideLeft   Side = "left"
	SideBack   Side = "back"
	SideBottom Side = "bottom"
)

// AllSides returns the faces in their fixed iteration order. Shuffling,
// face assignment and the rotation laws below all rely on this order being
// stable.
func AllSides() []Side {
	return []Side{SideTop, SideRight, SideFront, SideLeft, SideBack, SideBottom}
}

// cube holds the color currently on each face.
type cube map[Side]Color

func (c cube) clone() cube {
	out := make(cube, len(c))
	for s, col := range c {
		out[s] = col
	}
	return out
}

// rotateToTop turns the cube so that the face currently at from ends up on
// top. Rotating top to top is the identity and is left to the caller to
// skip. Each case is the exact four-cycle of the rotation axis; the two
// faces on the axis stay in place.
func (c cube) rotateToTop(from Side) {
	old := c.clone()
	switch from {
	case SideFront:
		c[SideTop] = old[SideFront]
		c[SideFront] = old[SideBottom]
		c[SideBottom] = old[SideBack]
		c[SideBack] = old[SideTop]
	case SideRight:
		c[SideTop] = old[SideRight]
		c[SideRight] = old[SideBottom]
		c[SideBottom] = old[SideLeft]
		c[SideLeft] = old[SideTop]
	case SideBack:
		c[SideTop] = old[SideBack]
		c[SideBack] = old[SideBottom]
		c[SideBottom] = old[SideFront]
		c[SideFront] = old[SideTop]
	case SideLeft:
		c[SideTop] = old[SideLeft]
		c[SideLeft] = old[SideBottom]
		c[SideBottom] = old[SideRight]
		c[SideRight] = old[SideTop]
	case SideBottom:
		c[SideTop] = old[SideBottom]
		c[SideBottom] = old[SideTop]
		c[SideFront] = old[SideBack]
		c[SideBack] = old[SideFront]
	}
}

// ColorCubeRotationConfig holds the parameters for cube rotation tasks.
type ColorCubeRotationConfig struct {
	MinRotations int    `json:"min_rotations"`
	MaxRotations int    `json:"max_rotations"`
	Seed         *int64 `json:"seed,omitempty"`
	Size         int    `json:"size"`
}

// DefaultColorCubeRotationConfig returns the standard parameters.
func DefaultColorCubeRotationConfig() ColorCubeRotationConfig {
	return ColorCubeRotationConfig{MinRotations: 1, MaxRotations: 3, Size: 500}
}

// Validate checks the configured ranges.
func (c ColorCubeRotationConfig) Validate() error {
	if c.MinRotations <= 0 {
		return fmt.Errorf("%w: min_rotations must be positive (got %d)", dataset.ErrInvalidConfig, c.MinRotations)
	}
	if c.MaxRotations < c.MinRotations {
		return fmt.Errorf("%w: max_rotations (%d) must be >= min_rotations (%d)", dataset.ErrInvalidConfig, c.MaxRotations, c.MinRotations)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", dataset.ErrInvalidConfig, c.Size)
	}
	return nil
}

// ColorCubeRotationDataset narrates a colored cube being rotated and asks
// for the color of one face afterwards.
type ColorCubeRotationDataset struct {
	dataset.Base
	cfg ColorCubeRotationConfig
}

// NewColorCubeRotation validates cfg and returns the dataset.
func NewColorCubeRotation(cfg ColorCubeRotationConfig) (*ColorCubeRotationDataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ColorCubeRotationDataset{Base: dataset.NewBase(cfg.Seed, cfg.Size), cfg: cfg}, nil
}

// Get generates the cube rotation task at index i.
func (d *ColorCubeRotationDataset) Get(i int) (dataset.Sample, error) {
	if err := d.CheckBounds(i); err != nil {
		return dataset.Sample{}, err
	}
	rng := d.Stream(i)
	sides := AllSides()

	// Random bijection of colors onto faces.
	colors := AllColors()
	rng.Shuffle(len(colors), func(a, b int) { colors[a], colors[b] = colors[b], colors[a] })
	c := make(cube, len(sides))
	for j, s := range sides {
		c[s] = colors[j]
	}
	initial := c.clone()

	// Draw the rotation sequence. A draw of "top" would rotate the cube to
	// the position it already occupies, so it is skipped and not narrated;
	// the drawn count still includes it.
	numRotations := dataset.IntBetween(rng, d.cfg.MinRotations, d.cfg.MaxRotations)
	var rotations []Side
	for range numRotations {
		from := sides[rng.IntN(len(sides))]
		if from != SideTop {
			rotations = append(rotations, from)
			c.rotateToTop(from)
		}
	}

	target := sides[rng.IntN(len(sides))]

	var story strings.Builder
	story.WriteString("A cube has:")
	for _, s := range sides {
		fmt.Fprintf(&story, "\n- a %s %s side", initial[s], s)
	}
	for _, from := range rotations {
		fmt.Fprintf(&story,
			"\n\nThe cube is rotated so that the side which was before at the %s is now at the top.", from)
	}
	fmt.Fprintf(&story, "\n\nWhat is now the color of the %s side of the cube?", target)

	initialMeta := map[string]any{}
	for s, col := range initial {
		initialMeta[string(s)] = string(col)
	}
	rotationMeta := make([]string, len(rotations))
	for j, r := range rotations {
		rotationMeta[j] = string(r)
	}

	return dataset.Sample{
		Question: story.String(),
		Answer:   string(c[target]),
		Metadata: map[string]any{
			"initial_state": initialMeta,
			"rotations":     rotationMeta,
			"target_side":   string(target),
			"num_rotations": numRotations,
		},
	}, nil
}
