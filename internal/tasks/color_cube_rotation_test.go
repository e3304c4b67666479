package tasks

import (
	"reflect"
	"testing"

	"github.com/abhisek/taskgym/internal/dataset"
)

func TestCubeRotationLaws(t *testing.T) {
	start := cube{
		SideTop:    ColorRed,
		SideFront:  ColorBlue,
		SideBottom: ColorGreen,
		SideBack:   ColorYellow,
		SideLeft:   ColorWhite,
		SideRight:  ColorOrange,
	}

	t.Run("front to top", func(t *testing.T) {
		c := start.clone()
		c.rotateToTop(SideFront)
		want := cube{
			SideTop:    ColorBlue,
			SideFront:  ColorGreen,
			SideBottom: ColorYellow,
			SideBack:   ColorRed,
			SideLeft:   ColorWhite,
			SideRight:  ColorOrange,
		}
		if !reflect.DeepEqual(c, want) {
			t.Errorf("got %v, want %v", c, want)
		}
	})

	t.Run("bottom to top twice is identity", func(t *testing.T) {
		c := start.clone()
		c.rotateToTop(SideBottom)
		c.rotateToTop(SideBottom)
		if !reflect.DeepEqual(c, start) {
			t.Errorf("got %v, want starting state", c)
		}
	})

	t.Run("every rotation moves the named side to top", func(t *testing.T) {
		for _, from := range AllSides() {
			if from == SideTop {
				continue
			}
			c := start.clone()
			was := c[from]
			c.rotateToTop(from)
			if c[SideTop] != was {
				t.Errorf("rotate %s: top is %s, want %s", from, c[SideTop], was)
			}
		}
	})

	t.Run("rotations permute, never duplicate", func(t *testing.T) {
		c := start.clone()
		c.rotateToTop(SideLeft)
		c.rotateToTop(SideBack)
		seen := map[Color]bool{}
		for _, col := range c {
			if seen[col] {
				t.Fatalf("color %s appears twice after rotations", col)
			}
			seen[col] = true
		}
	})
}

func TestColorCubeRotationConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  ColorCubeRotationConfig
		ok   bool
	}{
		{"defaults", DefaultColorCubeRotationConfig(), true},
		{"zero min", ColorCubeRotationConfig{MinRotations: 0, MaxRotations: 3, Size: 10}, false},
		{"min greater than max", ColorCubeRotationConfig{MinRotations: 4, MaxRotations: 2, Size: 10}, false},
		{"zero size", ColorCubeRotationConfig{MinRotations: 1, MaxRotations: 2, Size: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok != (err == nil) {
				t.Errorf("Validate = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestColorCubeRotationDeterminism(t *testing.T) {
	cfg := DefaultColorCubeRotationConfig()
	cfg.Seed = dataset.Seed(123)
	cfg.Size = 10

	d1, err := NewColorCubeRotation(cfg)
	if err != nil {
		t.Fatalf("NewColorCubeRotation: %v", err)
	}
	d2, err := NewColorCubeRotation(cfg)
	if err != nil {
		t.Fatalf("NewColorCubeRotation: %v", err)
	}
	for i := 0; i < cfg.Size; i++ {
		s1, _ := d1.Get(i)
		s2, _ := d2.Get(i)
		if !reflect.DeepEqual(s1, s2) {
			t.Errorf("index %d: samples differ", i)
		}
	}
}

// TestColorCubeRotationReplay rebuilds each sample's cube from its metadata
// and replays the recorded effective rotations; the narrated answer must
// fall out of the permutation laws.
func TestColorCubeRotationReplay(t *testing.T) {
	cfg := ColorCubeRotationConfig{MinRotations: 1, MaxRotations: 5, Seed: dataset.Seed(7), Size: 50}
	d, err := NewColorCubeRotation(cfg)
	if err != nil {
		t.Fatalf("NewColorCubeRotation: %v", err)
	}

	for i := 0; i < d.Size(); i++ {
		s, err := d.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}

		initial := s.Metadata["initial_state"].(map[string]any)
		c := make(cube, len(initial))
		for side, color := range initial {
			c[Side(side)] = Color(color.(string))
		}

		rotations := s.Metadata["rotations"].([]string)
		for _, r := range rotations {
			// Effective rotations never include the no-op.
			if Side(r) == SideTop {
				t.Fatalf("index %d: no-op rotation recorded", i)
			}
			c.rotateToTop(Side(r))
		}

		target := Side(s.Metadata["target_side"].(string))
		if got := string(c[target]); got != s.Answer {
			t.Errorf("index %d: replay gives %s at %s, answer says %s", i, got, target, s.Answer)
		}

		// Drawn count includes skipped no-ops, so it bounds the narrated
		// sequence from above.
		if n := s.Metadata["num_rotations"].(int); len(rotations) > n || n > cfg.MaxRotations || n < cfg.MinRotations {
			t.Errorf("index %d: drawn count %d, narrated %d", i, n, len(rotations))
		}
	}
}
