package corpus

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadKnownResource(t *testing.T) {
	text, err := Read(InTheYear2889)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(text) == 0 {
		t.Fatal("corpus is empty")
	}
	// The read is pure: a second read returns identical content.
	again, err := Read(InTheYear2889)
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if text != again {
		t.Error("repeated reads differ")
	}
}

func TestReadUnknownResource(t *testing.T) {
	if _, err := Read("no_such_file.txt"); err == nil {
		t.Fatal("expected error for unknown resource")
	}
}

func TestWords(t *testing.T) {
	got := Words("Think of the railroads -- of two centuries ago, in 2889!")
	want := []string{"Think", "of", "the", "railroads", "of", "two", "centuries", "ago", "in", "2889"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestWordsStableOrder(t *testing.T) {
	text, err := Read(InTheYear2889)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	a := Words(text)
	b := Words(text)
	if len(a) < 100 {
		t.Fatalf("corpus unexpectedly small: %d words", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("tokenization is not stable")
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("First piece. Second piece.  \n Third. ", ".")
	want := []string{"First piece", "Second piece", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %v, want %v", got, want)
	}
	for _, s := range got {
		if strings.TrimSpace(s) != s {
			t.Errorf("sentence %q not trimmed", s)
		}
	}
}
