package profanity

import (
	"reflect"
	"testing"
)

func TestFilter_CleanText(t *testing.T) {
	f := NewFilter()

	res := f.Check("This portfolio is great, keep up the good work!")
	if res.HasProfanity {
		t.Errorf("expected clean text, got words=%v", res.Words)
	}
	if res.Words == nil || len(res.Words) != 0 {
		t.Errorf("expected empty words slice, got %v", res.Words)
	}
}

func TestFilter_DetectsWords(t *testing.T) {
	f := NewFilter()

	res := f.Check("you fuck idiot")
	if !res.HasProfanity {
		t.Fatal("expected profanity to be detected")
	}
	if !reflect.DeepEqual(res.Words, []string{"fuck", "idiot"}) {
		t.Errorf("expected [fuck idiot], got %v", res.Words)
	}
}

func TestFilter_CaseInsensitiveAndDeduplicated(t *testing.T) {
	f := NewFilter()

	res := f.Check("FUCK this, Fuck that, fuck everything")
	if !res.HasProfanity {
		t.Fatal("expected profanity to be detected")
	}
	if !reflect.DeepEqual(res.Words, []string{"fuck"}) {
		t.Errorf("expected single lowercase entry, got %v", res.Words)
	}
}

func TestFilter_WholeWordsOnly(t *testing.T) {
	f := NewFilter()

	// "stupidity" contains "stupid" but is not a whole-word match.
	res := f.Check("a study on the stupidity of crowds")
	if res.HasProfanity {
		t.Errorf("substring inside a longer word should not match, got %v", res.Words)
	}
}
