package moderation

import "testing"

func TestClassifyEmptyAllowed(t *testing.T) {
	if d := Classify(""); !d.Allowed || d.Reason != "" {
		t.Fatalf("empty text should be allowed, got %+v", d)
	}
}

func TestClassifyCleanTextAllowed(t *testing.T) {
	inputs := []string{
		"hello",
		"good morning everyone",
		"what a lovely day",
		"see you at 7",
	}

	for _, in := range inputs {
		if d := Classify(in); !d.Allowed {
			t.Fatalf("Classify(%q) blocked with %q, want allowed", in, d.Reason)
		}
	}
}

func TestClassifyCategoryReasons(t *testing.T) {
	tests := []struct {
		text   string
		reason string
	}{
		{"crap", ReasonProfanity},
		{"what a dumbass move", ReasonProfanity},
		{"sex", ReasonSexual},
		{"fuck this", ReasonSexual},
		{"fag", ReasonHate},
		{"nigga", ReasonHate},
	}

	for _, tt := range tests {
		d := Classify(tt.text)
		if d.Allowed {
			t.Fatalf("Classify(%q) allowed, want blocked with %q", tt.text, tt.reason)
		}
		if d.Reason != tt.reason {
			t.Fatalf("Classify(%q) reason = %q, want %q", tt.text, d.Reason, tt.reason)
		}
	}
}

func TestClassifyCategoryOrder(t *testing.T) {
	// "bullshit fuck" hits both profanity and sexual; profanity is checked
	// first and alone determines the reason.
	d := Classify("bullshit fuck")
	if d.Allowed || d.Reason != ReasonProfanity {
		t.Fatalf("expected profanity reason for mixed hit, got %+v", d)
	}
}

func TestClassifyVerbatimListWords(t *testing.T) {
	lists := []struct {
		words  []string
		reason string
	}{
		{profanityWords, ReasonProfanity},
		{sexualWords, ReasonSexual},
		{slurWords, ReasonHate},
	}

	for _, l := range lists {
		for _, w := range l.words {
			d := Classify(w)
			if d.Allowed {
				t.Fatalf("Classify(%q) allowed, want blocked", w)
			}
			// Overlapping substrings can shift the reason across categories
			// (e.g. "goddamned" contains "damned"); any known code is fine.
			if d.Reason != ReasonProfanity && d.Reason != ReasonSexual && d.Reason != ReasonHate {
				t.Fatalf("Classify(%q) returned unknown reason %q", w, d.Reason)
			}
		}
	}
}

func TestClassifyLeetBypassBlocked(t *testing.T) {
	tests := []struct {
		text   string
		reason string
	}{
		{"fuck", ReasonSexual},
		{"f*u*c*k", ReasonSexual},
		{"5ex", ReasonSexual},
		{"$ex", ReasonSexual},
		{"cr4p", ReasonProfanity},
		{"b!tch", ReasonProfanity},
		{"f4g", ReasonHate},
	}

	for _, tt := range tests {
		d := Classify(tt.text)
		if d.Allowed {
			t.Fatalf("Classify(%q) allowed, want blocked", tt.text)
		}
		if d.Reason != tt.reason {
			t.Fatalf("Classify(%q) reason = %q, want %q", tt.text, d.Reason, tt.reason)
		}
	}
}

func TestClassifyDiacriticBypassBlocked(t *testing.T) {
	tests := []struct {
		text   string
		reason string
	}{
		{"fück", ReasonSexual},
		{"śéx", ReasonSexual},
		{"bïtch", ReasonProfanity},
	}

	for _, tt := range tests {
		d := Classify(tt.text)
		if d.Allowed || d.Reason != tt.reason {
			t.Fatalf("Classify(%q) = %+v, want blocked with %q", tt.text, d, tt.reason)
		}
	}
}

func TestClassifyStretchedSpellingBlocked(t *testing.T) {
	d := Classify("fuuuck")
	if d.Allowed || d.Reason != ReasonSexual {
		t.Fatalf("Classify(%q) = %+v, want blocked with %q", "fuuuck", d, ReasonSexual)
	}
}

func TestClassifySubstringContainment(t *testing.T) {
	// Deliberately broad: a listed word anywhere inside a longer word is a
	// hit, false positives included.
	d := Classify("classic")
	if d.Allowed || d.Reason != ReasonProfanity {
		t.Fatalf("Classify(%q) = %+v, want blocked with %q", "classic", d, ReasonProfanity)
	}
}
