package faqmatch

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trims whitespace", in: "  Hello World  ", out: "hello world"},
		{name: "removes punctuation", in: "What's, the price?", out: "what s the price"},
		{name: "collapses runs", in: "multi   cam\t\tsetup", out: "multi cam setup"},
		{name: "keeps digits", in: "5-camera setup!", out: "5 camera setup"},
		{name: "empty input", in: "", out: ""},
		{name: "only punctuation", in: "?!...", out: ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.out {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.out, got)
		}
	}
}

func TestExpandSynonymsAppendsAlternates(t *testing.T) {
	got := ExpandSynonyms("can you stream our event")
	want := "can you stream our event streaming live stream broadcast broadcasting telecast"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestExpandSynonymsLeavesUnknownTokensAlone(t *testing.T) {
	if got := ExpandSynonyms("hello there"); got != "hello there" {
		t.Fatalf("expected passthrough got %q", got)
	}
}

func TestExpandSynonymsPreservesInputTokenOrder(t *testing.T) {
	got := ExpandSynonyms("camera stream")
	want := "camera stream cam cams setup streaming live stream broadcast broadcasting telecast"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}
