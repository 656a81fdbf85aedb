package app

import (
	"strings"
	"testing"
)

func TestParseCandidates(t *testing.T) {
	input := "find-file\topen a file\nfind-dired\n\n  \ngrep-buffer\t\n"
	got, err := ParseCandidates(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	if got[0].Value != "find-file" || got[0].Annotation != "open a file" {
		t.Fatalf("unexpected first candidate: %+v", got[0])
	}
	if got[1].Value != "find-dired" || got[1].Annotation != "" {
		t.Fatalf("unexpected second candidate: %+v", got[1])
	}
	if got[2].Value != "grep-buffer" || got[2].Annotation != "" {
		t.Fatalf("unexpected third candidate: %+v", got[2])
	}
}

func TestParseCandidatesEmpty(t *testing.T) {
	got, err := ParseCandidates(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestRunRejectsUnknownPlacement(t *testing.T) {
	err := Run(Config{Placement: "floating"})
	if err == nil || !strings.Contains(err.Error(), "resolve placement") {
		t.Fatalf("expected placement error, got %v", err)
	}
}
