package models

import (
	"testing"

	"comment-pilot/apperrors"
)

func TestParseSentiment(t *testing.T) {
	for _, tag := range AllSentiments() {
		parsed, err := ParseSentiment(string(tag))
		if err != nil || parsed != tag {
			t.Fatalf("expected %q to parse, got %q err=%v", tag, parsed, err)
		}
		if parsed.Instruction() == "" {
			t.Fatalf("expected a prompt instruction for %q", tag)
		}
	}

	if _, err := ParseSentiment("sarcastic"); !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error for an unknown tag, got %v", err)
	}
}

func TestTemplateByID(t *testing.T) {
	for _, tmpl := range Templates() {
		found, ok := TemplateByID(tmpl.ID)
		if !ok || found.ID != tmpl.ID {
			t.Fatalf("expected to find template %q", tmpl.ID)
		}
	}
	if _, ok := TemplateByID("no-such-template"); ok {
		t.Fatal("expected an unknown id to be absent")
	}
}
