package langlink

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

func TestExposerLanguage(t *testing.T) {
	dir := newFakeDirectory()
	dir.languages[2] = "fr"
	exposer := NewExposer(dir, nil)
	ctx := context.Background()

	if got := exposer.Language(ctx, 1); got != nil {
		t.Fatalf("expected nil language for unassigned item, got %q", *got)
	}
	got := exposer.Language(ctx, 2)
	if got == nil || *got != "fr" {
		t.Fatalf("expected fr, got %v", got)
	}

	dir.getLanguageErr = errors.New("boom")
	if got := exposer.Language(ctx, 2); got != nil {
		t.Fatalf("expected lookup failure to read as nil, got %q", *got)
	}
}

func TestExposerTranslations(t *testing.T) {
	dir := newFakeDirectory()
	dir.groups[20] = interfaces.TranslationGroup{"en": 20, "fr": 10}
	exposer := NewExposer(dir, nil)
	ctx := context.Background()

	empty := exposer.Translations(ctx, 99)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil group, got %#v", empty)
	}
	encoded, _ := json.Marshal(empty)
	if string(encoded) != "{}" {
		t.Fatalf("expected {} encoding, got %s", encoded)
	}

	group := exposer.Translations(ctx, 20)
	if len(group) != 2 || group["en"] != 20 || group["fr"] != 10 {
		t.Fatalf("unexpected group %v", group)
	}

	group["de"] = 30
	if _, ok := dir.groups[20]["de"]; ok {
		t.Fatal("expected exposer to return a copy of directory state")
	}

	dir.getGroupErr = errors.New("boom")
	if got := exposer.Translations(ctx, 20); got == nil || len(got) != 0 {
		t.Fatalf("expected lookup failure to read as empty, got %#v", got)
	}
}

func TestExposerFieldsEncodeNullAndObject(t *testing.T) {
	dir := newFakeDirectory()
	exposer := NewExposer(dir, nil)
	fields := exposer.Fields()
	if len(fields) != 2 || fields[0].Name != FieldLanguage || fields[1].Name != FieldTranslations {
		t.Fatalf("unexpected fields %+v", fields)
	}

	item := interfaces.ItemRef{ID: 5, Type: "post"}
	payload := map[string]any{
		fields[0].Name: fields[0].Get(context.Background(), item),
		fields[1].Name: fields[1].Get(context.Background(), item),
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `{"lang":null,"translations":{}}` {
		t.Fatalf("unexpected encoding %s", encoded)
	}

	if fields[0].Schema["description"] != "Language slug (e.g., en, fr)" {
		t.Fatalf("unexpected lang schema %v", fields[0].Schema)
	}
	if fields[1].Schema["type"] != "object" {
		t.Fatalf("unexpected translations schema %v", fields[1].Schema)
	}
}

func TestExposerReadsHaveNoSideEffects(t *testing.T) {
	dir := newFakeDirectory()
	exposer := NewExposer(dir, nil)
	exposer.Language(context.Background(), 1)
	exposer.Translations(context.Background(), 1)
	if len(dir.mutations()) != 0 {
		t.Fatalf("expected no mutations, got %v", dir.mutations())
	}
}
