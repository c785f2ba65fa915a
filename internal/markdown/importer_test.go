package markdown

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/directory"
	"github.com/goliatone/go-langlink/internal/langlink"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

func newImportFixture(t *testing.T, withDirectory bool) (*Importer, content.Service, *directory.MemoryDirectory) {
	t.Helper()
	registry, err := content.NewTypeRegistry(
		content.ContentType{Name: "post", Public: true},
		content.ContentType{Name: "page", Public: true},
	)
	if err != nil {
		t.Fatalf("NewTypeRegistry() error = %v", err)
	}
	svc, err := content.NewService(content.NewMemoryRepository(), registry)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	cfg := ImporterConfig{Content: svc}
	var dir *directory.MemoryDirectory
	if withDirectory {
		dir = directory.NewMemoryDirectory()
		cfg.Writer = langlink.NewLinkWriter(dir, nil)
	}
	return NewImporter(cfg), svc, dir
}

func TestImporterLinksTranslationsByPath(t *testing.T) {
	importer, _, dir := newImportFixture(t, true)
	ctx := context.Background()
	loader := NewLoader(testFS(), LoaderConfig{Languages: []string{"en", "fr", "de"}, Recursive: true})

	result, err := importer.ImportDirectory(ctx, loader, ".", ImportOptions{DefaultType: "post"})
	if err != nil {
		t.Fatalf("ImportDirectory() error = %v", err)
	}
	ids := map[string]int64{}
	for _, item := range result.Items {
		ids[item.Path] = item.ID
	}

	hello := interfaces.ItemID(ids["en/hello.md"])
	bonjour := interfaces.ItemID(ids["fr/bonjour.md"])
	group, _ := dir.GetTranslationGroup(ctx, hello)
	if !reflect.DeepEqual(group, interfaces.TranslationGroup{"en": hello, "fr": bonjour}) {
		t.Fatalf("unexpected group %v", group)
	}
	if lang, _ := dir.GetLanguage(ctx, bonjour); lang != "fr" {
		t.Fatalf("expected fr, got %q", lang)
	}
	if result.Linked() < 1 {
		t.Fatalf("expected at least one linked document, got %d", result.Linked())
	}
}

func TestImporterNumericReference(t *testing.T) {
	importer, _, dir := newImportFixture(t, true)
	ctx := context.Background()
	docs := []*Document{
		{Path: "a.md", Language: "en", FrontMatter: FrontMatter{Title: "A"}},
		{Path: "b.md", Language: "es", FrontMatter: FrontMatter{Title: "B", TranslationOf: 1}},
		{Path: "c.md", Language: "it", FrontMatter: FrontMatter{Title: "C", TranslationOf: "missing.md"}},
	}

	result, err := importer.ImportDocuments(ctx, docs, ImportOptions{DefaultType: "post"})
	if err != nil {
		t.Fatalf("ImportDocuments() error = %v", err)
	}
	if result.Items[1].Link != langlink.OutcomeLinked {
		t.Fatalf("expected numeric reference to link, got %s", result.Items[1].Link)
	}
	if result.Items[2].Link != langlink.OutcomeInvalidTarget {
		t.Fatalf("expected unresolved path to be an invalid target, got %s", result.Items[2].Link)
	}
	group, _ := dir.GetTranslationGroup(ctx, 1)
	if !reflect.DeepEqual(group, interfaces.TranslationGroup{"en": 1, "es": 2}) {
		t.Fatalf("unexpected group %v", group)
	}
}

func TestImporterWithoutDirectoryStillCreatesItems(t *testing.T) {
	importer, svc, _ := newImportFixture(t, false)
	ctx := context.Background()
	docs := []*Document{
		{Path: "a.md", Language: "en", FrontMatter: FrontMatter{Title: "A"}},
		{Path: "b.md", Language: "fr", FrontMatter: FrontMatter{Title: "B", TranslationOf: "a.md"}},
	}

	result, err := importer.ImportDocuments(ctx, docs, ImportOptions{DefaultType: "post"})
	if err != nil {
		t.Fatalf("ImportDocuments() error = %v", err)
	}
	for _, item := range result.Items {
		if item.Link != langlink.OutcomeNotRequested {
			t.Fatalf("expected no link attempts, got %s", item.Link)
		}
	}
	_, total, _ := svc.List(ctx, content.ListOptions{Type: "post"})
	if total != 2 {
		t.Fatalf("expected 2 items, got %d", total)
	}
}

func TestImporterCollectsCreateErrors(t *testing.T) {
	importer, _, _ := newImportFixture(t, true)
	docs := []*Document{
		{Path: "untyped.md", FrontMatter: FrontMatter{Title: "X"}},
		{Path: "event.md", FrontMatter: FrontMatter{Title: "Y", Type: "event"}},
	}

	result, err := importer.ImportDocuments(context.Background(), docs, ImportOptions{})
	if !errors.Is(err, ErrContentTypeMissing) || !errors.Is(err, content.ErrContentTypeRequired) {
		t.Fatalf("expected both create errors, got %v", err)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(result.Errors))
	}
}

func TestImporterRequiresContentService(t *testing.T) {
	if _, err := NewImporter(ImporterConfig{}).ImportDocuments(context.Background(), nil, ImportOptions{}); !errors.Is(err, ErrContentServiceRequired) {
		t.Fatalf("expected ErrContentServiceRequired, got %v", err)
	}
}
