package markdowncmd

import (
	"context"
	"io/fs"
	"reflect"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/directory"
	"github.com/goliatone/go-langlink/internal/langlink"
	"github.com/goliatone/go-langlink/internal/markdown"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

func TestImportDirectoryHandler(t *testing.T) {
	registry, _ := content.NewTypeRegistry(content.ContentType{Name: "post", Public: true})
	svc, err := content.NewService(content.NewMemoryRepository(), registry)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	dir := directory.NewMemoryDirectory()
	importer := markdown.NewImporter(markdown.ImporterConfig{
		Content: svc,
		Writer:  langlink.NewLinkWriter(dir, nil),
	})
	files := fstest.MapFS{
		"en/one.md": {Data: []byte("---\ntitle: One\n---\n")},
		"es/uno.md": {Data: []byte("---\ntitle: Uno\ntranslation_of: ../en/one.md\n---\n")},
	}
	var opened string
	handler := NewImportDirectoryHandler(importer, func(root string) fs.FS {
		opened = root
		return files
	}, nil)

	err = handler.Execute(context.Background(), ImportDirectoryCommand{
		Directory:   "content",
		DefaultType: "post",
		Languages:   []string{"en", "es"},
		Recursive:   true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if opened != "content" {
		t.Fatalf("expected filesystem rooted at content, got %q", opened)
	}
	result := handler.LastResult()
	if result == nil || result.Linked() != 1 {
		t.Fatalf("expected one linked document, got %+v", result)
	}
	group, _ := dir.GetTranslationGroup(context.Background(), 1)
	if !reflect.DeepEqual(group, interfaces.TranslationGroup{"en": 1, "es": 2}) {
		t.Fatalf("unexpected group %v", group)
	}
}

func TestImportDirectoryCommandValidation(t *testing.T) {
	handler := NewImportDirectoryHandler(markdown.NewImporter(markdown.ImporterConfig{}), nil, nil)
	err := handler.Execute(context.Background(), ImportDirectoryCommand{Directory: "  "})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
