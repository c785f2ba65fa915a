package markdown

import (
	"context"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en/hello.md": {Data: []byte("---\ntitle: Hello\n---\nHello body\n")},
		"fr/bonjour.md": {Data: []byte(
			"---\ntitle: Bonjour\ntranslation_of: ../en/hello.md\n---\nCorps\n",
		)},
		"de/hallo.md": {Data: []byte("---\ntitle: Hallo\nlang: de-AT\ntranslation_of: 1\n---\n")},
		"notes.md":    {Data: []byte("---\ntitle: Notes\ntype: page\n---\n")},
		"readme.txt":  {Data: []byte("ignored")},
	}
}

func TestLoaderDetectsLanguages(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{
		Languages:       []string{"en", "fr", "de"},
		DefaultLanguage: "en",
		Recursive:       true,
	})

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}
	want := map[string]string{
		"de/hallo.md":   "de-AT",
		"en/hello.md":   "en",
		"fr/bonjour.md": "fr",
		"notes.md":      "en",
	}
	if len(docs) != len(want) {
		t.Fatalf("expected %d documents, got %d", len(want), len(docs))
	}
	for _, doc := range docs {
		if doc.Language != want[doc.Path] {
			t.Fatalf("%s: expected language %q, got %q", doc.Path, want[doc.Path], doc.Language)
		}
		if len(doc.Checksum) == 0 {
			t.Fatalf("%s: expected checksum", doc.Path)
		}
	}
	if docs[0].Path != "de/hallo.md" {
		t.Fatalf("expected documents sorted by path, got %s first", docs[0].Path)
	}
}

func TestLoaderNonRecursive(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})
	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}
	if len(docs) != 1 || docs[0].Path != "notes.md" {
		t.Fatalf("expected only the root document, got %v", docs)
	}
	if docs[0].FrontMatter.Type != "page" {
		t.Fatalf("expected front matter type, got %q", docs[0].FrontMatter.Type)
	}
}

func TestLoaderReadsFrontMatterReferences(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})
	doc, err := loader.LoadFile(context.Background(), "/fr/bonjour.md")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if doc.FrontMatter.TranslationOf != "../en/hello.md" {
		t.Fatalf("unexpected translation_of %v", doc.FrontMatter.TranslationOf)
	}
	if string(doc.Body) != "Corps\n" {
		t.Fatalf("unexpected body %q", doc.Body)
	}
}
