package langlink_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	langlink "github.com/goliatone/go-langlink"
	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/di"
	"github.com/goliatone/go-langlink/internal/directory"
	"github.com/goliatone/go-langlink/pkg/interfaces"
	"github.com/goliatone/go-langlink/pkg/testsupport"
)

func newModule(t *testing.T, opts ...di.Option) *langlink.Module {
	t.Helper()
	cfg := langlink.DefaultConfig()
	cfg.Features.Logger = false
	module, err := langlink.New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	return module
}

func TestConfigValidateRejectsUnknownStorage(t *testing.T) {
	cfg := langlink.DefaultConfig()
	cfg.Storage.Provider = "redis"
	if err := cfg.Validate(); !errors.Is(err, langlink.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
	if _, err := langlink.New(cfg); !errors.Is(err, langlink.ErrStorageProviderUnknown) {
		t.Fatalf("expected New to surface validation error, got %v", err)
	}
}

func TestModuleServesLanguageFields(t *testing.T) {
	module := newModule(t)

	body, _ := json.Marshal(map[string]any{"title": "Hello", "lang": "en"})
	req := httptest.NewRequest(http.MethodPost, "/api/post", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	module.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", rec.Code, rec.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created["lang"] != "en" {
		t.Fatalf("expected lang en, got %v", created["lang"])
	}

	id := int64(created["id"].(float64))
	lang, err := module.Directory().GetLanguage(context.Background(), interfaces.ItemID(id))
	if err != nil || lang != "en" {
		t.Fatalf("expected directory to hold en, got %q (%v)", lang, err)
	}
}

func TestModuleImportMarkdownLinksTranslations(t *testing.T) {
	dir := directory.NewMemoryDirectory()
	module := newModule(t, di.WithDirectory(dir))

	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"en/hello.md":   "---\ntitle: Hello\n---\nHello world\n",
		"fr/bonjour.md": "---\ntitle: Bonjour\ntranslation_of: ../en/hello.md\n---\nBonjour\n",
	})

	result, err := module.ImportMarkdown(context.Background(), langlink.ImportDirectoryCommand{
		Directory:   root,
		DefaultType: "post",
		Languages:   []string{"en", "fr"},
		Recursive:   true,
	})
	if err != nil {
		t.Fatalf("ImportMarkdown() error = %v", err)
	}
	if result == nil || len(result.Items) != 2 || result.Linked() != 1 {
		t.Fatalf("unexpected import result %+v", result)
	}

	items, total, err := module.Content().List(context.Background(), content.ListOptions{Type: "post"})
	if err != nil || total != 2 {
		t.Fatalf("expected two posts, got %d (%v)", total, err)
	}
	group, err := dir.GetTranslationGroup(context.Background(), interfaces.ItemID(items[0].ID))
	if err != nil || len(group) != 2 {
		t.Fatalf("expected a two-language group, got %v (%v)", group, err)
	}
}
