package markdown

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/langlink"
	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

var (
	ErrContentServiceRequired = errors.New("markdown importer: content service is required")
	ErrContentTypeMissing     = errors.New("markdown importer: document has no content type")
)

// ImporterConfig encapsulates dependencies required to persist documents.
// Writer may be nil when no language directory is available; documents are
// then imported without language metadata.
type ImporterConfig struct {
	Content content.Service
	Writer  *langlink.LinkWriter
	Logger  interfaces.Logger
}

// ImportOptions supplies defaults for documents missing front matter keys.
type ImportOptions struct {
	DefaultType   string
	DefaultStatus string
}

// ImportedItem reports what happened to one document.
type ImportedItem struct {
	Path     string
	ID       int64
	Type     string
	Slug     string
	Language string
	Link     langlink.LinkOutcome
	Err      error
}

// ImportResult summarises an import run.
type ImportResult struct {
	Items  []ImportedItem
	Errors []error
}

// Linked counts documents whose translation link was saved.
func (r *ImportResult) Linked() int {
	count := 0
	for _, item := range r.Items {
		if item.Link == langlink.OutcomeLinked {
			count++
		}
	}
	return count
}

// Importer creates items from documents and links translations.
type Importer struct {
	content content.Service
	writer  *langlink.LinkWriter
	logger  interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	return &Importer{
		content: cfg.Content,
		writer:  cfg.Writer,
		logger:  logging.Ensure(cfg.Logger),
	}
}

// ImportDirectory loads dir through loader and imports the documents.
func (i *Importer) ImportDirectory(ctx context.Context, loader *Loader, dir string, opts ImportOptions) (*ImportResult, error) {
	docs, err := loader.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}
	return i.ImportDocuments(ctx, docs, opts)
}

// ImportDocuments creates every document first, then applies language and
// translation links so translation_of may reference any document of the batch.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*Document, opts ImportOptions) (*ImportResult, error) {
	if i.content == nil {
		return nil, ErrContentServiceRequired
	}

	result := &ImportResult{}
	byPath := make(map[string]int64, len(docs))

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		item := ImportedItem{Path: doc.Path, Language: doc.Language, Link: langlink.OutcomeNotRequested}
		created, err := i.create(ctx, doc, opts)
		if err != nil {
			item.Err = fmt.Errorf("%s: %w", doc.Path, err)
			result.Errors = append(result.Errors, item.Err)
			i.logger.Warn("markdown.import.failed", "path", doc.Path, "error", err)
		} else {
			item.ID = created.ID
			item.Type = created.Type
			item.Slug = created.Slug
			byPath[doc.Path] = created.ID
			logging.WithItem(i.logger, created.ID, created.Type).Debug("markdown.import.created", "path", doc.Path)
		}
		result.Items = append(result.Items, item)
	}

	if i.writer == nil {
		i.logger.Info("markdown.import.links_skipped", "reason", "directory_unavailable")
		return result, errors.Join(result.Errors...)
	}

	for idx, doc := range docs {
		if doc == nil || result.Items[idx].ID == 0 {
			continue
		}
		params := i.linkParams(doc, byPath)
		if !params.HasLang && !params.HasTranslationOf {
			continue
		}
		applied := i.writer.Apply(ctx, interfaces.ItemID(result.Items[idx].ID), params, true)
		result.Items[idx].Link = applied.Link
		if err := applied.Err(); err != nil {
			result.Items[idx].Err = fmt.Errorf("%s: %w", doc.Path, err)
			result.Errors = append(result.Errors, result.Items[idx].Err)
		}
	}

	i.logger.Info("markdown.import.completed",
		"documents", len(docs),
		"linked", result.Linked(),
		"errors", len(result.Errors),
	)
	return result, errors.Join(result.Errors...)
}

func (i *Importer) create(ctx context.Context, doc *Document, opts ImportOptions) (*content.Item, error) {
	meta := doc.FrontMatter
	contentType := firstNonEmpty(meta.Type, opts.DefaultType)
	if contentType == "" {
		return nil, ErrContentTypeMissing
	}
	title := strings.TrimSpace(meta.Title)
	if title == "" && strings.TrimSpace(meta.Slug) == "" {
		title = strings.TrimSuffix(path.Base(doc.Path), path.Ext(doc.Path))
	}
	return i.content.Create(ctx, content.CreateItemRequest{
		Type:   contentType,
		Title:  title,
		Slug:   meta.Slug,
		Body:   string(doc.Body),
		Status: firstNonEmpty(meta.Status, opts.DefaultStatus),
	})
}

// linkParams resolves translation_of paths against the batch before handing
// the value to the writer's numeric parsing.
func (i *Importer) linkParams(doc *Document, byPath map[string]int64) langlink.WriteParams {
	params := langlink.WriteParams{}
	if doc.Language != "" {
		params.Lang = doc.Language
		params.HasLang = true
	}
	raw := doc.FrontMatter.TranslationOf
	if raw == nil {
		return params
	}
	params.HasTranslationOf = true
	params.TranslationOf = raw
	if ref, ok := raw.(string); ok {
		if id, found := resolveReference(doc.Path, ref, byPath); found {
			params.TranslationOf = id
		}
	}
	return params
}

func resolveReference(from, ref string, byPath map[string]int64) (int64, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, false
	}
	candidates := []string{
		cleanPath(path.Join(path.Dir(from), ref)),
		cleanPath(ref),
	}
	for _, candidate := range candidates {
		if id, ok := byPath[candidate]; ok {
			return id, true
		}
	}
	return 0, false
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
