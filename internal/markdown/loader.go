package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// LoaderConfig configures document discovery.
type LoaderConfig struct {
	// Languages lists tags recognised as a leading directory (en/post.md).
	Languages []string
	// DefaultLanguage applies when neither front matter nor path names one.
	DefaultLanguage string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns files of an fs.FS into Documents.
type Loader struct {
	fs              fs.FS
	languages       []string
	defaultLanguage string
	pattern         string
	recursive       bool
}

// NewLoader constructs a Loader over filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	return &Loader{
		fs:              filesystem,
		languages:       append([]string(nil), cfg.Languages...),
		defaultLanguage: strings.TrimSpace(cfg.DefaultLanguage),
		pattern:         pattern,
		recursive:       cfg.Recursive,
	}
}

// LoadFile reads and parses a single document.
func (l *Loader) LoadFile(ctx context.Context, name string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = cleanPath(name)

	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", name, err)
	}
	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("markdown loader %s: %w", name, err)
	}
	sum := sha256.Sum256(data)
	return &Document{
		Path:        name,
		Language:    l.detectLanguage(name, meta),
		FrontMatter: meta,
		Body:        body,
		Checksum:    sum[:],
	}, nil
}

// LoadDirectory parses every matching file under dir, ordered by path.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Document, error) {
	root := cleanPath(dir)
	var docs []*Document
	err := fs.WalkDir(l.fs, root, func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if name != root && !l.recursive {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if match, err := path.Match(l.pattern, path.Base(name)); err != nil || !match {
			return nil
		}
		doc, err := l.LoadFile(ctx, name)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(docs, func(a, b *Document) int {
		return strings.Compare(a.Path, b.Path)
	})
	return docs, nil
}

// detectLanguage prefers front matter, then a leading language directory,
// then the default.
func (l *Loader) detectLanguage(name string, meta FrontMatter) string {
	if meta.Lang != nil {
		return strings.TrimSpace(*meta.Lang)
	}
	first, _, _ := strings.Cut(name, "/")
	if first != name && slices.Contains(l.languages, first) {
		return first
	}
	return l.defaultLanguage
}

func cleanPath(name string) string {
	name = path.Clean(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}
