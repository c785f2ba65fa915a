package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata block of an importable document.
// TranslationOf holds either a numeric item id or the path of another
// document in the same import.
type FrontMatter struct {
	Title         string         `yaml:"title"`
	Slug          string         `yaml:"slug"`
	Type          string         `yaml:"type"`
	Status        string         `yaml:"status"`
	Lang          *string        `yaml:"lang"`
	TranslationOf any            `yaml:"translation_of"`
	Custom        map[string]any `yaml:",inline"`
}

// Document is a parsed markdown file.
type Document struct {
	Path        string
	Language    string
	FrontMatter FrontMatter
	Body        []byte
	Checksum    []byte
}

// ParseFrontMatter splits source into metadata and markdown body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return meta, body, nil
}
