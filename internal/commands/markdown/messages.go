package markdowncmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const importDirectoryMessageType = "langlink.markdown.import_directory"

// ImportDirectoryCommand imports the markdown documents under Directory.
type ImportDirectoryCommand struct {
	// Directory is the filesystem path to load documents from.
	Directory string `json:"directory"`
	// DefaultType applies to documents without a type key.
	DefaultType string `json:"default_type,omitempty"`
	// DefaultStatus applies to documents without a status key.
	DefaultStatus string `json:"default_status,omitempty"`
	// DefaultLanguage applies to documents with no lang key or language directory.
	DefaultLanguage string `json:"default_language,omitempty"`
	// Languages lists tags recognised as leading directories.
	Languages []string `json:"languages,omitempty"`
	Recursive bool     `json:"recursive,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("langlink.markdown.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
