package langlink

import (
	markdowncmd "github.com/goliatone/go-langlink/internal/commands/markdown"
	"github.com/goliatone/go-langlink/internal/runtimeconfig"
)

var (
	ErrStorageProviderUnknown = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDialectUnknown  = runtimeconfig.ErrStorageDialectUnknown
	ErrStorageDSNRequired     = runtimeconfig.ErrStorageDSNRequired
	ErrContentTypesRequired   = runtimeconfig.ErrContentTypesRequired
	ErrContentTypeNameInvalid = runtimeconfig.ErrContentTypeNameInvalid
	ErrContentTypeDuplicate   = runtimeconfig.ErrContentTypeDuplicate
	ErrBasePathInvalid        = runtimeconfig.ErrBasePathInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	Features          = runtimeconfig.Features
	StorageConfig     = runtimeconfig.StorageConfig
	RESTConfig        = runtimeconfig.RESTConfig
	ContentConfig     = runtimeconfig.ContentConfig
	ContentTypeConfig = runtimeconfig.ContentTypeConfig
	MarkdownConfig    = runtimeconfig.MarkdownConfig
	LoggingConfig     = runtimeconfig.LoggingConfig

	ImportDirectoryCommand = markdowncmd.ImportDirectoryCommand
)

// DefaultConfig returns the default module configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
