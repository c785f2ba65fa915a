package directory

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Migrate creates the directory tables when missing.
func Migrate(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return ErrDatabaseRequired
	}
	models := []any{
		(*ItemLanguage)(nil),
		(*TranslationGroupRecord)(nil),
		(*GroupMember)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("directory: create table for %T: %w", model, err)
		}
	}
	return nil
}
