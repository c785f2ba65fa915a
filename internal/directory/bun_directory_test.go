package directory

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-langlink/pkg/interfaces"
	"github.com/goliatone/go-langlink/pkg/testsupport"
)

func TestBunDirectoryContract(t *testing.T) {
	runDirectoryContract(t, func(t *testing.T) interfaces.LanguageDirectory {
		return NewBunDirectory(newTestDB(t))
	})
}

func TestBunDirectoryPrunesEmptyGroups(t *testing.T) {
	db := newTestDB(t)
	dir := NewBunDirectory(db)
	ctx := context.Background()

	_ = dir.SaveTranslationGroup(ctx, interfaces.TranslationGroup{"en": 1})
	_ = dir.SaveTranslationGroup(ctx, interfaces.TranslationGroup{"en": 2})
	_ = dir.SaveTranslationGroup(ctx, interfaces.TranslationGroup{"en": 2, "fr": 1})

	count, err := db.NewSelect().Model((*TranslationGroupRecord)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count groups: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single group after merge, got %d", count)
	}
}

func TestBunDirectoryUsesClock(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	db := newTestDB(t)
	dir := NewBunDirectory(db, WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	if err := dir.SetLanguage(ctx, 9, "en"); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	var row ItemLanguage
	if err := db.NewSelect().Model(&row).Where("item_id = ?", 9).Scan(ctx); err != nil {
		t.Fatalf("load row: %v", err)
	}
	if !row.UpdatedAt.Equal(fixed) {
		t.Fatalf("expected updated_at %s, got %s", fixed, row.UpdatedAt)
	}
}

func TestBunDirectoryWithoutDatabase(t *testing.T) {
	dir := NewBunDirectory(nil)
	if dir.Available() {
		t.Fatal("expected directory without db to be unavailable")
	}
	if _, err := dir.GetLanguage(context.Background(), 1); err != ErrDatabaseRequired {
		t.Fatalf("expected ErrDatabaseRequired, got %v", err)
	}
	if err := Migrate(context.Background(), nil); err != ErrDatabaseRequired {
		t.Fatalf("expected ErrDatabaseRequired from Migrate, got %v", err)
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db := testsupport.NewSQLiteMemoryDB(t, "directory_test")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
