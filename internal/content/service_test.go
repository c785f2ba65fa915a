package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-langlink/pkg/interfaces"
	"github.com/goliatone/go-langlink/pkg/testsupport"
)

type upperParser struct{}

func (upperParser) Parse(markdown []byte) ([]byte, error) {
	return []byte("<p>" + strings.ToUpper(string(markdown)) + "</p>"), nil
}

func (p upperParser) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return p.Parse(markdown)
}

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"bun":    NewBunRepository(newTestDB(t)),
	}
}

func newTestService(t *testing.T, repo Repository, opts ...ServiceOption) Service {
	t.Helper()
	registry, err := NewTypeRegistry(
		ContentType{Name: "post", Public: true},
		ContentType{Name: "page", Public: true},
		ContentType{Name: "revision"},
	)
	if err != nil {
		t.Fatalf("NewTypeRegistry() error = %v", err)
	}
	svc, err := NewService(repo, registry, opts...)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestServiceCreateDerivesSlugAndStatus(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
			svc := newTestService(t, repo, WithClock(func() time.Time { return fixed }))
			ctx := context.Background()

			item, err := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "Hello World", Body: "hi"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if item.ID == 0 || item.Slug != "hello-world" || item.Status != StatusDraft {
				t.Fatalf("unexpected item %+v", item)
			}
			if !item.CreatedAt.Equal(fixed) {
				t.Fatalf("expected created_at %s, got %s", fixed, item.CreatedAt)
			}

			second, err := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "Hello World"})
			if err != nil {
				t.Fatalf("Create() duplicate title error = %v", err)
			}
			if second.Slug != "hello-world-2" {
				t.Fatalf("expected suffixed slug, got %q", second.Slug)
			}

			if _, err := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "Other", Slug: "hello-world"}); !errors.Is(err, ErrSlugExists) {
				t.Fatalf("expected ErrSlugExists for explicit slug, got %v", err)
			}

			page, err := svc.Create(ctx, CreateItemRequest{Type: "page", Title: "Hello World"})
			if err != nil || page.Slug != "hello-world" {
				t.Fatalf("expected slugs to be unique per type, got %+v %v", page, err)
			}
		})
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := newTestService(t, NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateItemRequest{Type: "event", Title: "x"}); !errors.Is(err, ErrContentTypeRequired) {
		t.Fatalf("expected ErrContentTypeRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateItemRequest{Type: "post"}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "x", Status: "pending"}); !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected schema validation error, got %v", err)
	}
}

func TestServiceGetRendersMarkdown(t *testing.T) {
	svc := newTestService(t, NewMemoryRepository(), WithMarkdownParser(upperParser{}))
	ctx := context.Background()

	created, _ := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "Hello", Body: "body"})
	if created.Rendered != "<p>BODY</p>" {
		t.Fatalf("expected rendered body on create, got %q", created.Rendered)
	}
	item, err := svc.Get(ctx, "post", created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if item.Rendered != "<p>BODY</p>" {
		t.Fatalf("expected rendered body, got %q", item.Rendered)
	}
}

func TestServiceScopesItemsToType(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t, repo)
			ctx := context.Background()

			post, _ := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "A"})
			_, _ = svc.Create(ctx, CreateItemRequest{Type: "page", Title: "B"})
			_, _ = svc.Create(ctx, CreateItemRequest{Type: "post", Title: "C"})

			if _, err := svc.Get(ctx, "page", post.ID); !IsNotFound(err) {
				t.Fatalf("expected post to be missing under page, got %v", err)
			}
			if err := svc.Delete(ctx, "page", post.ID); !IsNotFound(err) {
				t.Fatalf("expected delete under wrong type to fail, got %v", err)
			}

			items, total, err := svc.List(ctx, ListOptions{Type: "post", Limit: 1})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if total != 2 || len(items) != 1 || items[0].ID != post.ID {
				t.Fatalf("unexpected page of items: total=%d items=%v", total, items)
			}
			items, _, _ = svc.List(ctx, ListOptions{Type: "post", Limit: 1, Offset: 1})
			if len(items) != 1 || items[0].Title != "C" {
				t.Fatalf("unexpected second page %v", items)
			}
		})
	}
}

func TestServiceUpdateAndDelete(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t, repo)
			ctx := context.Background()

			item, _ := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "Draft"})
			other, _ := svc.Create(ctx, CreateItemRequest{Type: "post", Title: "Taken"})

			title := "Final"
			status := "Published"
			updated, err := svc.Update(ctx, UpdateItemRequest{Type: "post", ID: item.ID, Title: &title, Status: &status})
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if updated.Title != "Final" || updated.Status != StatusPublished || updated.Slug != "draft" {
				t.Fatalf("unexpected update result %+v", updated)
			}

			clash := other.Slug
			if _, err := svc.Update(ctx, UpdateItemRequest{Type: "post", ID: item.ID, Slug: &clash}); !errors.Is(err, ErrSlugExists) {
				t.Fatalf("expected ErrSlugExists, got %v", err)
			}

			if err := svc.Delete(ctx, "post", item.ID); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := svc.Get(ctx, "post", item.ID); !IsNotFound(err) {
				t.Fatalf("expected deleted item to be missing, got %v", err)
			}
			if _, err := svc.Update(ctx, UpdateItemRequest{Type: "post", ID: 0}); !errors.Is(err, ErrItemIDRequired) {
				t.Fatalf("expected ErrItemIDRequired, got %v", err)
			}
		})
	}
}

func TestNewServiceRequiresRepository(t *testing.T) {
	if _, err := NewService(nil, nil); !errors.Is(err, ErrRepositoryRequired) {
		t.Fatalf("expected ErrRepositoryRequired, got %v", err)
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db := testsupport.NewSQLiteMemoryDB(t, "content_test")
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
