package testsupport

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var memoryDBCounter atomic.Int64

// MemoryDSN returns a shared-cache in-memory sqlite DSN unique to this process.
func MemoryDSN(prefix string) string {
	return fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", prefix, memoryDBCounter.Add(1))
}

// NewSQLiteMemoryDB opens a fresh in-memory sqlite database closed with the test.
func NewSQLiteMemoryDB(t testing.TB, prefix string) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", MemoryDSN(prefix))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqldb.Close() })
	return bun.NewDB(sqldb, sqlitedialect.New())
}
