// Package content is the reference host repository: typed items with a
// slug, a markdown body and a status, persisted in memory or through bun.
// Content types carry the public flag that decides whether language fields
// and link hooks are registered for them.
package content
