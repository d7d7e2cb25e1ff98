// Package repo holds the ent-generated data access layer. The generated
// tree is not committed; run `go generate ./internal/repo` after touching
// anything under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert,sql/lock ../schema
