package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, record any) error
	InsertIfAbsent(ctx context.Context, record any) (bool, error)
	UpdateWhere(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error)
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	GetAllWhere(ctx context.Context, entity any, query string, args ...any) error
}
