// Package tx carries a per-request transaction runner through the context,
// so handlers can group repository writes without knowing the database.
package tx

import (
	"context"
	"net/http"
)

type key string

const KeyTx = key("tx")

// DbRepo is the slice of the repository the middleware needs.
type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// TxMiddlewareHTTP places the transaction runner into the request context.
func TxMiddlewareHTTP(repo DbRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a single transaction when a runner is present in
// ctx, and directly otherwise.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.DbRepo == nil {
		return cb(ctx)
	}
	return t.DbRepo.WithTx(ctx, cb)
}
