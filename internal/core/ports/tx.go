package ports

import "context"

// TxRunner executes fn inside a single store transaction. Every repository
// call made with the callback's context joins the transaction; if fn returns
// an error the transaction is aborted and nothing is persisted.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
