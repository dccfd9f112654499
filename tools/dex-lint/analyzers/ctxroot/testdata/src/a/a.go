package a

import "context"

func bad() context.Context {
	return context.Background() // want "context.Background outside package main"
}

func badTODO() {
	ctx := context.TODO() // want "context.TODO outside package main"
	_ = ctx
}

func good(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	_ = cancel
	return ctx
}
