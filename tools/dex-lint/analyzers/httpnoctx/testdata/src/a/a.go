package a

import (
	"context"
	"net/http"
)

func bad(url string) {
	resp, _ := http.Get(url) // want "http.Get has no context"
	_ = resp

	req, _ := http.NewRequest(http.MethodGet, url, nil) // want "http.NewRequest has no context"
	_ = req
}

func good(ctx context.Context, client *http.Client, url string) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	resp, _ := client.Do(req)
	_ = resp
}
