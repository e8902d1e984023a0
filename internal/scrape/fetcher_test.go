package scrape

import (
	"context"
	"errors"
	"testing"
	"time"
)

type erroringFetcher struct{ err error }

func (f erroringFetcher) Fetch(context.Context, string) (*Page, error) {
	return nil, f.err
}

type staticFetcher struct{ status int }

func (f staticFetcher) Fetch(_ context.Context, url string) (*Page, error) {
	return &Page{URL: url, StatusCode: f.status, FetchedAt: time.Now()}, nil
}

func TestProberFetchErrorMeansUnavailable(t *testing.T) {
	p := NewProber(erroringFetcher{err: errors.New("context deadline exceeded")})
	if p.IsAvailable(context.Background(), "https://slow.example/") {
		t.Error("a timed-out fetch must read as unavailable")
	}
}

func TestProberStatus(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{200, true},
		{301, false},
		{404, false},
		{500, false},
	}
	for _, tt := range tests {
		p := NewProber(staticFetcher{status: tt.status})
		if got := p.IsAvailable(context.Background(), "https://x.example/"); got != tt.want {
			t.Errorf("status %d: IsAvailable = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestProberEmptyURL(t *testing.T) {
	p := NewProber(staticFetcher{status: 200})
	if p.IsAvailable(context.Background(), "") {
		t.Error("empty URL must be unavailable")
	}
}
