package linkedin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"market-pulse/internal/sources"
)

func jobCards(n int) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for i := 0; i < n; i++ {
		b.WriteString(`<li><div class="base-card job-card-container"><h3>Engineer</h3></div></li>`)
	}
	b.WriteString("</ul>")
	return b.String()
}

func TestOpenPositions_CountsJobCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jobCards(7)))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	obs, err := client.OpenPositions(context.Background(), "NVIDIA")
	if err != nil {
		t.Fatalf("open positions: %v", err)
	}
	if obs.OpenPositions != 7 {
		t.Errorf("expected 7 listings, got %d", obs.OpenPositions)
	}
}

func TestOpenPositions_NoListingsIsZeroNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<ul></ul>"))
	}))
	defer srv.Close()

	obs, err := NewClient(WithBaseURL(srv.URL)).OpenPositions(context.Background(), "NVIDIA")
	if err != nil {
		t.Fatalf("open positions: %v", err)
	}
	if obs.OpenPositions != 0 {
		t.Errorf("expected 0 listings, got %d", obs.OpenPositions)
	}
}

func TestOpenPositions_SendsCompanyAndBrowserUA(t *testing.T) {
	var gotCompany, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCompany = r.URL.Query().Get("f_C")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(jobCards(1)))
	}))
	defer srv.Close()

	if _, err := NewClient(WithBaseURL(srv.URL)).OpenPositions(context.Background(), "Lockheed Martin"); err != nil {
		t.Fatalf("open positions: %v", err)
	}
	if gotCompany != "Lockheed Martin" {
		t.Errorf("expected company in query, got %q", gotCompany)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("expected a browser user agent, got %q", gotUA)
	}
}

func TestOpenPositions_NonOKStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(WithBaseURL(srv.URL)).OpenPositions(context.Background(), "NVIDIA")
	if !errors.Is(err, sources.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on status 429, got %v", err)
	}
}

func TestOpenPositions_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewClient(WithBaseURL(srv.URL)).OpenPositions(ctx, "NVIDIA"); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
