package netx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDownloadPresignedURL(t *testing.T) {
	payload := []byte(`{"accountId":"a1","entries":[]}`)

	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotQuery string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotQuery = r.URL.RawQuery
			_, _ = w.Write(payload)
		}))
		defer ts.Close()

		var buf bytes.Buffer
		n, err := DownloadPresignedURL(context.Background(), ts.URL+"/exports/x.json?X-Amz-Signature=abc", &buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %q, want GET", gotMethod)
		}
		if gotQuery != "X-Amz-Signature=abc" {
			t.Fatalf("query = %q", gotQuery)
		}
		if n != int64(len(payload)) || !bytes.Equal(buf.Bytes(), payload) {
			t.Fatalf("body = %q (%d bytes), want %q", buf.String(), n, payload)
		}
	})

	t.Run("non-200 -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		}))
		defer ts.Close()

		var buf bytes.Buffer
		_, err := DownloadPresignedURL(context.Background(), ts.URL, &buf)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		msg := err.Error()
		if !strings.Contains(msg, "403") || !strings.Contains(msg, "SignatureDoesNotMatch") {
			t.Fatalf("error = %q, want status and body", msg)
		}
		if buf.Len() != 0 {
			t.Fatalf("nothing should be written on failure, got %q", buf.String())
		}
	})

	t.Run("bad url", func(t *testing.T) {
		var buf bytes.Buffer
		if _, err := DownloadPresignedURL(context.Background(), "://bad", &buf); err == nil {
			t.Fatal("expected error for malformed url")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(payload)
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		if _, err := DownloadPresignedURL(ctx, ts.URL, &buf); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
