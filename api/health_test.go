package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "healthy backend",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"healthy"}`))
			},
			want: true,
		},
		{
			name: "degraded status is not healthy",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"degraded"}`))
			},
			want: false,
		},
		{
			name: "well-formed body without a status field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			},
			want: false,
		},
		{
			name: "2xx with a non-JSON body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			want: false,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()
			c := New(server.URL, WithLogger(discardLogger()), WithMaxRetries(0))
			if got := c.CheckHealth(context.Background()); got != tt.want {
				t.Errorf("CheckHealth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckHealth_UnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens here anymore

	c := New(server.URL, WithLogger(discardLogger()), WithMaxRetries(0))
	if c.CheckHealth(context.Background()) {
		t.Error("CheckHealth = true against a dead backend")
	}
}
