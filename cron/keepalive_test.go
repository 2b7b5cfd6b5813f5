package cron

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestPing(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/api/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"status":"Backend running"}`))
	}))
	defer srv.Close()

	if err := NewKeepAlive(srv.URL+"/api/health", nil).Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := NewKeepAlive(srv.URL+"/nope", nil).Ping(context.Background()); err == nil {
		t.Fatal("expected error for 404")
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("hits = %d", n)
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	k := NewKeepAlive("http://localhost", nil)
	if err := k.Start("every ten minutes"); err == nil {
		t.Fatal("expected schedule error")
	}
	k.Stop()
}

func TestStartAndStop(t *testing.T) {
	k := NewKeepAlive("http://localhost", nil)
	if err := k.Start("*/10 * * * *"); err != nil {
		t.Fatal(err)
	}
	k.Stop()
}
