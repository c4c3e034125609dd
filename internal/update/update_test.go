package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveRelease(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	old := releasesURL
	releasesURL = srv.URL
	t.Cleanup(func() { releasesURL = old })
}

func TestCheckNewerVersion(t *testing.T) {
	serveRelease(t, http.StatusOK, `{"tag_name":"v1.2.0"}`)

	res := Check(context.Background(), "v1.1.0")
	if res == nil {
		t.Fatal("expected a result for newer release")
	}
	if res.LatestVersion != "1.2.0" {
		t.Errorf("unexpected version %q", res.LatestVersion)
	}
}

func TestCheckUpToDate(t *testing.T) {
	serveRelease(t, http.StatusOK, `{"tag_name":"v1.1.0"}`)

	if res := Check(context.Background(), "1.1.0"); res != nil {
		t.Errorf("expected nil for current version, got %+v", res)
	}
}

func TestCheckServerError(t *testing.T) {
	serveRelease(t, http.StatusInternalServerError, "")

	if res := Check(context.Background(), "1.0.0"); res != nil {
		t.Errorf("expected nil on server error, got %+v", res)
	}
}

func TestCheckBadJSON(t *testing.T) {
	serveRelease(t, http.StatusOK, "not json")

	if res := Check(context.Background(), "1.0.0"); res != nil {
		t.Errorf("expected nil on bad payload, got %+v", res)
	}
}
