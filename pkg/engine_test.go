package pkg

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
const afterE5 = "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"

func TestHTTPEngineBestMove(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/best-move" {
			t.Errorf("request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("body %s: %v", body, err)
		}
		io.WriteString(w, `{"fen": "`+afterE5+`", "score": 12}`)
	}))
	defer srv.Close()

	e := NewHTTPEngine(srv.URL+"/best-move", 0)
	fen, err := e.BestMove(context.Background(), afterE4, SearchDepth)
	if err != nil {
		t.Fatal(err)
	}
	if fen != afterE5 {
		t.Errorf("fen = %q", fen)
	}
	if len(got) != 2 || got["fen"] != afterE4 || got["depth"] != float64(3) {
		t.Errorf("request body = %v", got)
	}
}

func TestHTTPEngineFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		op     string
	}{
		{"server error", http.StatusInternalServerError, `{"error": "engine crashed"}`, "post"},
		{"plain error", http.StatusBadGateway, `bad gateway`, "post"},
		{"not json", http.StatusOK, `<html>`, "decode"},
		{"missing fen", http.StatusOK, `{"move": "e7e5"}`, "decode"},
		{"empty fen", http.StatusOK, `{"fen": ""}`, "decode"},
		{"wrong key case", http.StatusOK, `{"FEN": "x"}`, "decode"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				io.WriteString(w, c.body)
			}))
			defer srv.Close()

			_, err := NewHTTPEngine(srv.URL, 0).BestMove(context.Background(), afterE4, SearchDepth)
			if !errors.Is(err, ErrEngineRequest) {
				t.Fatalf("err = %v, want ErrEngineRequest", err)
			}
			var engineErr *EngineError
			if !errors.As(err, &engineErr) || engineErr.Op != c.op {
				t.Errorf("err = %#v, want op %s", err, c.op)
			}
		})
	}
}

func TestHTTPEngineErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": "engine crashed"}`)
	}))
	defer srv.Close()

	_, err := NewHTTPEngine(srv.URL, 0).BestMove(context.Background(), afterE4, SearchDepth)
	var engineErr *EngineError
	if !errors.As(err, &engineErr) {
		t.Fatalf("err = %v", err)
	}
	if engineErr.Status != http.StatusInternalServerError || engineErr.Err.Error() != "engine crashed" {
		t.Errorf("err = %+v", engineErr)
	}
}

func TestHTTPEngineUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPEngine(url, time.Second).BestMove(context.Background(), afterE4, SearchDepth)
	if !errors.Is(err, ErrEngineRequest) {
		t.Errorf("err = %v", err)
	}
}

func TestHTTPEngineRejectsBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request sent")
	}))
	defer srv.Close()

	_, err := NewHTTPEngine(srv.URL, 0).BestMove(context.Background(), "", SearchDepth)
	var engineErr *EngineError
	if !errors.As(err, &engineErr) || engineErr.Op != "encode" {
		t.Errorf("err = %v", err)
	}
}

func TestHTTPEngineTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPEngine(srv.URL, 50*time.Millisecond).BestMove(context.Background(), afterE4, SearchDepth)
	if !errors.Is(err, ErrEngineRequest) {
		t.Errorf("err = %v", err)
	}
}
