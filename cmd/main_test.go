package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/ingestion"
	"github.com/guttosm/dexboard/internal/service"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, ":0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, ":0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func TestBlockFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var start, end blockFlag
	fs.Var(&start, "start-block", "")
	fs.Var(&end, "end-block", "")

	if err := fs.Parse([]string{"--start-block", "18500000"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if start.v == nil || *start.v != 18500000 || start.String() != "18500000" {
		t.Fatalf("start not set: %v", start.String())
	}
	if end.v != nil || end.String() != "" {
		t.Fatalf("end must stay unset")
	}
	if err := end.Set("-1"); err == nil {
		t.Fatalf("negative block must be rejected")
	}
}

func TestCLIOptions_Queries(t *testing.T) {
	seven := uint64(7)
	three := uint64(3)

	cases := []struct {
		name    string
		opts    cliOptions
		want    []string
		wantErr bool
	}{
		{name: "single token", opts: cliOptions{token: "0xa"}, want: []string{"0xa"}},
		{name: "token list", opts: cliOptions{tokens: "0xa, 0xb,,0xc"}, want: []string{"0xa", "0xb", "0xc"}},
		{name: "token first", opts: cliOptions{token: "0xa", tokens: "0xb"}, want: []string{"0xa", "0xb"}},
		{name: "demo without token", opts: cliOptions{demo: true}, want: []string{""}},
		{name: "missing token", opts: cliOptions{}, wantErr: true},
		{name: "negative limit", opts: cliOptions{token: "0xa", limit: -1}, wantErr: true},
		{
			name:    "inverted range",
			opts:    cliOptions{token: "0xa", startBlock: blockFlag{v: &seven}, endBlock: blockFlag{v: &three}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qs, err := tc.opts.queries()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(qs) != len(tc.want) {
				t.Fatalf("queries=%d, want %d", len(qs), len(tc.want))
			}
			for i, q := range qs {
				if q.Token != tc.want[i] || q.Demo != tc.opts.demo {
					t.Fatalf("query %d = %+v", i, q)
				}
			}
		})
	}
}

type fakeBuilder struct {
	many     int
	parallel int
	err      error
}

func (f *fakeBuilder) Build(_ context.Context, q models.LeaderboardQuery) (*models.Leaderboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Leaderboard{Token: q.Token, Network: "base"}, nil
}

func (f *fakeBuilder) BuildMany(ctx context.Context, qs []models.LeaderboardQuery, parallel int) ([]*models.Leaderboard, error) {
	f.many++
	f.parallel = parallel
	out := make([]*models.Leaderboard, 0, len(qs))
	for _, q := range qs {
		lb, err := f.Build(ctx, q)
		if err != nil {
			return nil, err
		}
		out = append(out, lb)
	}
	return out, nil
}

func TestRunCLI_Demo(t *testing.T) {
	svc := service.NewLeaderboardService(func(string) (ingestion.SwapSource, string, error) {
		t.Fatalf("demo runs must not resolve a swap source")
		return nil, "", nil
	})

	var out bytes.Buffer
	if err := runCLI(context.Background(), &out, svc, cliOptions{demo: true, limit: 5}); err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if !strings.Contains(out.String(), "Total Traders: 8") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunCLI_ManyTokensAndEmptyRuns(t *testing.T) {
	b := &fakeBuilder{}
	var out bytes.Buffer
	err := runCLI(context.Background(), &out, b, cliOptions{tokens: "0xa,0xb", parallel: 3})
	if err != nil {
		t.Fatalf("runCLI: %v", err)
	}
	if b.many != 1 || b.parallel != 3 {
		t.Fatalf("BuildMany not used: many=%d parallel=%d", b.many, b.parallel)
	}
	if strings.Count(out.String(), "No swaps found") != 2 {
		t.Fatalf("expected an empty-run message per token:\n%s", out.String())
	}
}

func TestRunCLI_Error(t *testing.T) {
	boom := errors.New("boom")
	err := runCLI(context.Background(), &bytes.Buffer{}, &fakeBuilder{err: boom}, cliOptions{token: "0xa"})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
}
