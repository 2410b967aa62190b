package health

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string                  { return f.name }
func (f fakeChecker) Check(_ context.Context) error { return f.err }

func TestReadyAllPass(t *testing.T) {
	svc := NewService(fakeChecker{name: "a"}, fakeChecker{name: "b"})
	if err := svc.Ready(context.Background()); err != nil {
		t.Fatalf("Ready() err=%v", err)
	}
}

func TestReadyReportsFailingChecker(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(fakeChecker{name: "a"}, fakeChecker{name: "llm", err: boom})
	err := svc.Ready(context.Background())
	if err == nil {
		t.Fatalf("Ready() should fail")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("Ready() err=%v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "llm") {
		t.Fatalf("Ready() err=%q, want checker name", err)
	}
}
