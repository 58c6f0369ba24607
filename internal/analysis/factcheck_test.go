package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"newscred/internal/logging"
)

type scriptedFetcher struct {
	responses []string
	errs      []error
	call      int
}

func (f *scriptedFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	i := f.call
	f.call++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

func newTestVerifier(fetcher *scriptedFetcher, sites ...string) *FactCheckVerifier {
	if len(sites) == 0 {
		sites = []string{"http://check-a.test/{query}", "http://check-b.test/?q={query}"}
	}
	return NewFactCheckVerifier(fetcher, &noopPacer{}, time.Second, 300*time.Millisecond, logging.NewNop(), sites...)
}

func TestVerifyFactCheckNeutralWhenUnreachable(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{errs: []error{errors.New("timeout"), errors.New("timeout")}}
	v := newTestVerifier(fetcher)

	if got := v.Verify(context.Background(), "Some Headline"); got != 85.0 {
		t.Fatalf("unreachable sites: got %v, want 85.0", got)
	}
}

func TestVerifyFactCheckDispute(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []string{
		"this claim was debunked by reviewers",
		"nothing relevant on this page",
	}}
	v := newTestVerifier(fetcher)

	if got := v.Verify(context.Background(), "Some Headline"); got != 65.0 {
		t.Fatalf("disputed: got %v, want 65.0", got)
	}
}

func TestVerifyFactCheckConfirmation(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []string{
		"the report was checked and is accurate",
		"officials said the story is accurate",
	}}
	// Neither page carries dispute or confirm words, so the score holds.
	v := newTestVerifier(fetcher)
	if got := v.Verify(context.Background(), "Some Headline"); got != 85.0 {
		t.Fatalf("neutral pages: got %v, want 85.0", got)
	}

	confirming := &scriptedFetcher{responses: []string{
		"the claim was rated verified by our team",
		"nothing relevant on this page",
	}}
	v = newTestVerifier(confirming)
	if got := v.Verify(context.Background(), "Some Headline"); got != 95.0 {
		t.Fatalf("confirmed: got %v, want 95.0", got)
	}
}

func TestVerifyFactCheckDisputeWinsOverConfirm(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []string{
		"rated false despite being widely confirmed",
		"nothing relevant on this page",
	}}
	v := newTestVerifier(fetcher)

	if got := v.Verify(context.Background(), "Some Headline"); got != 65.0 {
		t.Fatalf("dispute priority: got %v, want 65.0", got)
	}
}

func TestVerifyFactCheckLowerClamp(t *testing.T) {
	t.Parallel()

	disputed := "rated false and debunked"
	sites := make([]string, 6)
	responses := make([]string, 6)
	for i := range sites {
		sites[i] = "http://check.test/{query}"
		responses[i] = disputed
	}
	v := newTestVerifier(&scriptedFetcher{responses: responses}, sites...)

	// 85 - 6*20 would be negative; the result clamps at 0.
	if got := v.Verify(context.Background(), "Some Headline"); got != 0.0 {
		t.Fatalf("lower clamp: got %v, want 0.0", got)
	}
}
