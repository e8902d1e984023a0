package eval

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sapt/auditor/internal/catalog"
	"github.com/sapt/auditor/internal/models"
)

type fakeResolver struct {
	site   string
	portal string
}

func (f *fakeResolver) Resolve(_ context.Context, _ string, linkType models.LinkType, _ string) (string, bool) {
	switch linkType {
	case models.LinkOfficialSite:
		return f.site, f.site != ""
	case models.LinkTransparency:
		return f.portal, f.portal != ""
	}
	return "", false
}

type fakeVerifier struct {
	satisfy  map[string]bool
	gate     chan struct{}
	onVerify func(callCount int)
	urls     []string
}

func (f *fakeVerifier) Verify(_ context.Context, pageURL string, criterion models.Criterion, checks []models.Check) models.Result {
	if f.gate != nil {
		<-f.gate
	}
	if f.onVerify != nil {
		f.onVerify(len(f.urls) + 1)
	}
	f.urls = append(f.urls, pageURL)
	result := models.Result{
		ID:             criterion.ID,
		Question:       criterion.Question,
		Classification: criterion.Classification,
		Checks:         map[models.Check]bool{},
		Satisfied:      f.satisfy[criterion.ID],
	}
	for _, c := range checks {
		result.Checks[c] = result.Satisfied
	}
	if result.Satisfied {
		result.EvidenceURL = pageURL
	}
	return result
}

type fakeAdHocSearcher struct {
	calls   int
	results []string
}

func (f *fakeAdHocSearcher) Search(context.Context, string, int) []string {
	f.calls++
	return f.results
}

func drain(t *testing.T, run *Run) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-run.Events:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("run did not terminate")
		}
	}
}

func TestRunEmitsMonotoneProgressAndOneTerminalEvent(t *testing.T) {
	o := NewOrchestrator(
		&fakeResolver{site: "https://manaus.am.gov.br/", portal: "https://transparencia.manaus.am.gov.br/"},
		&fakeVerifier{satisfy: map[string]bool{"1.1": true, "3.1": true}},
		nil,
	)
	o.Now = func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }

	run, err := o.Start(context.Background(), "Prefeitura de Manaus", "")
	if err != nil {
		t.Fatal(err)
	}
	events := drain(t, run)

	last := -1.0
	completes := 0
	results := 0
	for _, ev := range events {
		switch ev.Kind {
		case EventStatus:
			if ev.Progress < last {
				t.Errorf("progress went backwards: %f after %f", ev.Progress, last)
			}
			last = ev.Progress
		case EventComplete:
			completes++
		case EventResult:
			results++
		case EventError:
			t.Errorf("unexpected error event: %s", ev.Message)
		}
	}
	if completes != 1 {
		t.Errorf("terminal events = %d, want exactly 1", completes)
	}
	if last != 100 {
		t.Errorf("final progress = %f, want 100", last)
	}
	if want := len(catalog.Base()); results != want {
		t.Errorf("result events = %d, want %d", results, want)
	}
	if !run.Done() {
		t.Error("run not marked done after channel close")
	}

	summary := run.Summary()
	if summary == nil {
		t.Fatal("missing summary")
	}
	if summary.Satisfied != 2 {
		t.Errorf("satisfied = %d, want 2", summary.Satisfied)
	}
	if summary.Total != len(catalog.Base()) {
		t.Errorf("total = %d, want %d", summary.Total, len(catalog.Base()))
	}
	if summary.SiteURL != "https://manaus.am.gov.br/" {
		t.Errorf("site = %q", summary.SiteURL)
	}
}

func TestEntityTypeExtendsCriteriaList(t *testing.T) {
	base := len(catalog.Base())
	extra := len(catalog.ForMatrix(catalog.MatrixCourtOfAccounts))
	if extra == 0 {
		t.Fatal("matrix fixture is empty")
	}
	if got := len(criteriaFor(catalog.MatrixCourtOfAccounts)); got != base+extra {
		t.Errorf("criteria count = %d, want %d", got, base+extra)
	}
	if got := len(criteriaFor("")); got != base {
		t.Errorf("criteria count without type = %d, want %d", got, base)
	}
}

func TestStartRejectsConcurrentRun(t *testing.T) {
	gate := make(chan struct{})
	o := NewOrchestrator(&fakeResolver{site: "https://x.example/"}, &fakeVerifier{gate: gate}, nil)

	run, err := o.Start(context.Background(), "Prefeitura de Manaus", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Start(context.Background(), "Outro Órgão", ""); err != ErrBusy {
		t.Errorf("second Start error = %v, want ErrBusy", err)
	}

	close(gate)
	drain(t, run)

	run2, err := o.Start(context.Background(), "Outro Órgão", "")
	if err != nil {
		t.Fatalf("Start after completion: %v", err)
	}
	drain(t, run2)
}

func TestCancelStopsBetweenCriteria(t *testing.T) {
	var run *Run
	started := make(chan struct{})
	verifier := &fakeVerifier{onVerify: func(call int) {
		if call == 1 {
			<-started
			run.Cancel()
		}
	}}
	o := NewOrchestrator(&fakeResolver{site: "https://x.example/"}, verifier, nil)

	var err error
	run, err = o.Start(context.Background(), "Prefeitura de Manaus", "")
	if err != nil {
		t.Fatal(err)
	}
	close(started)
	events := drain(t, run)

	cancelled := false
	for _, ev := range events {
		if ev.Kind == EventStatus && strings.Contains(ev.Message, "cancelada") {
			cancelled = true
		}
	}
	if !cancelled {
		t.Error("expected a cancellation status event")
	}
	if last := events[len(events)-1]; last.Kind != EventComplete {
		t.Errorf("last event = %s, want complete", last.Kind)
	}
	if got := len(run.Results()); got == len(catalog.Base()) {
		t.Error("cancellation should skip remaining criteria")
	}
}

func TestTargetURLSelection(t *testing.T) {
	searcher := &fakeAdHocSearcher{results: []string{"https://found.example/"}}
	o := NewOrchestrator(nil, nil, nil)
	o.Searcher = searcher

	tests := []struct {
		name     string
		question string
		site     string
		portal   string
		want     string
	}{
		{"official site question", "Possui sítio oficial próprio na internet?", "https://site/", "https://portal/", "https://site/"},
		{"portal question", "Possui portal da transparência próprio?", "https://site/", "https://portal/", "https://portal/"},
		{"generic question defaults to site", "Divulga receita pública?", "https://site/", "https://portal/", "https://site/"},
		{"no urls falls back to search", "Divulga receita pública?", "", "", "https://found.example/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := o.targetURL(context.Background(), "Prefeitura de Manaus", tt.question, tt.site, tt.portal)
			if got != tt.want {
				t.Errorf("targetURL = %q, want %q", got, tt.want)
			}
		})
	}
	if searcher.calls != 1 {
		t.Errorf("search calls = %d, want 1", searcher.calls)
	}
}

func TestMissingTargetYieldsNegativeResult(t *testing.T) {
	o := NewOrchestrator(&fakeResolver{}, &fakeVerifier{}, nil)

	run, err := o.Start(context.Background(), "Órgão Inexistente", "")
	if err != nil {
		t.Fatal(err)
	}
	drain(t, run)

	results := run.Results()
	if len(results) == 0 {
		t.Fatal("no results")
	}
	for _, r := range results[:3] {
		if r.Satisfied {
			t.Errorf("criterion %s satisfied without any target URL", r.ID)
		}
		if !strings.Contains(r.Note, "Órgão Inexistente") {
			t.Errorf("criterion %s note = %q, want entity name mentioned", r.ID, r.Note)
		}
	}
}
