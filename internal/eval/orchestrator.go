// Package eval sequences URL resolution and per-criterion verification
// for one entity, streaming progress and result events to a consumer.
package eval

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sapt/auditor/internal/catalog"
	"github.com/sapt/auditor/internal/models"
	"github.com/sapt/auditor/internal/scrape"
)

// ErrBusy is returned by Start while another run is in flight.
var ErrBusy = errors.New("an evaluation is already running")

const (
	stateIdle int32 = iota
	stateRunning
)

// LinkResolver finds an authoritative URL for an entity.
type LinkResolver interface {
	Resolve(ctx context.Context, entityName string, linkType models.LinkType, officialSite string) (string, bool)
}

// CriterionVerifier checks one criterion against a page.
type CriterionVerifier interface {
	Verify(ctx context.Context, pageURL string, criterion models.Criterion, checks []models.Check) models.Result
}

// EvaluationStore persists finished run summaries. Optional.
type EvaluationStore interface {
	RecordEvaluation(ctx context.Context, ev models.Evaluation) error
}

// Run is one evaluation in flight (or finished). Events is closed when
// the run reaches a terminal state; after that Results and Summary are
// safe to read.
type Run struct {
	ID         string
	EntityName string
	EntityType string
	Events     <-chan Event

	cancel context.CancelFunc

	mu      sync.Mutex
	results []models.Result
	summary *models.Evaluation
	done    bool
}

// Cancel requests a cooperative stop. The current criterion finishes;
// remaining ones are skipped.
func (r *Run) Cancel() { r.cancel() }

// Done reports whether the run has reached a terminal state.
func (r *Run) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Results returns a copy of the result records emitted so far.
func (r *Run) Results() []models.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Result, len(r.results))
	copy(out, r.results)
	return out
}

// Summary returns the run summary, or nil while the run is in flight.
func (r *Run) Summary() *models.Evaluation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary
}

// Orchestrator owns the single-run state machine. One run at a time;
// Start rejects concurrent requests instead of queuing them.
type Orchestrator struct {
	Resolver LinkResolver
	Verifier CriterionVerifier
	Searcher scrape.Searcher
	Store    EvaluationStore
	Now      func() time.Time

	state atomic.Int32

	mu   sync.Mutex
	runs map[string]*Run
	last *Run
}

func NewOrchestrator(resolver LinkResolver, verifier CriterionVerifier, searcher scrape.Searcher) *Orchestrator {
	return &Orchestrator{
		Resolver: resolver,
		Verifier: verifier,
		Searcher: searcher,
		Now:      time.Now,
		runs:     make(map[string]*Run),
	}
}

// Lookup returns a run by id.
func (o *Orchestrator) Lookup(id string) (*Run, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	r, ok := o.runs[id]
	return r, ok
}

// Start launches an evaluation of entityName in the background.
// entityType selects an extra criteria matrix and may be empty.
func (o *Orchestrator) Start(ctx context.Context, entityName, entityType string) (*Run, error) {
	if strings.TrimSpace(entityName) == "" {
		return nil, errors.New("entity name is required")
	}
	if !o.state.CompareAndSwap(stateIdle, stateRunning) {
		return nil, ErrBusy
	}

	criteria := criteriaFor(entityType)

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	events := make(chan Event, 2*len(criteria)+16)
	run := &Run{
		ID:         uuid.NewString(),
		EntityName: entityName,
		EntityType: entityType,
		Events:     events,
		cancel:     cancel,
	}

	o.mu.Lock()
	// Only the latest finished run is kept around for report generation.
	if o.last != nil {
		delete(o.runs, o.last.ID)
	}
	o.runs[run.ID] = run
	o.last = run
	o.mu.Unlock()

	go o.execute(runCtx, run, criteria, events)
	return run, nil
}

// criteriaFor composes the base questionnaire with the entity-type
// matrix, when one applies.
func criteriaFor(entityType string) []models.Criterion {
	criteria := catalog.Base()
	if entityType != "" {
		criteria = append(criteria, catalog.ForMatrix(entityType)...)
	}
	return criteria
}

func (o *Orchestrator) execute(ctx context.Context, run *Run, criteria []models.Criterion, events chan<- Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("evaluation %s: recovered: %v", run.ID, r)
			events <- Event{
				Kind:     EventError,
				Message:  fmt.Sprintf("Ocorreu um erro durante a avaliação: %v", r),
				Progress: 100,
			}
		}
		events <- Event{Kind: EventComplete}
		close(events)
		run.mu.Lock()
		run.done = true
		run.mu.Unlock()
		o.state.Store(stateIdle)
	}()

	total := len(criteria)

	events <- statusEvent("Buscando site oficial...", 5)
	site, _ := o.Resolver.Resolve(ctx, run.EntityName, models.LinkOfficialSite, "")
	if site != "" {
		events <- statusEvent(fmt.Sprintf("Site oficial encontrado: %s", site), 10)
	} else {
		events <- statusEvent("Site oficial não encontrado", 10)
	}

	events <- statusEvent("Buscando portal de transparência...", 15)
	portal, _ := o.Resolver.Resolve(ctx, run.EntityName, models.LinkTransparency, site)
	if portal != "" {
		events <- statusEvent(fmt.Sprintf("Portal de transparência encontrado: %s", portal), 20)
	} else {
		events <- statusEvent("Portal de transparência não encontrado", 20)
	}

	satisfied := 0
	for i, criterion := range criteria {
		if ctx.Err() != nil {
			events <- statusEvent("Avaliação cancelada", 100)
			return
		}

		events <- Event{
			Kind:     EventStatus,
			Message:  fmt.Sprintf("Verificando item %d de %d", i+1, total),
			Progress: 20 + float64(i)/float64(total)*80,
			Question: criterion.Question,
		}

		target := o.targetURL(ctx, run.EntityName, criterion.Question, site, portal)
		result := o.evaluate(ctx, run.EntityName, target, criterion)
		if result.Satisfied {
			satisfied++
		}

		run.mu.Lock()
		run.results = append(run.results, result)
		run.mu.Unlock()

		r := result
		events <- Event{Kind: EventResult, Result: &r}
	}

	events <- statusEvent("Avaliação concluída!", 100)

	summary := models.Evaluation{
		RunID:       run.ID,
		EntityName:  run.EntityName,
		EntityType:  run.EntityType,
		SiteURL:     site,
		PortalURL:   portal,
		Satisfied:   satisfied,
		Total:       total,
		CompletedAt: o.Now(),
	}
	run.mu.Lock()
	run.summary = &summary
	run.mu.Unlock()

	if o.Store != nil {
		if err := o.Store.RecordEvaluation(ctx, summary); err != nil {
			log.Printf("evaluation %s: record summary: %v", run.ID, err)
		}
	}
}

// targetURL picks the page a criterion is checked against: the portal
// when the question mentions it, else the official site, else an
// ad-hoc search keyed by question and entity.
func (o *Orchestrator) targetURL(ctx context.Context, entityName, question, site, portal string) string {
	q := scrape.Normalize(question)
	switch {
	case strings.Contains(q, "sitio oficial") && site != "":
		return site
	case strings.Contains(q, "portal da transparencia") && portal != "":
		return portal
	case site != "":
		return site
	}
	if o.Searcher == nil {
		return ""
	}
	if links := o.Searcher.Search(ctx, fmt.Sprintf("%s %s", question, entityName), 3); len(links) > 0 {
		return links[0]
	}
	return ""
}

func (o *Orchestrator) evaluate(ctx context.Context, entityName, target string, criterion models.Criterion) models.Result {
	if target == "" {
		return models.Result{
			ID:             criterion.ID,
			Question:       criterion.Question,
			Dimension:      criterion.Dimension,
			Classification: criterion.Classification,
			LegalBasis:     criterion.LegalBasis,
			Checks:         emptyChecks(catalog.ChecksFor(criterion.ID)),
			Note:           fmt.Sprintf("Não foi possível encontrar informações para %s", entityName),
		}
	}
	result := o.Verifier.Verify(ctx, target, criterion, catalog.ChecksFor(criterion.ID))
	if !result.Satisfied && result.Note == "" {
		result.Note = fmt.Sprintf("Informação não encontrada para %s em %s", entityName, target)
	}
	return result
}

func emptyChecks(checks []models.Check) map[models.Check]bool {
	m := make(map[models.Check]bool, len(checks))
	for _, c := range checks {
		m[c] = false
	}
	return m
}
