package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sapt/auditor/internal/models"
)

// Store is the database-backed link store. It satisfies
// resolve.LinkStore and eval.EvaluationStore.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// LookupLink finds an active stored URL for the entity. An exact
// case-insensitive match wins; otherwise the first partial match in
// insertion order is used, mirroring how the static registry matches.
func (s *Store) LookupLink(ctx context.Context, entityName string, linkType models.LinkType) (string, bool) {
	name := strings.TrimSpace(entityName)
	if name == "" {
		return "", false
	}

	var u string
	err := s.pool.QueryRow(ctx, `
		SELECT url FROM links
		WHERE active AND link_type = $2 AND LOWER(entity_name) = LOWER($1)
	`, name, string(linkType)).Scan(&u)
	if err == nil {
		return u, true
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("link lookup %q/%s: %v", name, linkType, err)
		return "", false
	}

	err = s.pool.QueryRow(ctx, `
		SELECT url FROM links
		WHERE active AND link_type = $2
		  AND (entity_name ILIKE '%' || $1 || '%' OR $1 ILIKE '%' || entity_name || '%')
		ORDER BY id
		LIMIT 1
	`, name, string(linkType)).Scan(&u)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("link lookup %q/%s: %v", name, linkType, err)
		}
		return "", false
	}
	return u, true
}

// SaveLink upserts the entity's URL for one link type, marking it
// active and stamping last_checked.
func (s *Store) SaveLink(ctx context.Context, link models.Link) error {
	if link.EntityName == "" || link.URL == "" {
		return errors.New("entity name and url are required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO links (entity_name, link_type, url, active, last_checked)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (entity_name, link_type)
		DO UPDATE SET url = EXCLUDED.url, active = EXCLUDED.active, last_checked = NOW()
	`, link.EntityName, string(link.Type), link.URL, link.Active)
	if err != nil {
		return fmt.Errorf("save link %s/%s: %w", link.EntityName, link.Type, err)
	}
	return nil
}

// DeactivateLink keeps the row for auditing but removes it from
// resolver lookups.
func (s *Store) DeactivateLink(ctx context.Context, entityName string, linkType models.LinkType) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE links SET active = FALSE WHERE LOWER(entity_name) = LOWER($1) AND link_type = $2
	`, entityName, string(linkType))
	if err != nil {
		return fmt.Errorf("deactivate link %s/%s: %w", entityName, linkType, err)
	}
	return nil
}

// ListLinks returns every stored link, active or not.
func (s *Store) ListLinks(ctx context.Context) ([]models.Link, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, entity_name, link_type, url, active, last_checked
		FROM links ORDER BY entity_name, link_type
	`)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		var l models.Link
		var linkType string
		if err := rows.Scan(&l.ID, &l.EntityName, &linkType, &l.URL, &l.Active, &l.LastChecked); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l.Type = models.LinkType(linkType)
		links = append(links, l)
	}
	return links, rows.Err()
}

// RecordEvaluation stores the summary row of a finished run.
func (s *Store) RecordEvaluation(ctx context.Context, ev models.Evaluation) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO evaluations (run_id, entity_name, entity_type, site_url, portal_url, satisfied, total, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (run_id) DO NOTHING
	`, ev.RunID, ev.EntityName, ev.EntityType, ev.SiteURL, ev.PortalURL, ev.Satisfied, ev.Total, ev.CompletedAt)
	if err != nil {
		return fmt.Errorf("record evaluation %s: %w", ev.RunID, err)
	}
	return nil
}

// RecentEvaluations returns the latest run summaries, newest first.
func (s *Store) RecentEvaluations(ctx context.Context, limit int) ([]models.Evaluation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx, `
		SELECT run_id, entity_name, COALESCE(entity_type, ''), COALESCE(site_url, ''), COALESCE(portal_url, ''),
		       satisfied, total, completed_at
		FROM evaluations ORDER BY completed_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var evs []models.Evaluation
	for rows.Next() {
		var ev models.Evaluation
		if err := rows.Scan(&ev.RunID, &ev.EntityName, &ev.EntityType, &ev.SiteURL, &ev.PortalURL,
			&ev.Satisfied, &ev.Total, &ev.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		evs = append(evs, ev)
	}
	return evs, rows.Err()
}
