package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driving"
	"github.com/custodia-labs/folio-cli/internal/extractors"
	"github.com/custodia-labs/folio-cli/internal/logger"
	"github.com/custodia-labs/folio-cli/internal/vocab"
)

var _ driving.IngestService = (*IngestService)(nil)

// duplicateThreshold is the per-field similarity above which two
// entries are considered the same work.
const duplicateThreshold = 0.85

// minTitleRunes is the shortest title that passes validation cleanly.
const minTitleRunes = 4

// watchEventsPerSecond throttles ingestion runs triggered by the
// filesystem watcher, so a burst of drops cannot saturate the process.
const watchEventsPerSecond = 2

// IngestService reconciles documents into the catalog. Each run is a
// single transaction over one document: candidates are extracted,
// deduplicated, classified, and validated entirely off to the side,
// and the catalog is only touched at commit.
type IngestService struct {
	registry    *extractors.Registry
	store       driven.CatalogStore
	persistence driven.CatalogPersistence
	vocab       *vocab.Vocabulary
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	registry *extractors.Registry,
	store driven.CatalogStore,
	persistence driven.CatalogPersistence,
	vocabulary *vocab.Vocabulary,
) *IngestService {
	if vocabulary == nil {
		vocabulary = vocab.Default()
	}
	return &IngestService{
		registry:    registry,
		store:       store,
		persistence: persistence,
		vocab:       vocabulary,
	}
}

// ProcessDocument runs the full ingestion pipeline over one file.
func (s *IngestService) ProcessDocument(ctx context.Context, path string) (*domain.IngestReport, error) {
	runID := uuid.NewString()
	source := filepath.Base(path)

	logger.Section("Ingestion Run")
	logger.Info("Run %s: %s", runID, path)

	report := &domain.IngestReport{
		RunID:  runID,
		Source: source,
	}

	// EXTRACT
	candidates, err := s.extract(ctx, path, source)
	if err != nil {
		return nil, err
	}
	logger.Info("Extracted %d candidates", len(candidates))
	if len(candidates) == 0 {
		logger.Warn("No recognisable records in %s", source)
		return report, nil
	}

	// DEDUPLICATE
	candidates, dropped := s.deduplicate(ctx, candidates)
	report.DuplicatesFound = dropped
	logger.Info("Deduplication: %d kept, %d dropped", len(candidates), dropped)

	// CLASSIFY
	report.ThemesDetected = s.classify(candidates)
	logger.Info("Classification: %d distinct themes", len(report.ThemesDetected))

	// VALIDATE
	report.QualityIssues = s.validate(ctx, candidates)
	for _, issue := range report.QualityIssues {
		logger.Warn("Quality: %s", issue)
	}

	// Blank candidates would be rejected by the store; drop them here
	// so one junk row cannot abort the batch.
	kept := candidates[:0]
	for _, candidate := range candidates {
		if candidate.IsBlank() {
			continue
		}
		kept = append(kept, candidate)
	}
	candidates = kept

	for i := range candidates {
		if year, ok := domain.ParseYear(candidates[i].Date); ok {
			report.DateRange = report.DateRange.Extend(year)
		}
	}

	// COMMIT
	if len(candidates) > 0 {
		if _, err := s.store.AppendAll(ctx, candidates); err != nil {
			return nil, fmt.Errorf("commit %s: %w", source, err)
		}
		if s.persistence != nil {
			snapshot, err := s.store.Snapshot(ctx)
			if err != nil {
				return nil, fmt.Errorf("snapshot after commit: %w", err)
			}
			if err := s.persistence.ReplaceEntries(ctx, snapshot); err != nil {
				return nil, fmt.Errorf("persist %s: %w", source, err)
			}
		}
	}
	report.EntriesAdded = len(candidates)

	logger.Info("Run %s complete: %d added, %d duplicates, %d themes, %d issues",
		runID, report.EntriesAdded, report.DuplicatesFound,
		len(report.ThemesDetected), len(report.QualityIssues))
	return report, nil
}

// extract reads the file and runs the registry's extractor for its type.
func (s *IngestService) extract(ctx context.Context, path, source string) ([]domain.Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", source, err, domain.ErrExtraction)
	}

	raw := &domain.RawDocument{
		URI:      path,
		MIMEType: extractors.DetectMIMEType(path),
		Content:  content,
	}
	logger.Debug("Detected MIME type: %s", raw.MIMEType)

	extractor, err := s.registry.ForDocument(raw)
	if err != nil {
		return nil, err
	}

	candidates, err := extractor.Extract(ctx, raw)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].Source == "" {
			candidates[i].Source = source
		}
	}
	return candidates, nil
}

// deduplicate drops candidates that duplicate an existing catalog
// entry or an earlier candidate in the same batch. Two entries are the
// same work when both author and title exceed the similarity
// threshold.
func (s *IngestService) deduplicate(ctx context.Context, candidates []domain.Entry) ([]domain.Entry, int) {
	existing, err := s.store.Snapshot(ctx)
	if err != nil {
		logger.Warn("Snapshot for deduplication failed: %v", err)
		existing = nil
	}

	type key struct{ author, title string }
	seen := make(map[key]bool, len(existing))
	fuzzyPool := make([]domain.Entry, 0, len(existing))

	remember := func(e domain.Entry) {
		seen[key{normalizeKey(e.Author), normalizeKey(e.Title)}] = true
		fuzzyPool = append(fuzzyPool, e)
	}
	for _, e := range existing {
		remember(e)
	}

	isDuplicate := func(c domain.Entry) bool {
		if seen[key{normalizeKey(c.Author), normalizeKey(c.Title)}] {
			return true
		}
		ca, ct := normalizeKey(c.Author), normalizeKey(c.Title)
		for i := range fuzzyPool {
			if similarity(ca, normalizeKey(fuzzyPool[i].Author)) >= duplicateThreshold &&
				similarity(ct, normalizeKey(fuzzyPool[i].Title)) >= duplicateThreshold {
				return true
			}
		}
		return false
	}

	kept := make([]domain.Entry, 0, len(candidates))
	dropped := 0
	for _, candidate := range candidates {
		if isDuplicate(candidate) {
			dropped++
			logger.Debug("Duplicate dropped: %s — %s", candidate.Author, candidate.Title)
			continue
		}
		remember(candidate)
		kept = append(kept, candidate)
	}
	return kept, dropped
}

// classify enriches candidates with vocabulary-derived themes and a
// period inferred from the date. Themes already present are preserved;
// detected themes are appended without duplication. Returns the sorted
// distinct themes assigned across the batch.
func (s *IngestService) classify(candidates []domain.Entry) []string {
	detected := make(map[string]bool)

	for i := range candidates {
		c := &candidates[i]

		text := c.Title + " " + c.Notes
		have := make(map[string]bool, len(c.Themes))
		for _, theme := range c.Themes {
			have[strings.ToLower(theme)] = true
		}
		for _, theme := range s.vocab.ThemesForText(text) {
			if !have[strings.ToLower(theme)] {
				have[strings.ToLower(theme)] = true
				c.Themes = append(c.Themes, theme)
				detected[theme] = true
			}
		}

		if c.Period == "" {
			if year, ok := domain.ParseYear(c.Date); ok {
				if label, placed := s.vocab.PeriodForYear(year); placed {
					c.Period = label
				}
			}
		}
	}

	if len(detected) == 0 {
		return nil
	}
	themes := make([]string, 0, len(detected))
	for theme := range detected {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	return themes
}

// validate flags quality issues without rejecting entries. Issues are
// advisory; the report surfaces them for a human to resolve.
func (s *IngestService) validate(ctx context.Context, candidates []domain.Entry) []string {
	var issues []string

	titleAuthors := make(map[string]string)
	if existing, err := s.store.Snapshot(ctx); err == nil {
		for _, e := range existing {
			titleAuthors[normalizeKey(e.Title)] = e.Author
		}
	}

	for _, c := range candidates {
		label := fmt.Sprintf("%s — %s", c.Author, c.Title)
		if c.Date == "" {
			issues = append(issues, fmt.Sprintf("%s: missing date", label))
		}
		if len(c.Themes) == 0 {
			issues = append(issues, fmt.Sprintf("%s: no themes detected", label))
		}
		if len([]rune(strings.TrimSpace(c.Title))) < minTitleRunes {
			issues = append(issues, fmt.Sprintf("%s: suspiciously short title", label))
		}
		tk := normalizeKey(c.Title)
		if prior, ok := titleAuthors[tk]; ok && !strings.EqualFold(prior, c.Author) {
			issues = append(issues, fmt.Sprintf(
				"%s: title already catalogued under %s", label, prior))
		} else {
			titleAuthors[tk] = c.Author
		}
	}
	return issues
}

// Watch ingests documents dropped into dir until ctx is cancelled.
func (s *IngestService) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s for documents", dir)

	limiter := rate.NewLimiter(rate.Limit(watchEventsPerSecond), 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Create and the final Write both fire while a file is
			// being copied in; the rate limiter coalesces the burst
			// and deduplication absorbs any re-processing.
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			report, err := s.ProcessDocument(ctx, event.Name)
			if err != nil {
				logger.Warn("Ingestion of %s failed: %v", event.Name, err)
				continue
			}
			logger.Info("Ingested %s: %d entries added", report.Source, report.EntriesAdded)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
