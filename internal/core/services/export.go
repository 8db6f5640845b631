package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driving"
	"github.com/custodia-labs/folio-cli/internal/logger"
)

var _ driving.ExportService = (*ExportService)(nil)

// ExportService writes catalog entries to files through a registry of
// format-specific exporters.
type ExportService struct {
	dir       string
	exporters map[string]driven.Exporter
}

// NewExportService creates an export service writing into dir.
func NewExportService(dir string, exporters ...driven.Exporter) *ExportService {
	byFormat := make(map[string]driven.Exporter, len(exporters))
	for _, exporter := range exporters {
		byFormat[exporter.Format()] = exporter
	}
	return &ExportService{dir: dir, exporters: byFormat}
}

// Export writes entries in the named format and returns the file path.
func (s *ExportService) Export(ctx context.Context, entries []domain.Entry, format string) (string, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return "", fmt.Errorf("export format %q: %w", format, domain.ErrUnsupportedType)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	name := fmt.Sprintf("folio-%s-%s.%s",
		time.Now().Format("20060102-150405"),
		uuid.NewString()[:8],
		exporter.Extension())
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	if err := exporter.Export(file, entries); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("export %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}

	logger.Info("Exported %d entries to %s", len(entries), path)
	return path, nil
}

// Formats returns the supported format names, sorted.
func (s *ExportService) Formats() []string {
	formats := make([]string, 0, len(s.exporters))
	for format := range s.exporters {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
