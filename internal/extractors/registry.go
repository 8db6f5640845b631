package extractors

import (
	"mime"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

// Registry selects extractors by MIME type. When several extractors
// claim a type the highest priority wins.
type Registry struct {
	byMIME map[string][]driven.Extractor
}

// NewRegistry creates a registry over the given extractors.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byMIME: make(map[string][]driven.Extractor)}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor for all its supported MIME types.
func (r *Registry) Register(e driven.Extractor) {
	for _, mt := range e.SupportedMIMETypes() {
		r.byMIME[mt] = append(r.byMIME[mt], e)
		sort.SliceStable(r.byMIME[mt], func(i, j int) bool {
			return r.byMIME[mt][i].Priority() > r.byMIME[mt][j].Priority()
		})
	}
}

// ForMIME returns the preferred extractor for a MIME type, or nil.
func (r *Registry) ForMIME(mimeType string) driven.Extractor {
	candidates := r.byMIME[mimeType]
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// ForDocument returns the preferred extractor for a raw document,
// or domain.ErrUnsupportedType when no extractor claims its MIME type.
func (r *Registry) ForDocument(raw *domain.RawDocument) (driven.Extractor, error) {
	if e := r.ForMIME(raw.MIMEType); e != nil {
		return e, nil
	}
	return nil, domain.ErrUnsupportedType
}

// customMIMETypes maps extensions the platform mime database may not
// know, plus the ones where we want a stable answer across platforms.
var customMIMETypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".tsv":  "text/tab-separated-values",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pdf":  "application/pdf",
}

// DetectMIMEType determines a file's MIME type from its extension.
// Parameters such as charset are stripped. Unknown extensions default
// to text/plain so the fallback extractor gets a chance.
func DetectMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mt, ok := customMIMETypes[ext]; ok {
		return mt
	}

	mt := mime.TypeByExtension(ext)
	if mt == "" {
		return "text/plain"
	}
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
