package domain

// YearRange is an inclusive span of parsed years.
// Negative years are BCE.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Extend widens the range to include year and returns the range.
// Extending a nil range allocates one, so callers can fold years into
// an initially-nil *YearRange.
func (r *YearRange) Extend(year int) *YearRange {
	if r == nil {
		return &YearRange{Min: year, Max: year}
	}
	if year < r.Min {
		r.Min = year
	}
	if year > r.Max {
		r.Max = year
	}
	return r
}

// Statistics summarises the catalog for the stats view.
type Statistics struct {
	// TotalEntries is the number of entries in the catalog.
	TotalEntries int `json:"total_entries"`

	// TotalAuthors is the number of distinct author keys.
	TotalAuthors int `json:"total_authors"`

	// TotalThemes is the number of distinct theme labels.
	TotalThemes int `json:"total_themes"`

	// TotalSources is the number of distinct source tags.
	TotalSources int `json:"sources"`

	// DateRange spans the parsable dates, nil when none parse.
	DateRange *YearRange `json:"date_range,omitempty"`
}

// IngestReport is the terminal output of one ingestion run.
type IngestReport struct {
	// RunID uniquely identifies the ingestion run.
	RunID string `json:"run_id"`

	// Source is the originating file name or identifier.
	Source string `json:"source"`

	// EntriesAdded is the number of entries committed to the catalog.
	EntriesAdded int `json:"entries_added"`

	// DuplicatesFound is the number of candidates dropped as duplicates.
	DuplicatesFound int `json:"duplicates_found"`

	// ThemesDetected collects the themes assigned across new entries.
	ThemesDetected []string `json:"themes_detected"`

	// QualityIssues lists human-readable data-quality flags.
	// Issues never block commit.
	QualityIssues []string `json:"quality_issues"`

	// DateRange spans the parsable dates of new entries, nil when none.
	DateRange *YearRange `json:"date_range,omitempty"`
}
