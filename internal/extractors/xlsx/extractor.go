// Package xlsx extracts catalog entries from XLSX workbooks.
//
// Only the first worksheet is read. The OOXML archive is parsed with
// the same zip + XML technique the DOCX extractor uses; rows then go
// through the shared tabular header heuristics.
package xlsx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/extractors/tabular"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles XLSX workbooks.
type Extractor struct{}

// New creates a new XLSX extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Format-specific extractor
}

// Extract reads the first worksheet's rows into candidate entries.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) ([]domain.Entry, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := filepath.Base(raw.URI)

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%s: not an XLSX archive: %w", source, domain.ErrExtraction)
	}

	shared, err := readSharedStrings(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", source, err, domain.ErrExtraction)
	}

	rows, err := readFirstSheet(reader, shared)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", source, err, domain.ErrExtraction)
	}

	return tabular.EntriesFromRows(rows, source), nil
}

// sharedStringsXML represents xl/sharedStrings.xml.
type sharedStringsXML struct {
	Items []struct {
		Text string `xml:"t"`
	} `xml:"si"`
}

func readSharedStrings(reader *zip.Reader) ([]string, error) {
	content, ok, err := readArchiveFile(reader, "xl/sharedStrings.xml")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil // Workbook with only inline or numeric cells
	}

	var shared sharedStringsXML
	if err := xml.Unmarshal(content, &shared); err != nil {
		return nil, err
	}

	strs := make([]string, len(shared.Items))
	for i, item := range shared.Items {
		strs[i] = item.Text
	}
	return strs, nil
}

// worksheetXML represents the cell grid of one worksheet.
type worksheetXML struct {
	Rows []struct {
		Cells []cellXML `xml:"c"`
	} `xml:"sheetData>row"`
}

type cellXML struct {
	Ref    string `xml:"r,attr"`
	Type   string `xml:"t,attr"`
	Value  string `xml:"v"`
	Inline struct {
		Text string `xml:"t"`
	} `xml:"is"`
}

func readFirstSheet(reader *zip.Reader, shared []string) ([][]string, error) {
	// Worksheets are conventionally numbered; take the lowest.
	var names []string
	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, "xl/worksheets/sheet") && strings.HasSuffix(file.Name, ".xml") {
			names = append(names, file.Name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	content, _, err := readArchiveFile(reader, names[0])
	if err != nil {
		return nil, err
	}

	var sheet worksheetXML
	if err := xml.Unmarshal(content, &sheet); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		var cells []string
		for _, cell := range row.Cells {
			col := columnIndex(cell.Ref)
			for len(cells) <= col {
				cells = append(cells, "")
			}
			cells[col] = cellValue(cell, shared)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func cellValue(cell cellXML, shared []string) string {
	switch cell.Type {
	case "s":
		idx, err := strconv.Atoi(cell.Value)
		if err != nil || idx < 0 || idx >= len(shared) {
			return ""
		}
		return shared[idx]
	case "inlineStr":
		return cell.Inline.Text
	default:
		return cell.Value
	}
}

// columnIndex converts a cell reference ("B3") to a zero-based column.
func columnIndex(ref string) int {
	col := 0
	for _, r := range ref {
		if r < 'A' || r > 'Z' {
			break
		}
		col = col*26 + int(r-'A') + 1
	}
	if col == 0 {
		return 0
	}
	return col - 1
}

func readArchiveFile(reader *zip.Reader, name string) ([]byte, bool, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, false, err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, false, err
		}
		return content, true, nil
	}
	return nil, false, nil
}
