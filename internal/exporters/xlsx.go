package exporters

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

var _ driven.Exporter = (*XLSX)(nil)

// XLSX exports entries as a minimal Office Open XML workbook with a
// single sheet. Cells are written as inline strings, so no shared
// string table is needed.
type XLSX struct{}

// NewXLSX creates an XLSX exporter.
func NewXLSX() *XLSX {
	return &XLSX{}
}

func (e *XLSX) Format() string    { return "xlsx" }
func (e *XLSX) Extension() string { return "xlsx" }

const xlsxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
  <Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>
`

const xlsxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>
`

const xlsxWorkbook = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Catalog" sheetId="1" r:id="rId1"/>
  </sheets>
</workbook>
`

const xlsxWorkbookRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>
`

func (e *XLSX) Export(w io.Writer, entries []domain.Entry) error {
	archive := zip.NewWriter(w)

	static := []struct{ name, content string }{
		{"[Content_Types].xml", xlsxContentTypes},
		{"_rels/.rels", xlsxRootRels},
		{"xl/workbook.xml", xlsxWorkbook},
		{"xl/_rels/workbook.xml.rels", xlsxWorkbookRels},
	}
	for _, part := range static {
		file, err := archive.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := io.WriteString(file, part.content); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	sheet, err := archive.Create("xl/worksheets/sheet1.xml")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writeSheet(sheet, entries); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}

	return archive.Close()
}

func writeSheet(w io.Writer, entries []domain.Entry) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` + "\n")
	b.WriteString("  <sheetData>\n")

	writeRow(&b, 1, entryHeader)
	for i := range entries {
		writeRow(&b, i+2, entryRecord(&entries[i]))
	}

	b.WriteString("  </sheetData>\n")
	b.WriteString("</worksheet>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, rowNum int, cells []string) {
	fmt.Fprintf(b, `    <row r="%d">`, rowNum)
	for i, cell := range cells {
		ref := fmt.Sprintf("%s%d", columnName(i), rowNum)
		fmt.Fprintf(b, `<c r="%s" t="inlineStr"><is><t>%s</t></is></c>`, ref, escapeXML(cell))
	}
	b.WriteString("</row>\n")
}

// columnName converts a zero-based column index to A1-style letters.
func columnName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
