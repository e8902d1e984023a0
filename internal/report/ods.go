package report

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/sapt/auditor/internal/models"
)

const odsMimeType = "application/vnd.oasis.opendocument.spreadsheet"

const odsManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="` + odsMimeType + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

// writeODS emits an OpenDocument spreadsheet with a results sheet and
// an information sheet. The mimetype entry must come first and must be
// stored uncompressed.
func (w *Writer) writeODS(path string, results []models.Result, entityName string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	mime, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := mime.Write([]byte(odsMimeType)); err != nil {
		return err
	}

	manifest, err := zw.Create("META-INF/manifest.xml")
	if err != nil {
		return err
	}
	if _, err := manifest.Write([]byte(odsManifest)); err != nil {
		return err
	}

	content, err := zw.Create("content.xml")
	if err != nil {
		return err
	}
	if _, err := content.Write([]byte(w.odsContent(results, entityName))); err != nil {
		return err
	}

	return zw.Close()
}

func (w *Writer) odsContent(results []models.Result, entityName string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">` + "\n")
	b.WriteString(" <office:body>\n  <office:spreadsheet>\n")

	writeSheet(&b, "Resultados", resultRows(results))
	writeSheet(&b, "Informações", [][]string{
		{"Informação", "Valor"},
		{"Órgão", entityName},
		{"Data da Avaliação", w.now().Format("2006-01-02 15:04:05")},
	})

	b.WriteString("  </office:spreadsheet>\n </office:body>\n</office:document-content>\n")
	return b.String()
}

func resultRows(results []models.Result) [][]string {
	rows := [][]string{csvHeader}
	for _, r := range results {
		rows = append(rows, []string{
			r.ID,
			r.Question,
			string(r.Classification),
			r.LegalBasis,
			simNao(r.Satisfied),
			checkCell(r, models.CheckAvailability),
			checkCell(r, models.CheckRecency),
			checkCell(r, models.CheckHistoricalSeries),
			checkCell(r, models.CheckReportDownload),
			checkCell(r, models.CheckSearchFilter),
			r.EvidenceURL,
			r.Note,
		})
	}
	return rows
}

func writeSheet(b *strings.Builder, name string, rows [][]string) {
	fmt.Fprintf(b, "   <table:table table:name=%q>\n", name)
	for _, row := range rows {
		b.WriteString("    <table:table-row>\n")
		for _, cell := range row {
			b.WriteString(`     <table:table-cell office:value-type="string"><text:p>`)
			xml.EscapeText(b, []byte(cell))
			b.WriteString("</text:p></table:table-cell>\n")
		}
		b.WriteString("    </table:table-row>\n")
	}
	b.WriteString("   </table:table>\n")
}
