// Package report renders the result records of a finished evaluation
// to files in several formats.
package report

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sapt/auditor/internal/models"
)

// Format names one of the supported output formats.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatODS  Format = "ods"
)

// Formats lists every supported format in generation order.
var Formats = []Format{FormatTXT, FormatCSV, FormatJSON, FormatXML, FormatODS}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

var csvHeader = []string{
	"ID", "Pergunta", "Classificação", "Fundamentação", "Atende",
	"Disponibilidade", "Atualidade", "Série Histórica",
	"Gravação de Relatórios", "Filtro de Pesquisa",
	"Link de Evidência", "Observação",
}

// Writer renders evaluation results into files under Dir.
type Writer struct {
	Dir string
	Now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, Now: time.Now}
}

func (w *Writer) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// fileName builds avaliacao_<entity>_<timestamp>.<ext> under Dir.
func (w *Writer) fileName(entityName string, format Format) string {
	stamp := w.now().Format("20060102_150405")
	name := fmt.Sprintf("avaliacao_%s_%s.%s", strings.ReplaceAll(entityName, " ", "_"), stamp, format)
	return filepath.Join(w.Dir, name)
}

// Write renders the results in one format and returns the file path.
func (w *Writer) Write(format Format, results []models.Result, entityName string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := w.fileName(entityName, format)

	var err error
	switch format {
	case FormatTXT:
		err = w.writeTXT(path, results, entityName)
	case FormatCSV:
		err = w.writeCSV(path, results)
	case FormatJSON:
		err = w.writeJSON(path, results, entityName)
	case FormatXML:
		err = w.writeXML(path, results, entityName)
	case FormatODS:
		err = w.writeODS(path, results, entityName)
	default:
		return "", fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("write %s report: %w", format, err)
	}
	return path, nil
}

// WriteAll renders the results in each requested format (all formats
// when none are given) and returns the path per format. A failing
// format does not stop the remaining ones.
func (w *Writer) WriteAll(results []models.Result, entityName string, formats ...Format) (map[Format]string, error) {
	if len(formats) == 0 {
		formats = Formats
	}
	paths := make(map[Format]string, len(formats))
	var firstErr error
	for _, f := range formats {
		path, err := w.Write(f, results, entityName)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		paths[f] = path
	}
	return paths, firstErr
}

func (w *Writer) writeTXT(path string, results []models.Result, entityName string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "AVALIAÇÃO DE TRANSPARÊNCIA - %s\n", entityName)
	fmt.Fprintf(&b, "Data da avaliação: %s\n\n", w.now().Format("02/01/2006 15:04:05"))

	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Pergunta", "Classificação", "Atende", "Evidência", "Observação"})
	for _, r := range results {
		t.AppendRow(table.Row{r.ID, r.Question, string(r.Classification), simNao(r.Satisfied), r.EvidenceURL, r.Note})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Pergunta", WidthMax: 60},
		{Name: "Observação", WidthMax: 40},
	})
	b.WriteString(t.Render())
	b.WriteString("\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func (w *Writer) writeCSV(path string, results []models.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
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
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonReport struct {
	EntityName string          `json:"orgao"`
	Date       string          `json:"data_avaliacao"`
	Results    []models.Result `json:"resultados"`
}

func (w *Writer) writeJSON(path string, results []models.Result, entityName string) error {
	doc := jsonReport{
		EntityName: entityName,
		Date:       w.now().Format("2006-01-02 15:04:05"),
		Results:    results,
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

type xmlItem struct {
	ID            string `xml:"ID"`
	Question      string `xml:"Pergunta"`
	Classificacao string `xml:"Classificacao"`
	LegalBasis    string `xml:"Fundamentacao"`
	Satisfied     string `xml:"Atende"`
	Note          string `xml:"Observacao,omitempty"`
	EvidenceURL   string `xml:"LinkEvidencia,omitempty"`
}

type xmlReport struct {
	XMLName xml.Name `xml:"AvaliacaoTransparencia"`
	Info    struct {
		EntityName string `xml:"Orgao"`
		Date       string `xml:"DataAvaliacao"`
	} `xml:"Informacoes"`
	Items []xmlItem `xml:"Resultados>Item"`
}

func (w *Writer) writeXML(path string, results []models.Result, entityName string) error {
	doc := xmlReport{}
	doc.Info.EntityName = entityName
	doc.Info.Date = w.now().Format("2006-01-02 15:04:05")
	for _, r := range results {
		doc.Items = append(doc.Items, xmlItem{
			ID:            r.ID,
			Question:      r.Question,
			Classificacao: string(r.Classification),
			LegalBasis:    r.LegalBasis,
			Satisfied:     simNao(r.Satisfied),
			Note:          r.Note,
			EvidenceURL:   r.EvidenceURL,
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out := append([]byte(xml.Header), data...)
	return os.WriteFile(path, append(out, '\n'), 0o644)
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// checkCell renders one check verdict, N/A when the check was not part
// of the criterion's applicable set.
func checkCell(r models.Result, check models.Check) string {
	verdict, ok := r.Checks[check]
	if !ok {
		return "N/A"
	}
	return simNao(verdict)
}
