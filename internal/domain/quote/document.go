package quote

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const AppName = "TANKAR IT QUOTE TOOL"

const (
	missingField    = "(não informado)"
	emptyNotes      = "(sem observações)"
	timestampLayout = "02/01/2006 15:04"
	dateLayout      = "02/01/2006"
)

var divider = strings.Repeat("-", 70)

var disclaimerLines = []string{
	"- Itens com 'sob consulta' poderão sofrer alteração após análise técnica.",
	"- Custos de transporte, quando aplicáveis, foram somados em 'Despesas' ou serão calculados separadamente.",
	"- Validade conforme indicada acima.",
}

// Document is the assembled, render-ready form of a quote. The plain-text
// export and the PDF renderer both consume the same Document, so the two
// outputs can never drift apart.
type Document struct {
	Title       string
	GeneratedAt string
	Client      string
	Contact     string
	Consultant  string
	Validity    string
	Items       []DocumentItem
	Notes       string
	Totals      []string
	Disclaimer  []string
}

// DocumentItem is one itemized block, numbered from 1 in insertion order.
type DocumentItem struct {
	Index       int
	Service     string
	Description string
	Details     string
	Subtotal    string
}

// Assemble renders q into a Document. The validity date and timestamp are
// resolved against now, never against the time the quote was built.
func Assemble(q *Quote, now time.Time) Document {
	fin := q.Summary()
	doc := Document{
		Title:       AppName,
		GeneratedAt: now.Format(timestampLayout),
		Client:      orMissing(q.Header.ClientName),
		Contact:     orMissing(q.Header.ClientContact),
		Consultant:  orMissing(q.Header.ConsultantName),
		Validity: fmt.Sprintf("%d dias (até %s)",
			q.Header.ValidityDays, q.Header.ValidityUntil(now).Format(dateLayout)),
		Notes:      notesOrPlaceholder(q.Notes),
		Disclaimer: disclaimerLines,
	}
	for i, it := range q.Items {
		doc.Items = append(doc.Items, DocumentItem{
			Index:       i + 1,
			Service:     it.Service,
			Description: orDash(it.Description),
			Details:     orDash(it.Details),
			Subtotal:    FormatBRL(it.Subtotal),
		})
	}
	doc.Totals = []string{
		"SUBTOTAL ITENS: " + FormatBRL(fin.ItemsSubtotal),
		"DESPESAS: " + FormatBRL(fin.Expenses),
		fmt.Sprintf("IMPOSTOS (%s%%): %s", fin.TaxPercent, FormatBRL(fin.TaxAmount)),
		fmt.Sprintf("MARGEM (%s%%): %s", fin.MarginPercent, FormatBRL(fin.MarginAmount)),
		"TOTAL GERAL: " + FormatBRL(fin.Total),
	}
	return doc
}

// Text renders the document as the newline-joined plain-text export.
func (d Document) Text() string {
	lines := []string{
		d.Title,
		"Data/Hora: " + d.GeneratedAt,
		divider,
		"Cliente: " + d.Client,
		"Contato: " + d.Contact,
		"Consultor Tankar: " + d.Consultant,
		"Validade: " + d.Validity,
		divider,
	}
	for _, it := range d.Items {
		lines = append(lines,
			fmt.Sprintf("Item %d: %s", it.Index, it.Service),
			"Descrição/Resumo: "+it.Description,
			"Detalhes: "+it.Details,
			"Subtotal: "+it.Subtotal,
			divider,
		)
	}
	lines = append(lines, "Informações gerais do orçamento:", d.Notes, divider)
	lines = append(lines, d.Totals...)
	lines = append(lines, "", "Observações:")
	lines = append(lines, d.Disclaimer...)
	return strings.Join(lines, "\n")
}

// ExportFilename builds the download filename for the given extension.
func ExportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("quote_TANKAR_%s.%s", now.Format("20060102_150405"), ext)
}

// SoftWrap inserts a breaking space after every maxChunk characters of a
// whitespace-free token so paginated output can always wrap the line. It
// only ever inserts spaces: existing whitespace is untouched and no
// character is dropped. Inputs whose tokens already fit are unchanged.
func SoftWrap(text string, maxChunk int) string {
	if text == "" || maxChunk < 1 {
		return text
	}
	var b strings.Builder
	run := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			run = 0
			b.WriteRune(r)
			continue
		}
		if run == maxChunk {
			b.WriteByte(' ')
			run = 0
		}
		b.WriteRune(r)
		run++
	}
	return b.String()
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return missingField
	}
	return s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func notesOrPlaceholder(s string) string {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return emptyNotes
}
