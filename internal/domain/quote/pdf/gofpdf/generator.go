package gofpdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"tankar/quote_backend/internal/domain/quote"
)

const defaultWrapChunk = 40

// Generator renders an assembled quote document to PDF: a cover page with
// the optional logo and header block, then the itemized body. Core fonts
// are single-byte, so text goes through the cp1252 translator and unmapped
// characters degrade to its replacement.
type Generator struct {
	LogoPath  string
	WrapChunk int
}

func New(logoPath string, wrapChunk int) *Generator {
	if wrapChunk < 1 {
		wrapChunk = defaultWrapChunk
	}
	return &Generator{LogoPath: logoPath, WrapChunk: wrapChunk}
}

func (g *Generator) Generate(doc quote.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, false)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	wrap := func(s string) string { return tr(quote.SoftWrap(s, g.WrapChunk)) }

	g.cover(pdf, doc, wrap)
	g.body(pdf, doc, wrap)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) cover(pdf *gofpdf.Fpdf, doc quote.Document, wrap func(string) string) {
	pdf.AddPage()
	if g.logoRenderable() {
		pdf.ImageOptions(g.LogoPath, 60, 35, 90, 0, false, gofpdf.ImageOptions{}, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Ln(95)
	pdf.CellFormat(0, 12, wrap(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, wrap("Data/Hora: "+doc.GeneratedAt), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, wrap("Dados do Orçamento"), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, wrap("Cliente: "+doc.Client), "", "", false)
	pdf.MultiCell(0, 6, wrap("Contato: "+doc.Contact), "", "", false)
	pdf.MultiCell(0, 6, wrap("Consultor Tankar: "+doc.Consultant), "", "", false)
	pdf.MultiCell(0, 6, wrap("Validade do orçamento: "+doc.Validity), "", "", false)
	pdf.Ln(2)
	pdf.MultiCell(0, 6, wrap("Orçamento gerado automaticamente pelo sistema de propostas da Tankar IT Services."), "", "", false)
}

func (g *Generator) body(pdf *gofpdf.Fpdf, doc quote.Document, wrap func(string) string) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, wrap("Resumo do Orçamento"), "", 1, "", false, 0, "")

	for _, it := range doc.Items {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, wrap(fmt.Sprintf("Item %d: %s", it.Index, it.Service)), "", 1, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, wrap("Descrição/Resumo: "+it.Description), "", "", false)
		pdf.MultiCell(0, 6, wrap("Detalhes: "+it.Details), "", "", false)
		pdf.MultiCell(0, 6, wrap("Subtotal: "+it.Subtotal), "", "", false)
		pdf.Ln(1)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, wrap("Informações gerais"), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, wrap(doc.Notes), "", "", false)
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, wrap("Totais e Condições"), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.Totals {
		pdf.MultiCell(0, 6, wrap(line), "", "", false)
	}
	pdf.Ln(2)
	for _, line := range doc.Disclaimer {
		pdf.MultiCell(0, 6, wrap(line), "", "", false)
	}
}

// logoRenderable checks the branding asset against a scratch document, so a
// missing or corrupt file cannot poison the real one. The logo is optional:
// when it cannot be used, the cover simply renders without it.
func (g *Generator) logoRenderable() bool {
	if g.LogoPath == "" {
		return false
	}
	if _, err := os.Stat(g.LogoPath); err != nil {
		return false
	}
	scratch := gofpdf.New("P", "mm", "A4", "")
	scratch.AddPage()
	scratch.ImageOptions(g.LogoPath, 10, 10, 10, 0, false, gofpdf.ImageOptions{}, 0, "")
	return scratch.Error() == nil
}
