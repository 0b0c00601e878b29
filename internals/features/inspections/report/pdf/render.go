package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ptiadmin_backend/internals/constants"
	"ptiadmin_backend/internals/features/inspections/report"
)

const (
	pageMargin   = 12.0
	lineH        = 5.5
	photoW       = 88.0
	photoGap     = 6.0
	photoLabelH  = 5.0
	loadFailText = "No se pudo cargar"
)

// Document is what gets printed for one submission.
type Document struct {
	SubmissionID string
	CreatedAt    time.Time
	Report       report.Report
}

type Options struct {
	PhotoTimeout     time.Duration // per photo; 0 means 15s
	MaxPhotoPx       int           // longest side after downscale; 0 means 1200
	FetchConcurrency int           // 0 means 4
	Location         *time.Location
	Logger           *zap.Logger
	Now              func() time.Time
}

// Renderer prints normalized reports. Photo download or decode failures
// are drawn as a notice and never abort the document.
type Renderer struct {
	fetcher PhotoFetcher
	opts    Options
	log     *zap.Logger
}

func NewRenderer(fetcher PhotoFetcher, opts Options) *Renderer {
	if opts.PhotoTimeout <= 0 {
		opts.PhotoTimeout = 15 * time.Second
	}
	if opts.MaxPhotoPx <= 0 {
		opts.MaxPhotoPx = 1200
	}
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = 4
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = zap.L()
	}
	return &Renderer{fetcher: fetcher, opts: opts, log: log.Named("pdf")}
}

type loadedPhoto struct {
	jpeg []byte
	w, h int
	err  error
}

// Render writes the PDF to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, doc Document) error {
	photos := r.loadPhotos(ctx, doc.Report.Joined)
	if err := ctx.Err(); err != nil {
		return err
	}

	p := &page{
		pdf: fpdf.New("P", "mm", "A4", ""),
	}
	p.tr = p.pdf.UnicodeTranslatorFromDescriptor("")
	p.pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	p.pdf.SetAutoPageBreak(true, 16)
	p.pdf.AliasNbPages("")
	p.pdf.SetTitle(p.tr(plain("Reporte "+doc.Report.FormLabel)), false)

	generated := r.opts.Now().In(r.opts.Location).Format("02/01/2006 15:04")
	p.pdf.SetFooterFunc(func() {
		p.pdf.SetY(-12)
		p.pdf.SetFont("Helvetica", "I", 8)
		p.pdf.SetTextColor(120, 120, 120)
		p.pdf.CellFormat(0, 5, p.text(fmt.Sprintf("Generado %s", generated)), "", 0, "L", false, 0, "")
		p.pdf.CellFormat(0, 5, p.tr(fmt.Sprintf("Página %d/{nb}", p.pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	p.pdf.AddPage()
	r.drawHeader(p, doc)
	r.drawSite(p, doc.Report.Site)

	for _, sec := range doc.Report.Joined {
		p.sectionTitle(sec.Title)
		switch sec.Kind {
		case report.KindFields:
			p.fields(sec.Fields)
		case report.KindChecklist:
			p.checklist(sec.Rows)
		case report.KindTable:
			if sec.Table != nil {
				p.table(*sec.Table)
			}
		}
		if len(sec.Photos) > 0 {
			p.photos(sec.Photos, photos)
		}
		p.pdf.Ln(3)
	}

	if p.pdf.Err() {
		return fmt.Errorf("render pdf: %w", p.pdf.Error())
	}
	return p.pdf.Output(w)
}

// loadPhotos downloads and prepares every photo in parallel. Results are
// keyed by asset id.
func (r *Renderer) loadPhotos(ctx context.Context, sections []report.ReportSection) map[string]loadedPhoto {
	out := map[string]loadedPhoto{}
	if r.fetcher == nil {
		return out
	}

	var todo []report.LabeledAsset
	seen := map[string]bool{}
	for _, sec := range sections {
		for _, a := range sec.Photos {
			if !seen[a.ID] {
				seen[a.ID] = true
				todo = append(todo, a)
			}
		}
	}

	results := make([]loadedPhoto, len(todo))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.FetchConcurrency)
	for i, a := range todo {
		g.Go(func() error {
			results[i] = r.loadOne(gctx, a.PublicURL)
			if err := results[i].err; err != nil {
				r.log.Warn("photo unavailable", zap.String("asset_id", a.ID), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, a := range todo {
		out[a.ID] = results[i]
	}
	return out
}

func (r *Renderer) loadOne(ctx context.Context, url string) loadedPhoto {
	ctx, cancel := context.WithTimeout(ctx, r.opts.PhotoTimeout)
	defer cancel()

	if !constants.MaybeImage(url) {
		return loadedPhoto{err: fmt.Errorf("not an image: %s", url)}
	}
	raw, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return loadedPhoto{err: err}
	}
	jpg, w, h, err := preparePhoto(raw, r.opts.MaxPhotoPx)
	if err != nil {
		return loadedPhoto{err: err}
	}
	return loadedPhoto{jpeg: jpg, w: w, h: h}
}

func (r *Renderer) drawHeader(p *page, doc Document) {
	pdf := p.pdf
	pdf.SetFillColor(30, 64, 175)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 10, p.text("Reporte de Inspección PTI"), "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	label := doc.Report.FormLabel
	if label == "" {
		label = doc.Report.FormCode
	}
	pdf.CellFormat(0, 7, p.text(label), "", 1, "L", true, 0, "")

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 8)
	meta := []string{}
	if doc.SubmissionID != "" {
		meta = append(meta, "ID: "+doc.SubmissionID)
	}
	if !doc.CreatedAt.IsZero() {
		meta = append(meta, "Creado: "+doc.CreatedAt.In(r.opts.Location).Format("02/01/2006 15:04"))
	}
	if len(meta) > 0 {
		pdf.CellFormat(0, 6, p.text(strings.Join(meta, "   ")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

func (r *Renderer) drawSite(p *page, site report.SiteInfo) {
	rows := []report.FieldValue{
		{Label: "Sitio", Value: site.NombreSitio},
		{Label: "ID Sitio", Value: site.IDSitio},
		{Label: "Proveedor", Value: site.Proveedor},
		{Label: "Tipo de sitio", Value: site.TipoSitio},
		{Label: "Dirección", Value: site.Direccion},
		{Label: "Coordenadas", Value: site.Coordenadas},
	}
	kept := rows[:0]
	for _, f := range rows {
		if f.Value != "" {
			kept = append(kept, f)
		}
	}
	p.sectionTitle("Sitio")
	p.fields(kept)
	p.pdf.Ln(3)
}

/* ===============================
   Page drawing primitives
=================================*/

type page struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	seq int
}

func (p *page) text(s string) string { return p.tr(plain(s)) }

func (p *page) contentWidth() float64 {
	w, _ := p.pdf.GetPageSize()
	l, _, r, _ := p.pdf.GetMargins()
	return w - l - r
}

func (p *page) ensureSpace(h float64) {
	_, ph := p.pdf.GetPageSize()
	_, _, _, bottom := p.pdf.GetMargins()
	if p.pdf.GetY()+h > ph-bottom {
		p.pdf.AddPage()
	}
}

func (p *page) sectionTitle(title string) {
	p.ensureSpace(16)
	p.pdf.SetFillColor(229, 231, 235)
	p.pdf.SetTextColor(17, 24, 39)
	p.pdf.SetFont("Helvetica", "B", 11)
	p.pdf.CellFormat(0, 7, p.tr(heading(title)), "", 1, "L", true, 0, "")
	p.pdf.Ln(1)
}

func (p *page) fields(fields []report.FieldValue) {
	labelW := 62.0
	valueW := p.contentWidth() - labelW
	for _, f := range fields {
		lines := p.pdf.SplitText(p.text(f.Value), valueW)
		if len(lines) == 0 {
			lines = []string{""}
		}
		p.ensureSpace(float64(len(lines)) * lineH)
		y := p.pdf.GetY()
		x := p.pdf.GetX()
		p.pdf.SetFont("Helvetica", "B", 9)
		p.pdf.SetTextColor(55, 65, 81)
		p.pdf.CellFormat(labelW, lineH, p.text(f.Label), "", 0, "L", false, 0, "")
		p.pdf.SetFont("Helvetica", "", 9)
		p.pdf.SetTextColor(17, 24, 39)
		p.pdf.MultiCell(valueW, lineH, p.text(f.Value), "", "L", false)
		if p.pdf.GetY() < y+lineH {
			p.pdf.SetXY(x, y+lineH)
		}
	}
}

func (p *page) checklist(rows []report.ChecklistRow) {
	cw := p.contentWidth()
	widths := []float64{12, cw - 12 - 32 - 24, 32, 24}

	p.pdf.SetFont("Helvetica", "B", 8)
	p.pdf.SetFillColor(243, 244, 246)
	for i, h := range []string{"#", "Ítem", "Estado", "Valor"} {
		p.pdf.CellFormat(widths[i], 6, p.text(h), "B", 0, "L", true, 0, "")
	}
	p.pdf.Ln(-1)

	p.pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		p.ensureSpace(lineH * 2)
		p.pdf.SetTextColor(17, 24, 39)
		p.pdf.CellFormat(widths[0], lineH, p.text(row.Number), "", 0, "L", false, 0, "")
		p.pdf.CellFormat(widths[1], lineH, p.fit(row.Label, widths[1]), "", 0, "L", false, 0, "")
		p.pdf.CellFormat(widths[2], lineH, p.text(row.Status), "", 0, "L", false, 0, "")
		p.pdf.CellFormat(widths[3], lineH, p.fit(row.Value, widths[3]), "", 1, "L", false, 0, "")
		if row.Observation != "" {
			p.pdf.SetX(p.pdf.GetX() + widths[0])
			p.pdf.SetFont("Helvetica", "I", 8)
			p.pdf.SetTextColor(107, 114, 128)
			p.pdf.MultiCell(cw-widths[0], 4.5, p.text("Obs: "+row.Observation), "", "L", false)
			p.pdf.SetFont("Helvetica", "", 8)
		}
	}
}

func (p *page) table(t report.Table) {
	if len(t.Columns) == 0 {
		return
	}
	colW := p.contentWidth() / float64(len(t.Columns))
	p.pdf.SetFont("Helvetica", "B", 8)
	p.pdf.SetFillColor(243, 244, 246)
	p.pdf.SetTextColor(17, 24, 39)
	for _, c := range t.Columns {
		p.pdf.CellFormat(colW, 6, p.fit(c, colW), "B", 0, "L", true, 0, "")
	}
	p.pdf.Ln(-1)

	p.pdf.SetFont("Helvetica", "", 8)
	for _, row := range t.Rows {
		p.ensureSpace(lineH)
		for i := range t.Columns {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			p.pdf.CellFormat(colW, lineH, p.fit(v, colW), "", 0, "L", false, 0, "")
		}
		p.pdf.Ln(-1)
	}
}

// fit truncates s to a single line of width w.
func (p *page) fit(s string, w float64) string {
	t := p.text(s)
	if p.pdf.GetStringWidth(t) <= w-1 {
		return t
	}
	for len(t) > 0 && p.pdf.GetStringWidth(t+"...") > w-1 {
		t = t[:len(t)-1]
	}
	return t + "..."
}

func (p *page) photos(assets []report.LabeledAsset, loaded map[string]loadedPhoto) {
	left, _, _, _ := p.pdf.GetMargins()
	col := 0
	rowH := 0.0
	rowY := p.pdf.GetY()

	for _, a := range assets {
		lp := loaded[a.ID]
		h := 10.0
		if lp.err == nil && lp.w > 0 {
			h = photoW * float64(lp.h) / float64(lp.w)
			if h > 110 {
				h = 110
			}
		}
		if col == 0 {
			p.ensureSpace(h + photoLabelH + 2)
			rowY = p.pdf.GetY()
			rowH = 0
		}
		x := left + float64(col)*(photoW+photoGap)

		if lp.err != nil || lp.jpeg == nil {
			p.pdf.SetXY(x, rowY)
			p.pdf.SetFont("Helvetica", "I", 8)
			p.pdf.SetTextColor(185, 28, 28)
			p.pdf.MultiCell(photoW, 5, p.text(loadFailText+": "+a.Label), "1", "C", false)
		} else {
			p.seq++
			name := fmt.Sprintf("photo-%d", p.seq)
			opt := fpdf.ImageOptions{ImageType: "JPG"}
			p.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(lp.jpeg))
			w := photoW
			if h == 110 {
				w = h * float64(lp.w) / float64(lp.h)
			}
			p.pdf.ImageOptions(name, x, rowY, w, h, false, opt, 0, "")
			p.pdf.SetXY(x, rowY+h)
			p.pdf.SetFont("Helvetica", "", 7.5)
			p.pdf.SetTextColor(75, 85, 99)
			p.pdf.CellFormat(photoW, photoLabelH, p.fit(a.Label, photoW), "", 0, "C", false, 0, "")
		}

		if h+photoLabelH > rowH {
			rowH = h + photoLabelH
		}
		col++
		if col == 2 {
			col = 0
			p.pdf.SetXY(left, rowY+rowH+2)
		}
	}
	if col != 0 {
		p.pdf.SetXY(left, rowY+rowH+2)
	}
}
