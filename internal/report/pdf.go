package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/Orkogithub/nutanix-cluster-info/pkg/inventory"
)

const (
	pageMargin = 15.0 // mm
	lineFactor = 0.5  // line height in mm per point of font size
)

// pdfSection is one bordered table: a header row and a value row.
// Values are placeholder templates resolved with Substitute.
type pdfSection struct {
	headers []string
	values  []string
}

var pdfSections = []pdfSection{
	{
		headers: []string{"Cluster Name", "Cluster IP address", "# Nodes", "NOS Version"},
		values:  []string{"$cluster_name", "$cluster_ip", "$nodes", "$nos"},
	},
	{
		headers: []string{"Cluster UUID", "Full Version"},
		values:  []string{"$cluster_uuid", "$full_version"},
	},
	{headers: []string{"Hypervisors"}, values: []string{"$hypervisors"}},
	{headers: []string{"Models"}, values: []string{"$models"}},
	{
		headers: []string{"Cluster Timezone", "NTP Servers", "Name Servers"},
		values:  []string{"$timezone", "$ntp_servers", "$name_servers"},
	},
	{
		headers: []string{"Desired RF", "Actual RF"},
		values:  []string{"$desired_rf", "$actual_rf"},
	},
}

const (
	pdfIntro  = "Nutanix cluster details :: Generated on $day at $now by $name (logged in as $username)"
	pdfFooter = "Run ID $run_id"
)

var containerHeaders = []string{"Name", "Replication Factor", "Compression", "On-disk Dedup"}

// pdfWriter draws the report on a fixed A4 or Letter layout.
type pdfWriter struct {
	pdf        *fpdf.Fpdf
	tr         func(string) string
	font       string
	fontSize   float64
	lineHeight float64
	width      float64
}

func writePDF(w io.Writer, opts Options, meta Meta, fields *inventory.Fields) error {
	pdf := fpdf.New("P", "mm", opts.PageSize, "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle("Nutanix Cluster Details - "+fields.ClusterName, true)
	pdf.SetAuthor(meta.GeneratedBy, true)
	pdf.SetCreator("clusterinfo", false)
	pdf.SetCreationDate(meta.GeneratedAt)

	pageWidth, _ := pdf.GetPageSize()
	pw := &pdfWriter{
		pdf:        pdf,
		tr:         pdf.UnicodeTranslatorFromDescriptor(""),
		font:       opts.Font,
		fontSize:   opts.FontSize,
		lineHeight: opts.FontSize * lineFactor,
		width:      pageWidth - 2*pageMargin,
	}

	values := Values(meta, fields)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont(pw.font, "I", max(pw.fontSize-4, 6))
		pdf.CellFormat(0, pw.lineHeight, pw.tr(Substitute(pdfFooter, values)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, pw.lineHeight, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(pw.font, "", pw.fontSize)
	if pdf.Err() {
		return fmt.Errorf("failed to set up PDF: %w", pdf.Error())
	}

	pdf.MultiCell(pw.width, pw.lineHeight, pw.tr(Substitute(pdfIntro, values)), "", "L", false)
	pdf.Ln(pw.lineHeight)

	for _, section := range pdfSections {
		cells := make([]string, len(section.values))
		for i, v := range section.values {
			cells[i] = Substitute(v, values)
		}
		pw.table(section.headers, [][]string{cells})
	}

	pdf.SetFont(pw.font, "", pw.fontSize)
	pdf.CellFormat(pw.width, pw.lineHeight, pw.tr(Substitute("Storage containers: $container_count", values)), "", 1, "L", false, 0, "")
	rows := make([][]string, 0, len(fields.Containers))
	for _, c := range fields.Containers {
		rows = append(rows, []string{c.Name, c.ReplicationFactor, c.CompressionEnabled, c.OnDiskDedup})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"No storage containers", "", "", ""})
	}
	pw.table(containerHeaders, rows)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// table draws a bold header row followed by rows, columns of equal width,
// then leaves a gap of one line.
func (pw *pdfWriter) table(headers []string, rows [][]string) {
	widths := make([]float64, len(headers))
	for i := range widths {
		widths[i] = pw.width / float64(len(headers))
	}

	pw.pdf.SetFillColor(235, 235, 235)
	pw.pdf.SetFont(pw.font, "B", pw.fontSize)
	pw.row(widths, headers, true)

	pw.pdf.SetFont(pw.font, "", pw.fontSize)
	for _, r := range rows {
		pw.row(widths, r, false)
	}
	pw.pdf.Ln(pw.lineHeight)
}

// row draws one table row whose cells wrap and share the height of the tallest cell.
func (pw *pdfWriter) row(widths []float64, texts []string, fill bool) {
	pdf := pw.pdf

	// Translated text is cp1252 bytes, so lines are counted per byte
	lines := 1
	for i, text := range texts {
		if n := len(pdf.SplitLines([]byte(pw.tr(text)), widths[i])); n > lines {
			lines = n
		}
	}
	height := float64(lines) * pw.lineHeight

	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+height > pageHeight-pageMargin {
		pdf.AddPage()
	}

	x, y := pdf.GetXY()
	for i, text := range texts {
		style := "D"
		if fill {
			style = "FD"
		}
		pdf.Rect(x, y, widths[i], height, style)
		pdf.SetXY(x, y)
		pdf.MultiCell(widths[i], pw.lineHeight, pw.tr(text), "", "L", false)
		x += widths[i]
	}
	pdf.SetXY(pageMargin, y+height)
}
