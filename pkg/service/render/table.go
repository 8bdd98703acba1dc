package render

import (
	"bytes"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	tableWidth   = 1000
	tableRowH    = 48
	tableHeaderH = 56
	tableFontPt  = 17
)

var (
	fontOnce    sync.Once
	regularFace font.Face
	boldFace    font.Face
	fontErr     error
)

func tableFaces() (font.Face, font.Face, error) {
	fontOnce.Do(func() {
		regular, err := truetype.Parse(goregular.TTF)
		if err != nil {
			fontErr = goerr.Wrap(err, "failed to parse regular font")
			return
		}
		bold, err := truetype.Parse(gobold.TTF)
		if err != nil {
			fontErr = goerr.Wrap(err, "failed to parse bold font")
			return
		}
		regularFace = truetype.NewFace(regular, &truetype.Options{Size: tableFontPt})
		boldFace = truetype.NewFace(bold, &truetype.Options{Size: tableFontPt})
	})
	return regularFace, boldFace, fontErr
}

// renderTable draws a header row plus data rows as a PNG. Column width
// fractions match the cutoff table shape when there are four columns and
// fall back to equal widths otherwise.
func renderTable(headers []string, rows [][]string) ([]byte, error) {
	regular, bold, err := tableFaces()
	if err != nil {
		return nil, err
	}

	cols := len(headers)
	fractions := []float64{0.15, 0.6, 0.15, 0.1}
	if cols != len(fractions) {
		fractions = make([]float64, cols)
		for i := range fractions {
			fractions[i] = 1.0 / float64(cols)
		}
	}

	height := tableHeaderH + tableRowH*len(rows)
	dc := gg.NewContext(tableWidth, height)

	dc.SetHexColor("#ffffff")
	dc.Clear()

	colX := make([]float64, cols+1)
	for i := 0; i < cols; i++ {
		colX[i+1] = colX[i] + fractions[i]*tableWidth
	}

	// header row
	dc.SetHexColor("#40466e")
	dc.DrawRectangle(0, 0, tableWidth, tableHeaderH)
	dc.Fill()
	dc.SetFontFace(bold)
	dc.SetHexColor("#ffffff")
	for i, h := range headers {
		cx := (colX[i] + colX[i+1]) / 2
		dc.DrawStringAnchored(h, cx, tableHeaderH/2, 0.5, 0.35)
	}

	// data rows with alternating backgrounds
	dc.SetFontFace(regular)
	for ri, row := range rows {
		y := float64(tableHeaderH + ri*tableRowH)
		if ri%2 == 0 {
			dc.SetHexColor("#f8f9fa")
		} else {
			dc.SetHexColor("#ffffff")
		}
		dc.DrawRectangle(0, y, tableWidth, tableRowH)
		dc.Fill()

		dc.SetHexColor("#333333")
		for ci := 0; ci < cols && ci < len(row); ci++ {
			cx := (colX[ci] + colX[ci+1]) / 2
			dc.DrawStringAnchored(row[ci], cx, y+tableRowH/2, 0.5, 0.35)
		}
	}

	// cell borders
	dc.SetHexColor("#000000")
	dc.SetLineWidth(1)
	for i := 0; i <= cols; i++ {
		dc.DrawLine(colX[i], 0, colX[i], float64(height))
		dc.Stroke()
	}
	dc.DrawLine(0, 0, tableWidth, 0)
	dc.Stroke()
	dc.DrawLine(0, tableHeaderH, tableWidth, tableHeaderH)
	dc.Stroke()
	for ri := 1; ri <= len(rows); ri++ {
		y := float64(tableHeaderH + ri*tableRowH)
		dc.DrawLine(0, y, tableWidth, y)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to encode table image")
	}
	return buf.Bytes(), nil
}
