package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/sfnt"

	"mood-weather/internal/mood"
)

var ErrFontLoad = errors.New("font could not be loaded")

// PageLayout is in millimetres, y measured from the top of the page.
type PageLayout struct {
	Width, Height float64

	MarginLeft, MarginRight float64
	MarginTop, MarginBottom float64

	TitleSize, BodySize float64
	TitleGap, RuleGap   float64
	LineHeight          float64

	// CharWidth is the rough body glyph width used to derive the wrap column.
	CharWidth float64
	MinWrap   int
}

var A4 = PageLayout{
	Width:        210,
	Height:       297,
	MarginLeft:   15,
	MarginRight:  15,
	MarginTop:    15,
	MarginBottom: 20,
	TitleSize:    16,
	BodySize:     11,
	TitleGap:     10,
	RuleGap:      6,
	LineHeight:   6,
	CharWidth:    2.5,
	MinWrap:      25,
}

func (l PageLayout) UsableWidth() float64 {
	return l.Width - l.MarginLeft - l.MarginRight
}

// WrapWidth is the character count at which body lines are cut.
func (l PageLayout) WrapWidth() int {
	n := int(l.UsableWidth() / l.CharWidth)
	if n < l.MinWrap {
		return l.MinWrap
	}
	return n
}

// Wrap cuts line into chunks of at most width runes, ignoring word boundaries.
func Wrap(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width || width <= 0 {
		return []string{line}
	}

	var chunks []string
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

type PlacedLine struct {
	Y    float64
	Text string
}

// Page holds the body lines of one page. Only the first page carries the
// title and rule, at TitleY and RuleY.
type Page struct {
	Lines []PlacedLine
}

func (l PageLayout) TitleY() float64 { return l.MarginTop }
func (l PageLayout) RuleY() float64  { return l.MarginTop + l.TitleGap }

// Paginate flows lines top-down, wrapping each and opening a new page when
// the next baseline would fall inside the bottom margin plus one line.
func (l PageLayout) Paginate(lines []string) []Page {
	limit := l.Height - l.MarginBottom - l.LineHeight
	wrap := l.WrapWidth()

	pages := []Page{{}}
	y := l.RuleY() + l.RuleGap
	for _, line := range lines {
		for _, chunk := range Wrap(line, wrap) {
			if y >= limit {
				pages = append(pages, Page{})
				y = l.MarginTop
			}
			cur := &pages[len(pages)-1]
			cur.Lines = append(cur.Lines, PlacedLine{Y: y, Text: chunk})
			y += l.LineHeight
		}
	}
	return pages
}

const fontFamily = "body"

// PDF writes the entry log as an A4 document set in the given TrueType font.
func PDF(w io.Writer, entries []mood.Entry, font []byte) error {
	return A4.PDF(w, entries, font)
}

func (l PageLayout) PDF(w io.Writer, entries []mood.Entry, font []byte) (err error) {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	if _, perr := sfnt.Parse(font); perr != nil {
		return fmt.Errorf("%w: %v", ErrFontLoad, perr)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFontLoad, r)
		}
	}()

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: l.Width, Ht: l.Height},
	})
	doc.SetTitle(DocumentTitle, true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(l.MarginLeft, l.MarginTop, l.MarginRight)
	doc.AddUTF8FontFromBytes(fontFamily, "", font)
	if doc.Err() {
		return fmt.Errorf("%w: %v", ErrFontLoad, doc.Error())
	}

	for i, page := range l.Paginate(Lines(entries)) {
		doc.AddPage()
		if i == 0 {
			doc.SetFont(fontFamily, "", l.TitleSize)
			doc.Text(l.MarginLeft, l.TitleY(), DocumentTitle)
			doc.SetLineWidth(0.3)
			doc.Line(l.MarginLeft, l.RuleY(), l.Width-l.MarginRight, l.RuleY())
		}
		doc.SetFont(fontFamily, "", l.BodySize)
		for _, line := range page.Lines {
			doc.Text(l.MarginLeft, line.Y, line.Text)
		}
	}

	if doc.Err() {
		return fmt.Errorf("render pdf: %w", doc.Error())
	}
	return doc.Output(w)
}
