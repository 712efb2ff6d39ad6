package text

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"

	"github.com/youruser/mapcards/internal/fonts"
)

const ellipsis = "…"

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Paragraph is one line of text drawn through a family fallback chain.
// X is the left edge, right edge or center depending on Align.
type Paragraph struct {
	Text     string
	X, Y     float64
	Families []string
	Size     float64
	Weight   fonts.Weight
	Italic   bool
	Color    color.Color
	MaxWidth float64
	Align    Align
}

// Run is a stretch of text drawn with a single face.
type Run struct {
	Text  string
	Face  font.Face
	Width float64
}

// Line is a laid out paragraph.
type Line struct {
	Runs      []Run
	Width     float64
	Truncated bool
	Ascent    float64
	Height    float64
}

func (l Line) String() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

type cluster struct {
	text string
	face int
}

// Layouter holds the faces of one fallback chain at one size. It is not safe
// for concurrent use.
type Layouter struct {
	chain []*fonts.Typeface
	faces []font.Face
}

func NewLayouter(chain []*fonts.Typeface, size float64) (*Layouter, error) {
	l := &Layouter{chain: chain, faces: make([]font.Face, len(chain))}
	for i, t := range chain {
		f, err := t.Face(size)
		if err != nil {
			return nil, err
		}
		l.faces[i] = f
	}
	return l, nil
}

// faceFor picks the first typeface covering every rune of the cluster,
// falling back to the last one in the chain.
func (l *Layouter) faceFor(s string) int {
	for i, t := range l.chain {
		ok := true
		for _, r := range s {
			if unicode.IsControl(r) || r == '\u200d' || unicode.Is(unicode.Mn, r) {
				continue
			}
			if !t.HasGlyph(r) {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return len(l.chain) - 1
}

func (l *Layouter) clusters(s string) []cluster {
	var out []cluster
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c := g.Str()
		out = append(out, cluster{text: c, face: l.faceFor(c)})
	}
	return out
}

func (l *Layouter) runs(cs []cluster) ([]Run, float64) {
	var runs []Run
	var b strings.Builder
	cur := -1
	total := 0.0
	flush := func() {
		if cur < 0 || b.Len() == 0 {
			return
		}
		w := Measure(l.faces[cur], b.String())
		runs = append(runs, Run{Text: b.String(), Face: l.faces[cur], Width: w})
		total += w
		b.Reset()
	}
	for _, c := range cs {
		if c.face != cur {
			flush()
			cur = c.face
		}
		b.WriteString(c.text)
	}
	flush()
	return runs, total
}

// Layout splits s into runs and, when maxWidth > 0 and the text is wider,
// drops trailing grapheme clusters until the rest plus an ellipsis fits.
// When not even the ellipsis fits the line is empty.
func (l *Layouter) Layout(s string, maxWidth float64) Line {
	m := l.faces[0].Metrics()
	line := Line{
		Ascent: float64(m.Ascent) / 64,
		Height: float64(m.Height) / 64,
	}
	cs := l.clusters(s)
	line.Runs, line.Width = l.runs(cs)
	if maxWidth <= 0 || line.Width <= maxWidth {
		return line
	}

	line.Truncated = true
	tail := cluster{text: ellipsis, face: l.faceFor(ellipsis)}
	for n := len(cs) - 1; n > 0; n-- {
		prefix := trimTrailingSpace(cs[:n])
		if len(prefix) == 0 {
			break
		}
		runs, w := l.runs(append(prefix[:len(prefix):len(prefix)], tail))
		if w <= maxWidth {
			line.Runs, line.Width = runs, w
			return line
		}
	}
	line.Runs, line.Width = l.runs([]cluster{tail})
	if line.Width > maxWidth {
		// not even the ellipsis fits
		line.Runs, line.Width = nil, 0
	}
	return line
}

func trimTrailingSpace(cs []cluster) []cluster {
	for len(cs) > 0 && strings.TrimSpace(cs[len(cs)-1].text) == "" {
		cs = cs[:len(cs)-1]
	}
	return cs
}

// Top returns the drawn top edge for a paragraph anchored at y.
func Top(y, lineHeight, size float64) float64 {
	return y - lineHeight + size*0.2
}

// DrawLine draws a laid out line with its left edge at x and baseline at y.
func DrawLine(dc *gg.Context, line Line, x, y float64, col color.Color) {
	dc.SetColor(col)
	for _, r := range line.Runs {
		dc.SetFontFace(r.Face)
		dc.DrawString(r.Text, x, y)
		x += r.Width
	}
}

// DrawParagraph resolves the fallback chain, lays the text out and draws it.
// It returns the line that was drawn.
func DrawParagraph(dc *gg.Context, res *fonts.Resolver, p Paragraph) (Line, error) {
	chain := res.Chain(p.Families, p.Weight, p.Italic)
	l, err := NewLayouter(chain, p.Size)
	if err != nil {
		return Line{}, err
	}
	line := l.Layout(p.Text, p.MaxWidth)

	x := p.X
	switch p.Align {
	case AlignRight:
		x -= line.Width
	case AlignCenter:
		x -= line.Width / 2
	}
	top := Top(p.Y, line.Height, p.Size)
	DrawLine(dc, line, x, top+line.Ascent, p.Color)
	return line, nil
}
