package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Typeface is one parsed font file variant. It is read-only after construction
// and may be shared across goroutines; the faces it builds may not.
type Typeface struct {
	Family string
	Weight Weight
	Italic bool
	font   *opentype.Font
}

// Face builds a face at size points (72 DPI, so points equal pixels).
func (t *Typeface) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s %.1fpt: %w", t, size, err)
	}
	return face, nil
}

// HasGlyph reports whether the font maps r to a real glyph.
func (t *Typeface) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := t.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

func (t *Typeface) String() string {
	s := t.Family + " " + t.Weight.String()
	if t.Italic {
		s += " Italic"
	}
	return s
}

type variant struct {
	weight Weight
	italic bool
}

// Family groups the variants of one typeface family.
type Family struct {
	Name     string
	variants map[variant]*Typeface
}

func newFamily(name string) *Family {
	return &Family{Name: name, variants: map[variant]*Typeface{}}
}

func (f *Family) clone() *Family {
	c := newFamily(f.Name)
	for k, t := range f.variants {
		c.variants[k] = t
	}
	return c
}

// add keeps the first typeface registered for a variant.
func (f *Family) add(t *Typeface) bool {
	k := variant{t.Weight, t.Italic}
	if _, ok := f.variants[k]; ok {
		return false
	}
	f.variants[k] = t
	return true
}

// Pick returns the closest variant: the heaviest one not above w with the
// requested slant, else the lightest heavier one. A missing slant falls back
// to the other one.
func (f *Family) Pick(w Weight, italic bool) *Typeface {
	if t := f.pickSlant(w, italic); t != nil {
		return t
	}
	return f.pickSlant(w, !italic)
}

func (f *Family) pickSlant(w Weight, italic bool) *Typeface {
	var below, above *Typeface
	for k, t := range f.variants {
		if k.italic != italic {
			continue
		}
		if k.weight <= w {
			if below == nil || k.weight > below.Weight {
				below = t
			}
		} else if above == nil || k.weight < above.Weight {
			above = t
		}
	}
	if below != nil {
		return below
	}
	return above
}
