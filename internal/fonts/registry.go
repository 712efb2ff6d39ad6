package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// BuiltinFamily is the embedded family every resolution ends in.
const BuiltinFamily = "Go"

type embeddedFace struct {
	weight Weight
	italic bool
	data   []byte
}

var embedded = []struct {
	name  string
	faces []embeddedFace
}{
	{BuiltinFamily, []embeddedFace{
		{Regular, false, goregular.TTF},
		{Regular, true, goitalic.TTF},
		{Medium, false, gomedium.TTF},
		{Medium, true, gomediumitalic.TTF},
		{Bold, false, gobold.TTF},
		{Bold, true, gobolditalic.TTF},
	}},
	{"Go Mono", []embeddedFace{
		{Regular, false, gomono.TTF},
		{Regular, true, gomonoitalic.TTF},
		{Bold, false, gomonobold.TTF},
		{Bold, true, gomonobolditalic.TTF},
	}},
	{"Go Smallcaps", []embeddedFace{
		{Regular, false, gosmallcaps.TTF},
		{Regular, true, gosmallcapsitalic.TTF},
	}},
}

var (
	embeddedOnce     sync.Once
	embeddedFamilies []*Family
)

// embeddedSet parses the Go fonts once per process. The assets ship with
// x/image, so a parse failure is a build problem.
func embeddedSet() []*Family {
	embeddedOnce.Do(func() {
		for _, e := range embedded {
			fam := newFamily(e.name)
			for _, ef := range e.faces {
				f, err := opentype.Parse(ef.data)
				if err != nil {
					panic(fmt.Sprintf("fonts: embedded %s: %v", e.name, err))
				}
				fam.add(&Typeface{Family: e.name, Weight: ef.weight, Italic: ef.italic, font: f})
			}
			embeddedFamilies = append(embeddedFamilies, fam)
		}
	})
	return embeddedFamilies
}

func builtin() *Family {
	return embeddedSet()[0]
}

// Registry maps family names to parsed typefaces.
type Registry struct {
	mu       sync.RWMutex
	families []*Family
}

// NewRegistry returns a registry preloaded with the embedded Go families.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, f := range embeddedSet() {
		r.families = append(r.families, f.clone())
	}
	return r
}

func newEmptyRegistry() *Registry {
	return &Registry{}
}

// AddFont registers every face of a TTF, OTF or collection file, reading
// family and style from the name table. It returns the number of new variants.
func (r *Registry) AddFont(data []byte) (int, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return 0, err
	}
	added := 0
	var buf sfnt.Buffer
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			return added, err
		}
		family := fontName(f, &buf, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
		if family == "" {
			continue
		}
		weight, italic := ParseStyle(fontName(f, &buf, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily))
		if r.add(&Typeface{Family: family, Weight: weight, Italic: italic, font: f}) {
			added++
		}
	}
	return added, nil
}

// AddTypeface registers a single font file under an explicit family and variant.
func (r *Registry) AddTypeface(family string, weight Weight, italic bool, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", family, err)
	}
	r.add(&Typeface{Family: family, Weight: weight, Italic: italic, font: f})
	return nil
}

func (r *Registry) add(t *Typeface) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.families {
		if strings.EqualFold(f.Name, t.Family) {
			return f.add(t)
		}
	}
	f := newFamily(t.Family)
	f.add(t)
	r.families = append(r.families, f)
	return true
}

// RegisterDir walks dir and registers every font file in it. Unreadable
// files are skipped and reported in the joined error.
func (r *Registry) RegisterDir(dir string) (int, error) {
	var errs []error
	added := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if d.IsDir() || !isFontFile(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		n, err := r.AddFont(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		added += n
		return nil
	})
	if err != nil {
		return added, err
	}
	return added, errors.Join(errs...)
}

// Family finds a family by name, case-insensitively. An exact match wins,
// then a registered name whose words appear in the query, then a query
// whose words appear in a registered name.
func (r *Registry) Family(name string) *Family {
	q := nameWords(name)
	if len(q) == 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.families {
		if containsWords(q, nameWords(f.Name)) && len(q) == len(nameWords(f.Name)) {
			return f
		}
	}
	for _, f := range r.families {
		if containsWords(q, nameWords(f.Name)) {
			return f
		}
	}
	for _, f := range r.families {
		if containsWords(nameWords(f.Name), q) {
			return f
		}
	}
	return nil
}

// Families lists registered family names in registration order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.families))
	for i, f := range r.families {
		out[i] = f.Name
	}
	return out
}

func fontName(f *sfnt.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) string {
	for _, id := range ids {
		if s, err := f.Name(buf, id); err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

func nameWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
}

// containsWords reports whether needle occurs as a contiguous run in hay.
func containsWords(hay, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(hay) {
		return false
	}
outer:
	for i := 0; i+len(needle) <= len(hay); i++ {
		for j, w := range needle {
			if hay[i+j] != w {
				continue outer
			}
		}
		return true
	}
	return false
}
