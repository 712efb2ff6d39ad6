package fonts

// DefaultFallbacks are asked of the host font index when a family is not registered.
var DefaultFallbacks = []string{"Segoe UI", "Arial", "Helvetica", "DejaVu Sans", "Liberation Sans"}

// Resolver turns a family name and style into a concrete typeface. It never fails.
type Resolver struct {
	registry  *Registry
	system    *SystemFonts
	fallbacks []string
}

type Option func(*Resolver)

// WithSystemFonts enables lookups in the host font index.
func WithSystemFonts(s *SystemFonts) Option {
	return func(r *Resolver) { r.system = s }
}

// WithFallbacks replaces the ordered list of host families tried after the requested one.
func WithFallbacks(names ...string) Option {
	return func(r *Resolver) { r.fallbacks = names }
}

func NewResolver(reg *Registry, opts ...Option) *Resolver {
	if reg == nil {
		reg = NewRegistry()
	}
	r := &Resolver{registry: reg, fallbacks: DefaultFallbacks}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Resolver) Registry() *Registry { return r.registry }

// Resolve looks family up in the registry, then in the host index (the family
// itself, then the fallbacks), and finally returns the built-in family.
func (r *Resolver) Resolve(family string, weight Weight, italic bool) *Typeface {
	if f := r.registry.Family(family); f != nil {
		if t := f.Pick(weight, italic); t != nil {
			return t
		}
	}
	if r.system != nil {
		sys := r.system.Registry()
		for _, name := range append([]string{family}, r.fallbacks...) {
			if f := sys.Family(name); f != nil {
				if t := f.Pick(weight, italic); t != nil {
					return t
				}
			}
		}
	}
	return r.Builtin(weight, italic)
}

// Builtin returns the embedded default at the requested style.
func (r *Resolver) Builtin(weight Weight, italic bool) *Typeface {
	return builtin().Pick(weight, italic)
}

// Chain resolves each family in order for per-glyph fallback. Duplicates are
// dropped and the built-in default is appended when not already present.
func (r *Resolver) Chain(families []string, weight Weight, italic bool) []*Typeface {
	seen := make(map[*Typeface]bool)
	var out []*Typeface
	push := func(t *Typeface) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, name := range families {
		push(r.Resolve(name, weight, italic))
	}
	push(r.Builtin(weight, italic))
	return out
}
