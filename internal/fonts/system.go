package fonts

import (
	"sync"

	"github.com/adrg/xdg"
)

// SystemFonts is a lazily scanned index of the fonts installed on the host.
type SystemFonts struct {
	dirs []string
	once sync.Once
	reg  *Registry
	errs []error
}

// NewSystemFonts indexes dirs on first use. With no dirs it uses the XDG font directories.
func NewSystemFonts(dirs ...string) *SystemFonts {
	if len(dirs) == 0 {
		dirs = xdg.FontDirs
	}
	return &SystemFonts{dirs: dirs}
}

// Registry scans the directories once and returns the resulting index.
func (s *SystemFonts) Registry() *Registry {
	s.once.Do(func() {
		s.reg = newEmptyRegistry()
		for _, d := range s.dirs {
			if _, err := s.reg.RegisterDir(d); err != nil {
				s.errs = append(s.errs, err)
			}
		}
	})
	return s.reg
}

// Errors returns the problems met while scanning, for logging.
func (s *SystemFonts) Errors() []error {
	s.Registry()
	return s.errs
}
