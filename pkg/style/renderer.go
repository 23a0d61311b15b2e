package style

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/muesli/termenv"
)

// defaultRenderer holds the process-wide renderer. Package-level setters
// replace the whole snapshot so readers never observe a half-written value.
var defaultRenderer atomic.Pointer[Renderer]

// Renderer carries the color profile and background darkness that colors are
// resolved against.
type Renderer struct {
	mu                sync.RWMutex
	colorProfile      termenv.Profile
	hasDarkBackground bool
}

// RendererOption configures a Renderer.
type RendererOption func(r *Renderer)

// WithColorProfile forces a color profile instead of detecting one.
func WithColorProfile(p termenv.Profile) RendererOption {
	return func(r *Renderer) { r.colorProfile = p }
}

// WithDarkBackground forces the background darkness.
func WithDarkBackground(dark bool) RendererOption {
	return func(r *Renderer) { r.hasDarkBackground = dark }
}

// WithEnviron detects the profile and background from the given lookup
// function instead of the process environment.
func WithEnviron(lookup func(string) (string, bool)) RendererOption {
	return func(r *Renderer) {
		r.colorProfile = detectProfile(lookup)
		r.hasDarkBackground = detectDarkBackground(lookup)
	}
}

// NewRenderer creates a renderer configured from NO_COLOR, COLORTERM, TERM and
// COLORFGBG. Options are applied afterwards and take precedence.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		colorProfile:      detectProfile(os.LookupEnv),
		hasDarkBackground: detectDarkBackground(os.LookupEnv),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultRenderer returns the process-wide renderer, creating it from the
// environment on first use.
func DefaultRenderer() *Renderer {
	if r := defaultRenderer.Load(); r != nil {
		return r
	}
	defaultRenderer.CompareAndSwap(nil, NewRenderer())
	return defaultRenderer.Load()
}

// SetDefaultRenderer replaces the process-wide renderer.
func SetDefaultRenderer(r *Renderer) {
	if r == nil {
		r = NewRenderer()
	}
	defaultRenderer.Store(r)
}

// ColorProfile returns the color profile of the default renderer.
func ColorProfile() termenv.Profile {
	return DefaultRenderer().ColorProfile()
}

// SetColorProfile sets the color profile of the default renderer.
func SetColorProfile(p termenv.Profile) {
	updateDefault(func(r *Renderer) { r.colorProfile = p })
}

// HasDarkBackground reports whether the default renderer assumes a dark
// background.
func HasDarkBackground() bool {
	return DefaultRenderer().HasDarkBackground()
}

// SetHasDarkBackground sets the background darkness of the default renderer.
func SetHasDarkBackground(dark bool) {
	updateDefault(func(r *Renderer) { r.hasDarkBackground = dark })
}

func updateDefault(fn func(*Renderer)) {
	for {
		old := DefaultRenderer()
		next := old.snapshot()
		fn(next)
		if defaultRenderer.CompareAndSwap(old, next) {
			return
		}
	}
}

// ColorProfile returns the renderer's color profile.
func (r *Renderer) ColorProfile() termenv.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.colorProfile
}

// SetColorProfile sets the renderer's color profile.
//
// Available profiles are termenv.Ascii (no color), termenv.ANSI (16 colors),
// termenv.ANSI256 and termenv.TrueColor.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colorProfile = p
}

// HasDarkBackground reports whether the renderer assumes a dark background.
func (r *Renderer) HasDarkBackground() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasDarkBackground
}

// SetHasDarkBackground sets the background darkness.
func (r *Renderer) SetHasDarkBackground(dark bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hasDarkBackground = dark
}

// NewStyle returns a new, empty Style bound to this renderer.
func (r *Renderer) NewStyle() Style {
	return Style{r: r}
}

// snapshot returns an unshared copy of the renderer. Rendering works from a
// snapshot so a concurrent setter cannot change the profile mid-render.
func (r *Renderer) snapshot() *Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Renderer{
		colorProfile:      r.colorProfile,
		hasDarkBackground: r.hasDarkBackground,
	}
}

// detectProfile maps the environment to a color profile:
//
//	NO_COLOR set                      -> Ascii
//	COLORTERM truecolor or 24bit      -> TrueColor
//	TERM ends in -256color            -> ANSI256
//	TERM contains color               -> ANSI
//	otherwise                         -> Ascii
func detectProfile(lookup func(string) (string, bool)) termenv.Profile {
	if _, ok := lookup("NO_COLOR"); ok {
		return termenv.Ascii
	}
	if ct, _ := lookup("COLORTERM"); ct != "" {
		ct = strings.ToLower(ct)
		if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
			return termenv.TrueColor
		}
	}
	term, _ := lookup("TERM")
	term = strings.ToLower(term)
	switch {
	case strings.HasSuffix(term, "-256color"):
		return termenv.ANSI256
	case strings.Contains(term, "color"):
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// detectDarkBackground reads COLORFGBG ("fg;bg"). Background indices 0-6 and
// 8 are dark. Without a usable value the background is assumed dark.
func detectDarkBackground(lookup func(string) (string, bool)) bool {
	v, ok := lookup("COLORFGBG")
	if !ok || v == "" {
		return true
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return true
	}
	return (bg >= 0 && bg <= 6) || bg == 8
}
