package theme

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caserWrapper wraps a cases.Caser to allow pointer storage in sync.Pool.
type caserWrapper struct {
	caser cases.Caser
}

// cases.Caser is not safe for concurrent use, and element transforms run
// on every render.
var titleCaserPool = sync.Pool{
	New: func() any {
		return &caserWrapper{caser: cases.Title(language.English)}
	},
}

func title(s string) string {
	w, ok := titleCaserPool.Get().(*caserWrapper)
	if !ok || w == nil {
		return cases.Title(language.English).String(s)
	}
	defer titleCaserPool.Put(w)
	return w.caser.String(s)
}

// textCase returns the transform for a text_case value. "none" is valid and
// yields a nil transform.
func textCase(name string) (func(string) string, bool) {
	switch strings.ToLower(name) {
	case "upper":
		return strings.ToUpper, true
	case "lower":
		return strings.ToLower, true
	case "title":
		return title, true
	case "none":
		return nil, true
	}
	return nil, false
}
