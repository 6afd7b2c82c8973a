package browser

import (
	"fmt"
	"net/url"
	"strings"
)

// StaticEngines is a SearchEngines backed by a fixed name → URL-template
// table. Templates contain a single %s for the escaped search term.
type StaticEngines struct {
	templates   map[string]string
	order       []string
	defaultName string
}

// DefaultEngines returns the stock engine set with Google as default.
func DefaultEngines() *StaticEngines {
	e := &StaticEngines{templates: make(map[string]string)}
	e.Add("Google", "https://www.google.com/search?q=%s")
	e.Add("DuckDuckGo", "https://duckduckgo.com/?q=%s")
	e.Add("Bing", "https://www.bing.com/search?q=%s")
	e.Add("Youtube", "https://www.youtube.com/results?search_query=%s")
	e.Add("Wikipedia", "https://en.wikipedia.org/wiki/Special:Search?search=%s")
	e.defaultName = "Google"
	return e
}

// Add registers an engine. The first engine added becomes the default until
// SetDefault overrides it.
func (e *StaticEngines) Add(name, template string) {
	if _, exists := e.templates[name]; !exists {
		e.order = append(e.order, name)
	}
	e.templates[name] = template
	if e.defaultName == "" {
		e.defaultName = name
	}
}

// SetDefault marks an already-registered engine as default.
func (e *StaticEngines) SetDefault(name string) error {
	if _, ok := e.templates[name]; !ok {
		return fmt.Errorf("unknown search engine %q", name)
	}
	e.defaultName = name
	return nil
}

// Names lists engines in registration order.
func (e *StaticEngines) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Default returns the default engine name.
func (e *StaticEngines) Default() string {
	return e.defaultName
}

// SubmissionURL builds the results URL for term on the named engine. Lookup
// is case-insensitive to be forgiving of model-supplied names.
func (e *StaticEngines) SubmissionURL(engineName, term string) (string, error) {
	template, ok := e.templates[engineName]
	if !ok {
		for name, t := range e.templates {
			if strings.EqualFold(name, engineName) {
				template = t
				ok = true
				break
			}
		}
	}
	if !ok {
		return "", fmt.Errorf("no search engine found with name %q", engineName)
	}
	return fmt.Sprintf(template, url.QueryEscape(strings.TrimSpace(term))), nil
}
