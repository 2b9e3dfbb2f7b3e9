package sitemap

import (
	"errors"

	"github.com/op/go-logging"
)

// ErrNotFound signals a document index outside the generated set.
var ErrNotFound = errors.New("sitemap: no such document")

// MaxEntries is the per document cap from the sitemaps.org protocol.
const MaxEntries = 25000

// Resolver turns an application route into an absolute URL.
type Resolver func(route string) (string, error)

// Source produces additional entries (per resource listings and such)
// appended after the configured routes.
type Source func() []Entry

type Route struct {
	Path       string
	Priority   float64
	ChangeFreq ChangeFreq
}

// Routes every install publishes.
var staticRoutes = []Route{
	{Path: "/", Priority: 1.0},
	{Path: "/about", Priority: 0.9},
	{Path: "/contact", Priority: 0.9},
}

// Assembler builds the site's sitemap documents and keeps the
// serialized set in a shared cache between regenerations.
type Assembler struct {
	cache   Cache
	resolve Resolver
	log     *logging.Logger
	siteUrl string
	routes  []Route
	sources []Source
}

func NewAssembler(cache Cache, resolve Resolver, log *logging.Logger, siteUrl string, extra []Route) *Assembler {
	return &Assembler{
		cache:   cache,
		resolve: resolve,
		log:     log,
		siteUrl: siteUrl,
		routes:  extra,
	}
}

// Register adds an entry source consulted on every regeneration.
func (a *Assembler) Register(source Source) {
	a.sources = append(a.sources, source)
}

// CollectEntries resolves the configured routes into sitemap entries.
// A route that cannot be resolved is logged and skipped, the rest of
// the document still goes out.
func (a *Assembler) CollectEntries() []Entry {
	routes := make([]Route, 0, len(staticRoutes)+len(a.routes))
	routes = append(routes, staticRoutes...)
	routes = append(routes, a.routes...)

	entries := make([]Entry, 0, len(routes))
	for _, route := range routes {
		loc, err := a.resolve(route.Path)
		if err != nil {
			a.log.Warningf("sitemap: skipping route %q: %v", route.Path, err)
			continue
		}

		entries = append(entries, Entry{
			Loc:        loc,
			Priority:   route.Priority,
			ChangeFreq: route.ChangeFreq,
		})
	}

	for _, source := range a.sources {
		entries = append(entries, source()...)
	}

	return entries
}

// Root returns the index document when the entries span several
// sitemaps, otherwise the single sitemap.
func (a *Assembler) Root() (string, error) {
	return a.Document(0)
}

// Document returns the serialized document at index.
//
// Cache population is not mutually exclusive: concurrent misses each
// regenerate and the last writer wins. Generation is a deterministic
// function of configuration, so the race costs redundant work only.
func (a *Assembler) Document(index int) (string, error) {
	documents, hit := a.cache.TryGet(CacheKey)
	if !hit {
		var err error
		documents, err = a.generate()
		if err != nil {
			return "", err
		}

		// A failed write is not fatal, the fresh documents still serve
		// this request.
		if err := a.cache.Set(CacheKey, documents); err != nil {
			a.log.Warningf("sitemap: cache write failed: %v", err)
		}
	}

	if index < 0 || index >= len(documents) {
		return "", ErrNotFound
	}

	return documents[index], nil
}

func (a *Assembler) generate() ([]string, error) {
	entries := a.CollectEntries()

	if len(entries) <= MaxEntries {
		document, err := serializeSet(entries)
		if err != nil {
			return nil, err
		}

		return []string{document}, nil
	}

	var documents []string
	for start := 0; start < len(entries); start += MaxEntries {
		end := start + MaxEntries
		if end > len(entries) {
			end = len(entries)
		}

		document, err := serializeSet(entries[start:end])
		if err != nil {
			return nil, err
		}

		documents = append(documents, document)
	}

	index, err := serializeIndex(a.siteUrl, len(documents))
	if err != nil {
		return nil, err
	}

	return append([]string{index}, documents...), nil
}
