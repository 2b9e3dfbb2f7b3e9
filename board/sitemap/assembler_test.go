package sitemap

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

type fakeCache struct {
	documents  []string
	failWrites bool
	hits       int
	writes     int
}

func (f *fakeCache) TryGet(key string) ([]string, bool) {
	if f.documents == nil {
		return nil, false
	}

	f.hits++
	return f.documents, true
}

func (f *fakeCache) Set(key string, documents []string) error {
	if f.failWrites {
		return errors.New("cache down")
	}

	f.writes++
	f.documents = documents
	return nil
}

func testResolver(route string) (string, error) {
	return "https://mirador.test" + route, nil
}

func testAssembler(cache Cache) *Assembler {
	return NewAssembler(cache, testResolver, logging.MustGetLogger("test"), "https://mirador.test", nil)
}

func TestRootMatchesFirstDocument(t *testing.T) {
	assembler := testAssembler(&fakeCache{})

	root, err := assembler.Root()
	if err != nil {
		t.Fatal(err)
	}

	document, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if root != document {
		t.Errorf("root and document 0 differ:\n%s\n%s", root, document)
	}
}

func TestStaticRoutesOrdering(t *testing.T) {
	assembler := testAssembler(&fakeCache{})

	document, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(document, "<url>"); got != 3 {
		t.Fatalf("expected 3 url elements, got %d", got)
	}

	home := strings.Index(document, "<loc>https://mirador.test/</loc>")
	about := strings.Index(document, "<loc>https://mirador.test/about</loc>")
	contact := strings.Index(document, "<loc>https://mirador.test/contact</loc>")

	if home == -1 || about == -1 || contact == -1 {
		t.Fatalf("missing static locations in document:\n%s", document)
	}

	if !(home < about && about < contact) {
		t.Errorf("static locations out of order:\n%s", document)
	}

	if _, err := assembler.Document(1); err != ErrNotFound {
		t.Errorf("document 1 should not exist, got %v", err)
	}
}

func TestOutOfRangeIndexes(t *testing.T) {
	var tests = []int{-1, -25000, 1, 2, 100000}

	assembler := testAssembler(&fakeCache{})
	for _, index := range tests {
		if _, err := assembler.Document(index); err != ErrNotFound {
			t.Errorf("index %d: expected ErrNotFound, got %v", index, err)
		}
	}
}

func TestDeterministicOutput(t *testing.T) {
	assembler := testAssembler(&fakeCache{})

	first, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	second, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("consecutive calls returned different documents")
	}

	// A cold cache must regenerate the same bytes.
	fresh, err := testAssembler(&fakeCache{}).Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if first != fresh {
		t.Error("regeneration returned different documents")
	}
}

func TestIndexDocument(t *testing.T) {
	assembler := testAssembler(&fakeCache{})

	// Three static routes plus this source pushes the count one past
	// the per document cap.
	assembler.Register(func() []Entry {
		entries := make([]Entry, MaxEntries-2)
		for n := range entries {
			entries[n] = Entry{
				Loc:      fmt.Sprintf("https://mirador.test/p/%d", n),
				Priority: 0.6,
			}
		}
		return entries
	})

	root, err := assembler.Root()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(root, "<sitemapindex") {
		t.Fatalf("expected an index document:\n%s", root[:200])
	}

	if got := strings.Count(root, "<sitemap>"); got != 2 {
		t.Errorf("expected 2 sitemap links, got %d", got)
	}

	if !strings.Contains(root, "https://mirador.test/sitemap.xml?index=1") ||
		!strings.Contains(root, "https://mirador.test/sitemap.xml?index=2") {
		t.Errorf("index links missing:\n%s", root)
	}

	for index := 1; index <= 2; index++ {
		document, err := assembler.Document(index)
		if err != nil {
			t.Fatalf("document %d: %v", index, err)
		}
		if !strings.Contains(document, "<urlset") {
			t.Errorf("document %d is not a urlset", index)
		}
	}

	if _, err := assembler.Document(3); err != ErrNotFound {
		t.Errorf("document 3 should not exist, got %v", err)
	}
}

func TestCacheHitSkipsRegeneration(t *testing.T) {
	cache := &fakeCache{documents: []string{"<urlset>cached</urlset>"}}
	assembler := testAssembler(cache)

	document, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if document != "<urlset>cached</urlset>" {
		t.Errorf("expected the cached document, got %q", document)
	}

	if cache.writes != 0 {
		t.Errorf("hit should not write back, got %d writes", cache.writes)
	}
}

func TestCacheWriteFailureStillServes(t *testing.T) {
	assembler := testAssembler(&fakeCache{failWrites: true})

	document, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(document, "<urlset") {
		t.Errorf("expected a generated document despite cache failure:\n%s", document)
	}
}

func TestBrokenRouteSkipped(t *testing.T) {
	resolve := func(route string) (string, error) {
		if route == "/about" {
			return "", errors.New("route table broken")
		}
		return "https://mirador.test" + route, nil
	}

	assembler := NewAssembler(&fakeCache{}, resolve, logging.MustGetLogger("test"), "https://mirador.test", nil)

	entries := assembler.CollectEntries()
	if len(entries) != 2 {
		t.Fatalf("expected broken route to be skipped, got %d entries", len(entries))
	}

	document, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(document, "/about") {
		t.Errorf("broken route leaked into the document:\n%s", document)
	}
}

func TestExtraRoutesAppended(t *testing.T) {
	extra := []Route{{Path: "/pricing", Priority: 0.8, ChangeFreq: Monthly}}
	assembler := NewAssembler(&fakeCache{}, testResolver, logging.MustGetLogger("test"), "https://mirador.test", extra)

	document, err := assembler.Document(0)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(document, "<loc>https://mirador.test/pricing</loc>") {
		t.Errorf("configured route missing:\n%s", document)
	}

	if !strings.Contains(document, "<changefreq>monthly</changefreq>") {
		t.Errorf("changefreq missing:\n%s", document)
	}
}
