package sitemap

import (
	"encoding/xml"
	"fmt"
	"time"
)

// ChangeFreq holds the crawl hint values the sitemaps.org protocol accepts.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

const (
	xmlns         = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xsi           = "http://www.w3.org/2001/XMLSchema-instance"
	xsiLocation   = "http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd"
	lastModLayout = "2006-01-02T15:04:05.999999-07:00"
)

// Entry is one absolute URL bound for a sitemap document.
// Immutable once built.
type Entry struct {
	Loc        string
	Priority   float64
	LastMod    *time.Time
	ChangeFreq ChangeFreq
}

type SitemapSet struct {
	XMLName     xml.Name     `xml:"urlset"`
	XMLNs       string       `xml:"xmlns,attr"`
	XSI         string       `xml:"xmlns:xsi,attr"`
	XSILocation string       `xml:"xsi:schemaLocation,attr"`
	Urls        []SitemapUrl `xml:"url"`
}

type SitemapUrl struct {
	Location string `xml:"loc"`
	Updated  string `xml:"lastmod,omitempty"`
	Freq     string `xml:"changefreq,omitempty"`
	Priority string `xml:"priority"`
}

type IndexSet struct {
	XMLName xml.Name   `xml:"sitemapindex"`
	XMLNs   string     `xml:"xmlns,attr"`
	Maps    []IndexUrl `xml:"sitemap"`
}

type IndexUrl struct {
	Location string `xml:"loc"`
}

func (e Entry) url() SitemapUrl {
	url := SitemapUrl{
		Location: e.Loc,
		Freq:     string(e.ChangeFreq),
		Priority: fmt.Sprintf("%.1f", e.Priority),
	}

	if e.LastMod != nil {
		url.Updated = e.LastMod.Format(lastModLayout)
	}

	return url
}

func serializeSet(entries []Entry) (string, error) {
	set := SitemapSet{
		XMLNs:       xmlns,
		XSI:         xsi,
		XSILocation: xsiLocation,
		Urls:        make([]SitemapUrl, 0, len(entries)),
	}

	for _, entry := range entries {
		set.Urls = append(set.Urls, entry.url())
	}

	body, err := xml.Marshal(set)
	if err != nil {
		return "", err
	}

	return xml.Header + string(body), nil
}

// serializeIndex links the numbered sub documents, served at
// /sitemap.xml?index=N.
func serializeIndex(siteUrl string, documents int) (string, error) {
	set := IndexSet{
		XMLNs: xmlns,
		Maps:  make([]IndexUrl, 0, documents),
	}

	for n := 1; n <= documents; n++ {
		set.Maps = append(set.Maps, IndexUrl{
			Location: fmt.Sprintf("%s/sitemap.xml?index=%d", siteUrl, n),
		})
	}

	body, err := xml.Marshal(set)
	if err != nil {
		return "", err
	}

	return xml.Header + string(body), nil
}
