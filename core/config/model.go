package config

// Mirador config params struct.
type Mirador struct {
	Site    miradorSite    `json:"site"`
	Sitemap miradorSitemap `json:"sitemap"`
}

type miradorSite struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Url         string `json:"url"`
}

type miradorSitemap struct {
	// Seconds of inactivity before the cached documents expire.
	// The window slides: every read rearms it.
	CacheTTL int `json:"cacheTTL"`

	// Extra routes published besides the fixed ones.
	Routes []SitemapRoute `json:"routes"`
}

type SitemapRoute struct {
	Path       string  `json:"path"`
	Priority   float64 `json:"priority"`
	ChangeFreq string  `json:"changefreq"`
}
