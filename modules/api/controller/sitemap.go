package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mirador-app/mirador/board/sitemap"
)

type Sitemap struct {
	Assembler *sitemap.Assembler
}

// GetSitemap serves the cached sitemap documents. Without an index
// param it returns the root document: the index file when several
// documents exist, otherwise the single sitemap.
func (s Sitemap) GetSitemap(c *gin.Context) {
	index := 0

	if raw, exists := c.GetQuery("index"); exists {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(404, gin.H{"status": "error", "message": "No such sitemap."})
			return
		}

		index = n
	}

	document, err := s.Assembler.Document(index)
	if err == sitemap.ErrNotFound {
		c.JSON(404, gin.H{"status": "error", "message": "No such sitemap."})
		return
	}

	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.Data(200, "application/xml; charset=utf-8", []byte(document))
}
