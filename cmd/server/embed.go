//go:build embed
// +build embed

package main

import (
	"embed"
	"io"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the embedded dashboard build. Unknown paths fall
// back to index.html so client-side routing works.
func setupStaticFiles(router *gin.Engine) {
	log.Println("📦 Serving embedded dashboard assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		log.Fatalf("Failed to get dist subdirectory: %v", err)
	}

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path

		if len(urlPath) >= 4 && urlPath[:4] == "/api" {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}

		cleanPath := path.Clean(urlPath)
		if cleanPath == "/" {
			cleanPath = "index.html"
		} else {
			cleanPath = cleanPath[1:]
		}

		if served := serveFromFS(c, distFS, cleanPath); served {
			return
		}

		// SPA fallback
		if !serveFromFS(c, distFS, "index.html") {
			c.String(http.StatusNotFound, "404 page not found")
		}
	})
}

// serveFromFS writes the named file to the response if it exists
func serveFromFS(c *gin.Context, fsys fs.FS, name string) bool {
	file, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		return false
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return false
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, content)
	return true
}
