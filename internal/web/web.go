// Package web embeds the browser game client so the relay ships as a single
// binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// Register serves the game page at / and its assets under /static.
func Register(r *gin.Engine) {
	index, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		panic("web: missing embedded index.html: " + err.Error())
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: bad embedded fs: " + err.Error())
	}
	r.StaticFS("/static", http.FS(sub))
}
