package util

import (
	"html/template"
	"net/http"

	"gallerie/web"
)

var tpls = template.Must(template.ParseFS(web.Templates, "templates/*.html"))

func Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tpls.ExecuteTemplate(w, name, data)
}
