package http

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the named dependency holding the mermaid graph of the running app.
const IntrospectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title string
	Graph string
}

// IntrospectHandler renders the dependency graph of the service as an HTML
// page, or as raw mermaid source when called with ?format=mermaid.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "mermaid" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, mermaidGraph)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := introspectPage{
		Title: "MathSolver Introspection Graph",
		Graph: mermaidGraph,
	}
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
