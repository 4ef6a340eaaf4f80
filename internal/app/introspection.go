package app

import (
	"context"
	"log"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the introspection report as a mermaid graph
// and registers it for the /introspect endpoint.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, http.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs which configuration keys fell back to their
// defaults. Values are never logged since several keys hold secrets.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect logs the configuration keys of the report that used their defaults.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.Default()
	}

	var defaulted []string
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaulted = append(defaulted, c.Key)
		}
	}
	if len(defaulted) == 0 {
		return nil
	}

	sort.Strings(defaulted)
	logger.Printf("ReportLoggerIntrospector: %d config keys using defaults: %v", len(defaulted), defaulted)
	return nil
}
