package main

import "github.com/cleitonmarx/symbiont-ai-mathsolver/internal/app"

func main() {
	err := app.NewMathSolverApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
