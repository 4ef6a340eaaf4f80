package usecases

import (
	"embed"
	"fmt"

	"go.yaml.in/yaml/v3"
)

//go:embed prompts/solve.yml
var solvePromptFS embed.FS

// solvePrompts holds the fixed prompt texts of the solve workflow.
type solvePrompts struct {
	KnowledgeSystem      string `yaml:"knowledge_system"`
	SemanticSystem       string `yaml:"semantic_system"`
	SolveSystem          string `yaml:"solve_system"`
	QuestionLabel        string `yaml:"question_label"`
	KnowledgeLabel       string `yaml:"knowledge_label"`
	SemanticLabel        string `yaml:"semantic_label"`
	ClosingInstruction   string `yaml:"closing_instruction"`
	TagSeparator         string `yaml:"tag_separator"`
	ConnectionTestSystem string `yaml:"connection_test_system"`
	ConnectionTestUser   string `yaml:"connection_test_user"`
}

var prompts = mustLoadSolvePrompts()

func loadSolvePrompts() (solvePrompts, error) {
	file, err := solvePromptFS.Open("prompts/solve.yml")
	if err != nil {
		return solvePrompts{}, fmt.Errorf("failed to open solve prompts: %w", err)
	}
	defer file.Close() //nolint:errcheck

	var p solvePrompts
	if err := yaml.NewDecoder(file).Decode(&p); err != nil {
		return solvePrompts{}, fmt.Errorf("failed to decode solve prompts: %w", err)
	}
	return p, nil
}

func mustLoadSolvePrompts() solvePrompts {
	p, err := loadSolvePrompts()
	if err != nil {
		panic(err)
	}
	return p
}
