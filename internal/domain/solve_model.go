package domain

import (
	"context"
	"strings"
	"time"
)

// DefaultModelID is used when no default model is configured anywhere.
const DefaultModelID = "gpt-5.2"

// DefaultSolveModelIDs is the built-in list of selectable solving models.
const DefaultSolveModelIDs = "gpt-5.2,gpt-4o,qwen2.5-72b-instruct,deepseek-v3"

var knownDisplayNames = map[string]string{
	"gpt-5.2":              "GPT-5.2",
	"gpt-4o":               "GPT-4o",
	"qwen2.5-72b-instruct": "Qwen2.5-72B",
	"deepseek-v3":          "DeepSeek-V3",
}

// DisplayNameFor returns the known display name of a model id, or the id itself.
func DisplayNameFor(modelID string) string {
	if name, ok := knownDisplayNames[modelID]; ok {
		return name
	}
	return modelID
}

// SolveModel is a persisted, orderable descriptor of one selectable solving model.
type SolveModel struct {
	ID          int64
	ModelID     string
	DisplayName string
	SortOrder   int
	Enabled     bool
	CreatedAt   time.Time
}

// Option projects the descriptor to its selection form.
func (m SolveModel) Option() SolveModelOption {
	return SolveModelOption{ID: m.ModelID, Name: m.DisplayName}
}

// SolveModelOption is the {id, name} pair offered to callers choosing a solving model.
type SolveModelOption struct {
	ID   string
	Name string
}

// SolveModelDraft carries the fields of a descriptor being created.
type SolveModelDraft struct {
	ModelID     string
	DisplayName string
	SortOrder   int
	Enabled     *bool
}

// SolveModelPatch carries the fields of a descriptor being changed. Nil fields are left untouched.
type SolveModelPatch struct {
	DisplayName *string
	SortOrder   *int
	Enabled     *bool
}

// Apply returns m with the non-nil fields of p applied.
func (p SolveModelPatch) Apply(m SolveModel) SolveModel {
	if p.DisplayName != nil {
		if name := strings.TrimSpace(*p.DisplayName); name != "" {
			m.DisplayName = name
		}
	}
	if p.SortOrder != nil {
		m.SortOrder = *p.SortOrder
	}
	if p.Enabled != nil {
		m.Enabled = *p.Enabled
	}
	return m
}

// SolveModelRepository persists solve model descriptors.
type SolveModelRepository interface {
	// ListSolveModels returns descriptors ordered by sort order then id.
	ListSolveModels(ctx context.Context, enabledOnly bool) ([]SolveModel, error)
	// CountSolveModels returns the number of stored descriptors.
	CountSolveModels(ctx context.Context) (int, error)
	// GetSolveModel returns the descriptor with the given id.
	GetSolveModel(ctx context.Context, id int64) (SolveModel, bool, error)
	// GetSolveModelByModelID returns the descriptor for the given upstream model id.
	GetSolveModelByModelID(ctx context.Context, modelID string) (SolveModel, bool, error)
	// CreateSolveModel inserts a descriptor and returns it with its id and creation time.
	CreateSolveModel(ctx context.Context, model SolveModel) (SolveModel, error)
	// UpdateSolveModel stores the display name, sort order and enabled flag of a descriptor.
	UpdateSolveModel(ctx context.Context, model SolveModel) error
	// DeleteSolveModel removes a descriptor.
	DeleteSolveModel(ctx context.Context, id int64) error
}

// StaticDefaults holds the process-level fallbacks used when the settings store has no value.
type StaticDefaults struct {
	BaseURL     string
	Token       string
	Model       string
	SolveModels []string
}

// NewStaticDefaults builds StaticDefaults, splitting the comma-separated solve model list.
func NewStaticDefaults(baseURL, token, model, solveModels string) StaticDefaults {
	d := StaticDefaults{
		BaseURL: strings.TrimSpace(baseURL),
		Token:   strings.TrimSpace(token),
		Model:   strings.TrimSpace(model),
	}
	for _, id := range strings.Split(solveModels, ",") {
		if id = strings.TrimSpace(id); id != "" {
			d.SolveModels = append(d.SolveModels, id)
		}
	}
	return d
}

// DefaultModel returns the configured default model, or DefaultModelID when blank.
func (d StaticDefaults) DefaultModel() string {
	if m := strings.TrimSpace(d.Model); m != "" {
		return m
	}
	return DefaultModelID
}

// SolveModelOptions returns the static selection list. When no list is
// configured it contains only the default model.
func (d StaticDefaults) SolveModelOptions() []SolveModelOption {
	if len(d.SolveModels) == 0 {
		m := d.DefaultModel()
		return []SolveModelOption{{ID: m, Name: DisplayNameFor(m)}}
	}
	opts := make([]SolveModelOption, 0, len(d.SolveModels))
	for _, id := range d.SolveModels {
		opts = append(opts, SolveModelOption{ID: id, Name: DisplayNameFor(id)})
	}
	return opts
}
