package domain

import (
	"strings"
)

// ModelRole identifies which of the independently configured model endpoints a call targets.
type ModelRole string

const (
	// ModelRole_Solve is the endpoint that produces the final solution.
	ModelRole_Solve ModelRole = "solve"
	// ModelRole_Knowledge is the endpoint that classifies knowledge points.
	ModelRole_Knowledge ModelRole = "knowledge"
	// ModelRole_Semantic is the endpoint that classifies semantic contexts.
	ModelRole_Semantic ModelRole = "semantic"
)

// ModelRoles lists every role in display order.
var ModelRoles = []ModelRole{ModelRole_Solve, ModelRole_Knowledge, ModelRole_Semantic}

// ParseModelRole validates a role name.
func ParseModelRole(s string) (ModelRole, error) {
	role := ModelRole(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case ModelRole_Solve, ModelRole_Knowledge, ModelRole_Semantic:
		return role, nil
	}
	return "", NewValidationErr("role must be one of solve, knowledge, semantic")
}

// Setting keys shared by the settings store and the process configuration.
const (
	SettingKey_BaseURL = "UNIAPI_BASE_URL"
	SettingKey_Token   = "UNIAPI_TOKEN"
	SettingKey_Model   = "UNIAPI_MODEL"
)

func (r ModelRole) settingSuffix() string {
	switch r {
	case ModelRole_Knowledge:
		return "_KNOWLEDGE"
	case ModelRole_Semantic:
		return "_SEMANTIC"
	}
	return ""
}

// BaseURLKey returns the settings key holding the role's base URL.
func (r ModelRole) BaseURLKey() string { return SettingKey_BaseURL + r.settingSuffix() }

// TokenKey returns the settings key holding the role's token.
func (r ModelRole) TokenKey() string { return SettingKey_Token + r.settingSuffix() }

// ModelKey returns the settings key holding the role's model id.
// For the solve role this is the store-wide default model.
func (r ModelRole) ModelKey() string { return SettingKey_Model + r.settingSuffix() }

// AllSettingKeys returns every key read by the endpoint resolver.
func AllSettingKeys() []string {
	keys := make([]string, 0, len(ModelRoles)*3)
	for _, r := range ModelRoles {
		keys = append(keys, r.BaseURLKey(), r.TokenKey(), r.ModelKey())
	}
	return keys
}

// EndpointConfig is the resolved (base URL, token, model) triple used for one upstream call.
type EndpointConfig struct {
	BaseURL string
	Token   string
	ModelID string
}

// Usable reports whether both the base URL and the token are set.
func (c EndpointConfig) Usable() bool {
	return strings.TrimSpace(c.BaseURL) != "" && strings.TrimSpace(c.Token) != ""
}

// WithModel returns a copy of c using model when it is not blank.
func (c EndpointConfig) WithModel(model string) EndpointConfig {
	if m := strings.TrimSpace(model); m != "" {
		c.ModelID = m
	}
	return c
}
