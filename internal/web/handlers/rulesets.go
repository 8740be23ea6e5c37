package handlers

import (
	"net/http"
	"reflect"

	"github.com/jusunglee/nameencoder/internal/rulesets"
	"github.com/samber/lo"
)

const (
	sourceBuiltin = "builtin"
	sourceFile    = "file"
)

type RuleSetHandler struct {
	active  rulesets.Table
	builtin []rulesets.Table
}

func NewRuleSetHandler(active rulesets.Table, builtin []rulesets.Table) *RuleSetHandler {
	return &RuleSetHandler{active: active, builtin: builtin}
}

type ruleSetResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Layers      int    `json:"layers"`
	Source      string `json:"source"`
	Active      bool   `json:"active"`
}

// List handles GET /api/v1/rulesets. A built-in rule set is active only if
// the loaded table has the same rules; a table read from a rules file that
// matches no built-in one is listed as its own entry.
func (h *RuleSetHandler) List(w http.ResponseWriter, r *http.Request) {
	data := lo.Map(h.builtin, func(t rulesets.Table, _ int) ruleSetResponse {
		return ruleSetResponse{
			Name:        t.Name,
			Description: t.Description,
			Layers:      len(t.Layers),
			Source:      sourceBuiltin,
			Active:      reflect.DeepEqual(t, h.active),
		}
	})
	if !lo.ContainsBy(data, func(rs ruleSetResponse) bool { return rs.Active }) {
		data = append(data, ruleSetResponse{
			Name:        h.active.Name,
			Description: h.active.Description,
			Layers:      len(h.active.Layers),
			Source:      sourceFile,
			Active:      true,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}
