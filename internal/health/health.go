// Package health reports whether the encoding service has a usable rule set.
package health

import (
	"encoding/json"
	"net/http"
)

// Status is the body of a health response.
type Status struct {
	Status  string `json:"status"`
	RuleSet string `json:"ruleset"`
	Layers  int    `json:"layers"`
}

// Handler answers GET /health for the active rule set.
func Handler(ruleset string, layers int) http.HandlerFunc {
	body := Status{Status: "ok", RuleSet: ruleset, Layers: layers}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		json.NewEncoder(w).Encode(body)
	}
}
