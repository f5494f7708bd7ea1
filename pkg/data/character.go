package data

import (
	"encoding/json"
	"fmt"
)

// Character is a single record of the /characters feed. Every field is
// required on the wire; empty strings and empty lists are valid values.
type Character struct {
	Name     string   `json:"name"`
	Gender   string   `json:"gender"`
	Culture  string   `json:"culture"`
	Born     string   `json:"born"`
	Died     string   `json:"died"`
	Aliases  []string `json:"aliases"`
	TVSeries []string `json:"tvSeries"`
	PlayedBy []string `json:"playedBy"`
}

// requiredFields lists the wire keys in declaration order.
var requiredFields = []string{"name", "gender", "culture", "born", "died", "aliases", "tvSeries", "playedBy"}

// UnmarshalJSON decodes a character, matching keys exactly. encoding/json
// would otherwise accept "Name" or "TVSERIES" for the same field.
func (c *Character) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("character: expected object, got null")
	}

	for _, key := range requiredFields {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("character: missing field %q", key)
		}
	}

	var out Character
	targets := map[string]any{
		"name":     &out.Name,
		"gender":   &out.Gender,
		"culture":  &out.Culture,
		"born":     &out.Born,
		"died":     &out.Died,
		"aliases":  &out.Aliases,
		"tvSeries": &out.TVSeries,
		"playedBy": &out.PlayedBy,
	}
	for _, key := range requiredFields {
		if err := json.Unmarshal(raw[key], targets[key]); err != nil {
			return fmt.Errorf("character: field %q: %w", key, err)
		}
	}

	// null lists decode to nil; keep them as empty lists
	if out.Aliases == nil {
		out.Aliases = []string{}
	}
	if out.TVSeries == nil {
		out.TVSeries = []string{}
	}
	if out.PlayedBy == nil {
		out.PlayedBy = []string{}
	}

	*c = out
	return nil
}
