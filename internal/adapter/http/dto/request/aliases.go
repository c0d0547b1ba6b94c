package request

import (
	"encoding/json"
	"strings"

	"decora_ambientes/internal/domain/entities"
)

// The conversational layer that feeds this API never settled on one key
// casing: the same field arrives as "Nombre", "nombre" or "client_name"
// depending on the bot flow version. All accepted aliases are mapped into
// one canonical struct here, before the core ever sees the payload.

type aliasFields map[string]json.RawMessage

func newAliasFields(data []byte) (aliasFields, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	fields := make(aliasFields, len(raw))
	for k, v := range raw {
		fields[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return fields, nil
}

func (f aliasFields) text(aliases ...string) string {
	for _, alias := range aliases {
		raw, ok := f[alias]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// number accepts both JSON numbers and locale-formatted numeric strings.
// Anything unparseable defaults to 0 so a partially malformed request still
// quotes; callers can treat a 0 result as suspect.
func (f aliasFields) number(aliases ...string) float64 {
	for _, alias := range aliases {
		raw, ok := f[alias]
		if !ok {
			continue
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return n
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return entities.ParseLocaleNumber(s).Value
		}
		return 0
	}
	return 0
}

func (f aliasFields) list(aliases ...string) []json.RawMessage {
	for _, alias := range aliases {
		raw, ok := f[alias]
		if !ok {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			return items
		}
	}
	return nil
}
