package extraction

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"checkpoint-server/internal/domain/intake"
)

const (
	actionAsk      = "ask"
	actionComplete = "complete"
)

var codeFenceRe = regexp.MustCompile("```(?:json)?\n?")

// wirePayload mirrors the JSON the completion model is instructed to emit.
type wirePayload struct {
	Action    string            `json:"action"`
	Message   string            `json:"message"`
	Extracted map[string]string `json:"extracted"`
	Data      map[string]string `json:"data"`
}

// StripCodeFences removes markdown code fences the model sometimes wraps
// around its JSON despite being told not to.
func StripCodeFences(content string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(content, ""))
}

// firstJSONObject returns the first balanced {...} span in s. Braces inside
// JSON string literals do not count toward the balance.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ParseOutcome extracts the first balanced JSON object from the raw
// completion text and maps it to an intake outcome.
func ParseOutcome(content string) (intake.Outcome, error) {
	clean := StripCodeFences(content)
	match := firstJSONObject(clean)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in completion output")
	}

	var payload wirePayload
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		return nil, fmt.Errorf("decode completion payload: %w", err)
	}

	switch payload.Action {
	case actionComplete:
		return intake.Complete{Data: intake.FromMap(payload.Data)}, nil
	case actionAsk:
		if payload.Message == "" {
			return nil, fmt.Errorf("ask payload missing message")
		}
		return intake.Ask{
			Message:   payload.Message,
			Extracted: intake.FromMap(payload.Extracted),
		}, nil
	default:
		return nil, fmt.Errorf("unknown action %q in completion payload", payload.Action)
	}
}
