package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoJSON marks a model reply that contains no parseable JSON object.
var ErrNoJSON = errors.New("no JSON object in model reply")

// Row is one audited paragraph pair. All fields are strings after coercion;
// the model's reply is never trusted to be well-typed.
type Row struct {
	Index       string
	Source      string
	Translation string
	Issues      string
	Fix         string
	Score       string
	Severity    string
}

// Report is the parsed form of the model's reply.
type Report struct {
	Rows    []Row
	Summary string
	Rules   []string
}

// ParseReport parses a model reply into a Report. It tries a strict parse of
// the whole reply first, then the substring between the first "{" and the
// last "}". Models sometimes wrap the JSON in prose or code fences. If both
// attempts fail the error wraps ErrNoJSON; there is no deeper recovery.
func ParseReport(raw string) (Report, error) {
	doc, err := parseObject(raw)
	if err != nil {
		return Report{}, err
	}
	return reportFromDoc(doc), nil
}

func parseObject(raw string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err == nil && doc != nil {
		return doc, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSON
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	return doc, nil
}

func reportFromDoc(doc map[string]any) Report {
	rep := Report{Summary: coerceString(doc["summary"])}

	if rows, ok := doc["rows"].([]any); ok {
		rep.Rows = make([]Row, 0, len(rows))
		for _, r := range rows {
			m, ok := r.(map[string]any)
			if !ok {
				continue
			}
			rep.Rows = append(rep.Rows, Row{
				Index:       coerceString(m["index"]),
				Source:      coerceString(m["source"]),
				Translation: coerceString(m["translation"]),
				Issues:      coerceString(m["issues"]),
				Fix:         coerceString(m["fix"]),
				Score:       canonicalScore(coerceString(m["score"])),
				Severity:    coerceString(m["severity"]),
			})
		}
	}

	if rules, ok := doc["style_rules"].([]any); ok {
		for _, r := range rules {
			rep.Rules = append(rep.Rules, coerceString(r))
		}
	}

	return rep
}

// coerceString renders any JSON value as a string. Missing and null fields
// become "", numbers are formatted without a trailing ".0".
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// canonicalScore trims spaces inside well-formed "A/I/C" scores, so
// "5 / 4 / 5" becomes "5/4/5". Anything else passes through untouched; the
// model's grading is reported, not validated.
func canonicalScore(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return s
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return s
			}
		}
		parts[i] = p
	}
	return strings.Join(parts, "/")
}
