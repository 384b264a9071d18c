package entities

import "encoding/json"

// SubmissionMeta tags a finalised payload. Timestamp changes on every
// finalisation; everything else is stable.
type SubmissionMeta struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Version   string `json:"version"`
}

// Submission is the finalised quote request payload: the form with its derived
// fields filled in plus submission metadata.
//
// When encoded, top-level null, empty-string and empty-array fields are dropped.
// Nested objects are kept as they are. The pruning is lossy: decoding a payload
// does not restore the dropped keys.
type Submission struct {
	QuoteRequestForm
	Submission SubmissionMeta `json:"submission"`
}

func (s Submission) MarshalJSON() ([]byte, error) {
	type plain Submission
	raw, err := json.Marshal(plain(s))
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		if isEmptyTopLevel(v) {
			delete(fields, k)
		}
	}
	return json.Marshal(fields)
}

func isEmptyTopLevel(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}
