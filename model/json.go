package model

import (
	json "github.com/goccy/go-json"
)

// EncodeJSON renders an AnalysisResult as canonical JSON using goccy/go-json,
// a drop-in replacement for encoding/json. Canonical here means: struct
// field order, not map-key sorting — AnalysisResult holds no bare maps in
// its JSON-visible shape.
func EncodeJSON(result AnalysisResult, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// DecodeJSON parses the canonical JSON form produced by EncodeJSON.
func DecodeJSON(data []byte) (AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return AnalysisResult{}, err
	}
	return result, nil
}
