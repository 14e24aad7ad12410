package batch

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result records the outcome of an operation on a single Drive file.
type Result struct {
	FileID string `json:"fileId"`
	Status string `json:"status"` // "success" or "error"
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Summary aggregates the per-file results of a batch operation.
type Summary struct {
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results"`
}

// ParseFileIDs parses the fileIds argument, which may be a single file ID,
// an array of file IDs, or a JSON-encoded array some MCP clients send
// instead of a real array.
func ParseFileIDs(param interface{}) ([]string, error) {
	if param == nil {
		return nil, fmt.Errorf("fileIds is required")
	}

	switch v := param.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("fileIds cannot be empty")
		}
		// A string that looks like a JSON array is treated as one. Strings
		// that merely start with "[" but don't parse stay single IDs.
		if strings.HasPrefix(strings.TrimSpace(v), "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(v), &decoded); err == nil {
				return validateFileIDs(decoded)
			}
		}
		return []string{v}, nil
	case []interface{}:
		ids := make([]string, 0, len(v))
		for i, item := range v {
			id, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("fileIds[%d] must be a string", i)
			}
			ids = append(ids, id)
		}
		return validateFileIDs(ids)
	default:
		return nil, fmt.Errorf("fileIds must be a string or array of strings")
	}
}

func validateFileIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("fileIds cannot be empty")
	}
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("fileIds[%d] cannot be empty", i)
		}
	}
	return ids, nil
}

// Process runs fn for each file ID and collects a Result per file.
// A failing file does not stop the remaining ones.
func Process(fileIDs []string, fn func(fileID string) (string, error)) []Result {
	results := make([]Result, 0, len(fileIDs))

	for _, fileID := range fileIDs {
		result := Result{FileID: fileID}
		res, err := fn(fileID)
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
		} else {
			result.Status = "success"
			result.Result = res
		}
		results = append(results, result)
	}

	return results
}

// FormatResults renders the per-file results as an indented JSON summary.
func FormatResults(results []Result) string {
	summary := Summary{
		Total:   len(results),
		Results: results,
	}

	for _, r := range results {
		if r.Status == "success" {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	jsonBytes, _ := json.MarshalIndent(summary, "", "  ")
	return string(jsonBytes)
}
