// File path: internal/gateway/gateway.go
package gateway

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnavailable marks transport-level failures talking to the conversion
// backend: network errors and non-2xx statuses. There is no retry policy;
// a failed call simply ends the in-flight operation.
var ErrUnavailable = errors.New("conversion backend unavailable")

// AnalyzeRequest carries the classified upload set to the analysis call.
type AnalyzeRequest struct {
	SourceLanguage string            `json:"sourceLanguage"`
	TargetLanguage string            `json:"targetLanguage"`
	FileData       map[string]string `json:"file_data"`
}

// AnalyzeResult is the requirements payload. Both requirement fields are
// either a string or a nested object; no schema stability is guaranteed
// across backend versions, so they stay untyped here.
type AnalyzeResult struct {
	BusinessRequirements  interface{} `json:"businessRequirements"`
	TechnicalRequirements interface{} `json:"technicalRequirements"`
	SourceLanguage        string      `json:"sourceLanguage"`
	TargetLanguage        string      `json:"targetLanguage"`
}

// ConvertRequest carries the combined source plus the earlier analysis to
// the conversion call.
type ConvertRequest struct {
	SourceLanguage        string      `json:"sourceLanguage"`
	TargetLanguage        string      `json:"targetLanguage"`
	SourceCode            string      `json:"sourceCode"`
	BusinessRequirements  interface{} `json:"businessRequirements"`
	TechnicalRequirements interface{} `json:"technicalRequirements"`
}

// ConvertResult is the semi-structured conversion response. ConvertedCode
// is kept raw: the project normaliser absorbs its shape instability.
type ConvertResult struct {
	Status          string          `json:"status"`
	Message         string          `json:"message,omitempty"`
	ConvertedCode   json.RawMessage `json:"convertedCode"`
	ConversionNotes string          `json:"conversionNotes"`
	PotentialIssues interface{}     `json:"potentialIssues"`
	UnitTests       string          `json:"unitTests"`
	UnitTestDetails interface{}     `json:"unitTestDetails"`
	FunctionalTests interface{}     `json:"functionalTests"`
	DatabaseUsed    bool            `json:"databaseUsed"`
}

// Client is the backend gateway: two sequential remote operations plus a
// liveness probe. Implementations must be safe for the single-session,
// sequential call pattern the workflow manager enforces.
type Client interface {
	AnalyzeRequirements(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error)
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)
	Health(ctx context.Context) error
	Name() string
}
