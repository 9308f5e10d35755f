// File path: internal/gateway/openai.go
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nicodishanthj/legacybridge/internal/common"
)

// OpenAIClient performs the analysis and conversion calls directly against
// OpenAI instead of the hosted backend, reproducing the backend's prompt
// contract. Used when a key is configured and no backend is reachable.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds the direct gateway. Model defaults to gpt-4o.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if strings.TrimSpace(model) == "" {
		model = "gpt-4o"
	}
	common.Logger().Info("gateway: direct OpenAI mode configured", "model", model)
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIClient) Name() string { return "openai" }

// Health only verifies a client is present; there is no cheap liveness
// probe worth a billed request.
func (o *OpenAIClient) Health(ctx context.Context) error {
	if o.client == nil {
		return ErrUnavailable
	}
	return nil
}

func (o *OpenAIClient) AnalyzeRequirements(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	logger := common.Logger()
	logger.Info("gateway: direct analysis requested", "files", len(req.FileData))
	businessRaw, err := o.completeJSON(ctx, businessSystemPrompt, buildAnalysisUserPrompt("business", req.FileData), 2000)
	if err != nil {
		return nil, fmt.Errorf("business analysis: %w", err)
	}
	technicalRaw, err := o.completeJSON(ctx, technicalSystemPrompt, buildAnalysisUserPrompt("technical", req.FileData), 2000)
	if err != nil {
		return nil, fmt.Errorf("technical analysis: %w", err)
	}
	return &AnalyzeResult{
		BusinessRequirements:  decodeLoose(businessRaw),
		TechnicalRequirements: decodeLoose(technicalRaw),
		SourceLanguage:        req.SourceLanguage,
		TargetLanguage:        req.TargetLanguage,
	}, nil
}

func (o *OpenAIClient) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	logger := common.Logger()
	logger.Info("gateway: direct conversion requested", "target", req.TargetLanguage)
	conversionRaw, err := o.completeJSON(ctx, conversionSystemPrompt(req.TargetLanguage), buildConversionUserPrompt(req), 4000)
	if err != nil {
		return nil, fmt.Errorf("conversion: %w", err)
	}
	var conversion struct {
		ConvertedCode   json.RawMessage `json:"convertedCode"`
		ConversionNotes string          `json:"conversionNotes"`
		PotentialIssues interface{}     `json:"potentialIssues"`
		DatabaseUsed    bool            `json:"databaseUsed"`
	}
	if conversionRaw != nil {
		if err := json.Unmarshal(conversionRaw, &conversion); err != nil {
			logger.Warn("gateway: conversion reply not in expected envelope", "error", err)
		}
	}
	result := &ConvertResult{
		Status:          "success",
		ConvertedCode:   conversion.ConvertedCode,
		ConversionNotes: conversion.ConversionNotes,
		PotentialIssues: conversion.PotentialIssues,
		DatabaseUsed:    conversion.DatabaseUsed,
	}

	// Second call, as in the hosted backend: unit tests over the converted
	// code. A failure here degrades to a conversion without tests.
	testsUser := fmt.Sprintf("Write unit tests for this converted %s code:\n%s", req.TargetLanguage, string(conversion.ConvertedCode))
	testsRaw, err := o.completeJSON(ctx, unitTestSystemPrompt, testsUser, 3000)
	if err != nil {
		logger.Warn("gateway: unit test generation failed", "error", err)
		return result, nil
	}
	var tests struct {
		UnitTestCode    string      `json:"unitTestCode"`
		TestDescription string      `json:"testDescription"`
		Coverage        interface{} `json:"coverage"`
	}
	if testsRaw != nil {
		if err := json.Unmarshal(testsRaw, &tests); err == nil {
			result.UnitTests = tests.UnitTestCode
			result.UnitTestDetails = map[string]interface{}{
				"testDescription": tests.TestDescription,
				"coverage":        tests.Coverage,
			}
		}
	}
	return result, nil
}

// completeJSON runs one chat completion in JSON mode and extracts the
// object from the reply, tolerating fenced or prefixed output.
func (o *OpenAIClient) completeJSON(ctx context.Context, system, user string, maxTokens int) (json.RawMessage, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.1,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}
	return extractJSON(resp.Choices[0].Message.Content), nil
}
