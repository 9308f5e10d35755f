// File path: internal/gateway/prompts.go
package gateway

import (
	"fmt"
	"strings"
)

// The system prompts mirror the ones the hosted backend uses, so direct
// mode produces responses with the same section shapes the normaliser
// already understands.

const businessSystemPrompt = `You are an expert in analyzing COBOL code to extract business requirements. Output your analysis in JSON format with the following structure:
{
  "Overview": {"Purpose of the System": "...", "Context and Business Impact": "..."},
  "Objectives": {"Primary Objective": "...", "Key Outcomes": "..."},
  "Business Rules & Requirements": {"Business Purpose": "...", "Business Rules": "...", "Impact on System": "...", "Constraints": "..."},
  "Assumptions & Recommendations": {"Assumptions": "...", "Recommendations": "..."},
  "Expected Output": {"Output": "...", "Business Significance": "..."}
}`

const technicalSystemPrompt = `You are an expert in COBOL migration. Identify the technical challenges and requirements for migrating the given code. Output JSON:
{
  "technicalRequirements": [
    {"id": "TR1", "description": "...", "complexity": "High/Medium/Low"}
  ]
}`

func conversionSystemPrompt(target string) string {
	ext, sample := ".cs", "User"
	if strings.Contains(strings.ToLower(target), "java") || strings.Contains(strings.ToLower(target), "spring") {
		ext, sample = ".java", "User"
	}
	return fmt.Sprintf(`You are an expert COBOL to %s code converter. Convert the legacy code to a complete, idiomatic application while preserving all business logic. Return JSON with this structure:
{
  "convertedCode": {
    "Entity": {"FileName": "%s%s", "Path": "Models/", "content": ""},
    "Repository": {"FileName": "I%sRepository%s", "Path": "Repositories/Interfaces/", "content": ""},
    "RepositoryImpl": {"FileName": "%sRepository%s", "Path": "Repositories/", "content": ""},
    "Service": {"FileName": "I%sService%s", "Path": "Services/Interfaces/", "content": ""},
    "ServiceImpl": {"FileName": "%sService%s", "Path": "Services/", "content": ""},
    "Controller": {"FileName": "%sController%s", "Path": "Controllers/", "content": ""},
    "Program": {"FileName": "Program%s", "Path": "./", "content": ""},
    "AppSettings": {"FileName": "appsettings.json", "Path": "./", "content": ""},
    "ProjectFile": {"FileName": "Project.csproj", "Path": "./", "content": ""},
    "Dependencies": {"content": "packages and dependencies needed"}
  },
  "databaseUsed": true,
  "conversionNotes": "...",
  "potentialIssues": ["..."]
}
Only include database initialization code if the source code contains database or SQL operations.`,
		target, sample, ext, sample, ext, sample, ext, sample, ext, sample, ext, sample, ext, ext)
}

const unitTestSystemPrompt = `You are an expert test engineer. Write comprehensive unit tests for the converted application covering all business logic and edge cases. Return JSON:
{
  "unitTestCode": "the complete unit test code",
  "testDescription": "...",
  "coverage": ["..."]
}`

func buildAnalysisUserPrompt(kind string, files map[string]string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Analyze the following legacy source files and extract the %s requirements.\n", kind)
	for name, content := range files {
		fmt.Fprintf(&builder, "\n--- %s ---\n%s\n", name, content)
	}
	return builder.String()
}

func buildConversionUserPrompt(req ConvertRequest) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Convert this %s code to %s.\n", req.SourceLanguage, req.TargetLanguage)
	if req.BusinessRequirements != nil {
		fmt.Fprintf(&builder, "\nBusiness requirements:\n%v\n", req.BusinessRequirements)
	}
	if req.TechnicalRequirements != nil {
		fmt.Fprintf(&builder, "\nTechnical requirements:\n%v\n", req.TechnicalRequirements)
	}
	fmt.Fprintf(&builder, "\nSource code:\n%s\n", req.SourceCode)
	return builder.String()
}
