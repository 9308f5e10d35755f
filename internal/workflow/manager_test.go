// File path: internal/workflow/manager_test.go
package workflow

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nicodishanthj/legacybridge/internal/gateway"
)

// fakeGateway records the requests it receives and replays canned results.
type fakeGateway struct {
	analyzeReq *gateway.AnalyzeRequest
	convertReq *gateway.ConvertRequest
	analyzeErr error
	convertErr error
	converted  string
	unitTests  string
}

func (f *fakeGateway) Name() string                     { return "fake" }
func (f *fakeGateway) Health(ctx context.Context) error { return nil }

func (f *fakeGateway) AnalyzeRequirements(ctx context.Context, req gateway.AnalyzeRequest) (*gateway.AnalyzeResult, error) {
	f.analyzeReq = &req
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return &gateway.AnalyzeResult{
		BusinessRequirements: "The program computes payroll.",
		TechnicalRequirements: map[string]interface{}{
			"technicalRequirements": []interface{}{
				map[string]interface{}{"id": "TR1", "description": "Use a relational store.", "complexity": "Low"},
			},
		},
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}, nil
}

func (f *fakeGateway) Convert(ctx context.Context, req gateway.ConvertRequest) (*gateway.ConvertResult, error) {
	f.convertReq = &req
	if f.convertErr != nil {
		return nil, f.convertErr
	}
	return &gateway.ConvertResult{
		Status:        "success",
		ConvertedCode: json.RawMessage(f.converted),
		UnitTests:     f.unitTests,
	}, nil
}

const entitySource = "namespace Acme.Payroll.Models\n{\n    public class Employee\n    {\n    }\n}"

func convertedPayload(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"Entity": map[string]interface{}{"content": entitySource, "Path": "Models/"},
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return string(raw)
}

func TestAnalyzeRequiresConvertibleSource(t *testing.T) {
	manager := NewManager(&fakeGateway{}, "dotnet")
	manager.AddSources(map[string]string{"employee.cpy": "01 EMPLOYEE-REC."})
	if _, err := manager.Analyze(context.Background()); !errors.Is(err, ErrNoSources) {
		t.Fatalf("expected ErrNoSources, got %v", err)
	}
}

func TestConvertRequiresAnalysis(t *testing.T) {
	manager := NewManager(&fakeGateway{}, "dotnet")
	manager.AddSources(map[string]string{"payroll.cbl": "PROGRAM"})
	if _, _, err := manager.Convert(context.Background(), ""); !errors.Is(err, ErrNotAnalyzed) {
		t.Fatalf("expected ErrNotAnalyzed, got %v", err)
	}
}

func TestPipelineHappyPath(t *testing.T) {
	fake := &fakeGateway{converted: convertedPayload(t)}
	manager := NewManager(fake, "dotnet")
	manager.AddSources(map[string]string{
		"payroll.cbl":  "IDENTIFICATION DIVISION.",
		"employee.cpy": "01 EMPLOYEE-REC.",
	})

	document, err := manager.Analyze(context.Background())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(document.Items) == 0 {
		t.Fatalf("expected extracted requirement items")
	}
	if fake.analyzeReq.SourceLanguage != "COBOL" || fake.analyzeReq.TargetLanguage != "dotnet" {
		t.Fatalf("analyze request misbuilt: %+v", fake.analyzeReq)
	}
	if len(fake.analyzeReq.FileData) != 2 {
		t.Fatalf("all uploads should reach analysis: %+v", fake.analyzeReq.FileData)
	}

	tree, result, err := manager.Convert(context.Background(), "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.Status != "success" {
		t.Fatalf("unexpected result: %+v", result)
	}
	// Prior analysis travels with the conversion request.
	if fake.convertReq.BusinessRequirements == nil || fake.convertReq.TechnicalRequirements == nil {
		t.Fatalf("analysis not forwarded: %+v", fake.convertReq)
	}
	if fake.convertReq.SourceCode == "" {
		t.Fatalf("combined source missing")
	}
	if tree.Identity.ProjectName != "Acme.Payroll" || tree.Identity.ClassName != "Employee" {
		t.Fatalf("identity not inferred: %+v", tree.Identity)
	}
	if !tree.Has("Acme.Payroll/Models/Employee.cs") {
		t.Fatalf("entity not materialised: %v", tree.Paths())
	}

	stored, err := manager.Tree()
	if err != nil || stored != tree {
		t.Fatalf("stored tree mismatch: %v", err)
	}
	if manager.ArchiveName() != "Acme.Payroll.zip" {
		t.Fatalf("unexpected archive name %q", manager.ArchiveName())
	}
}

func TestConvertTargetOverride(t *testing.T) {
	fake := &fakeGateway{converted: convertedPayload(t)}
	manager := NewManager(fake, "dotnet")
	manager.AddSources(map[string]string{"payroll.cbl": "PROGRAM"})
	if _, err := manager.Analyze(context.Background()); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, _, err := manager.Convert(context.Background(), "java"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if fake.convertReq.TargetLanguage != "java" {
		t.Fatalf("target override ignored: %+v", fake.convertReq)
	}
}

func TestConvertGatewayFailurePreservesState(t *testing.T) {
	fake := &fakeGateway{convertErr: gateway.ErrUnavailable}
	manager := NewManager(fake, "dotnet")
	manager.AddSources(map[string]string{"payroll.cbl": "PROGRAM"})
	if _, err := manager.Analyze(context.Background()); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, _, err := manager.Convert(context.Background(), ""); !errors.Is(err, gateway.ErrUnavailable) {
		t.Fatalf("expected wrapped ErrUnavailable, got %v", err)
	}
	if _, err := manager.Tree(); !errors.Is(err, ErrNotConverted) {
		t.Fatalf("failed conversion must not leave a tree: %v", err)
	}
	// Analysis survives so the user can retry conversion alone.
	if _, err := manager.Requirements(); err != nil {
		t.Fatalf("analysis should survive a failed conversion: %v", err)
	}
}

func TestZipStreamsProject(t *testing.T) {
	fake := &fakeGateway{converted: convertedPayload(t)}
	manager := NewManager(fake, "dotnet")
	manager.AddSources(map[string]string{"payroll.cbl": "PROGRAM"})
	if _, err := manager.Analyze(context.Background()); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, _, err := manager.Convert(context.Background(), ""); err != nil {
		t.Fatalf("convert: %v", err)
	}
	var buffer bytes.Buffer
	if err := manager.Zip(&buffer); err != nil {
		t.Fatalf("zip: %v", err)
	}
	reader, err := zip.NewReader(bytes.NewReader(buffer.Bytes()), int64(buffer.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if len(reader.File) == 0 {
		t.Fatalf("zip should contain the project files")
	}
}

func TestResetClearsSession(t *testing.T) {
	fake := &fakeGateway{converted: convertedPayload(t)}
	manager := NewManager(fake, "dotnet")
	manager.AddSources(map[string]string{"payroll.cbl": "PROGRAM"})
	if _, err := manager.Analyze(context.Background()); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, _, err := manager.Convert(context.Background(), ""); err != nil {
		t.Fatalf("convert: %v", err)
	}
	manager.Reset()
	if len(manager.Sources()) != 0 {
		t.Fatalf("sources should be cleared")
	}
	if _, err := manager.Requirements(); !errors.Is(err, ErrNotAnalyzed) {
		t.Fatalf("analysis should be cleared: %v", err)
	}
	if _, err := manager.Tree(); !errors.Is(err, ErrNotConverted) {
		t.Fatalf("tree should be cleared: %v", err)
	}
	if manager.ArchiveName() != "project.zip" {
		t.Fatalf("archive name should fall back, got %q", manager.ArchiveName())
	}
}
