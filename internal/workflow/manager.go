// File path: internal/workflow/manager.go
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/nicodishanthj/legacybridge/internal/archive"
	"github.com/nicodishanthj/legacybridge/internal/collector"
	"github.com/nicodishanthj/legacybridge/internal/common"
	"github.com/nicodishanthj/legacybridge/internal/gateway"
	"github.com/nicodishanthj/legacybridge/internal/project"
	"github.com/nicodishanthj/legacybridge/internal/requirements"
)

var (
	// ErrNoSources is returned when analysis is requested before any
	// recognisable COBOL source was uploaded.
	ErrNoSources = errors.New("no convertible source files uploaded")
	// ErrNotAnalyzed is returned when conversion is requested before a
	// successful analysis.
	ErrNotAnalyzed = errors.New("requirements analysis has not completed")
	// ErrNotConverted is returned when project output is requested before
	// a successful conversion.
	ErrNotConverted = errors.New("no conversion result available")
)

const sourceLanguage = "COBOL"

// Manager owns the single-session pipeline state: uploaded sources, the
// requirements analysis, the conversion result and the normalised project
// tree. All state lives in memory for the session and is discarded on
// Reset. The mutex serialises the session's sequential operations; the
// normaliser itself runs synchronously and never blocks.
type Manager struct {
	mu      sync.Mutex
	client  gateway.Client
	target  string
	sources *collector.SourceSet

	analysis   *gateway.AnalyzeResult
	document   *requirements.Document
	conversion *gateway.ConvertResult
	tree       *project.FileTree
}

// NewManager builds a manager around the chosen gateway. defaultTarget
// names the conversion target used when a request does not specify one.
func NewManager(client gateway.Client, defaultTarget string) *Manager {
	target := strings.TrimSpace(defaultTarget)
	if target == "" {
		target = "dotnet"
	}
	return &Manager{client: client, target: target, sources: collector.NewSourceSet()}
}

// GatewayName reports which gateway implementation is serving the session.
func (m *Manager) GatewayName() string {
	return m.client.Name()
}

// AddSources records uploaded files, classifying each by extension.
// Duplicate names are last-write-wins.
func (m *Manager) AddSources(files map[string]string) []collector.SourceFile {
	m.mu.Lock()
	defer m.mu.Unlock()
	added := make([]collector.SourceFile, 0, len(files))
	for name, content := range files {
		added = append(added, m.sources.Add(name, content))
	}
	common.Logger().Info("workflow: sources added", "added", len(added), "total", m.sources.Len())
	return added
}

// Sources lists the collected files sorted by name.
func (m *Manager) Sources() []collector.SourceFile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sources.Files()
}

// Analyze runs the first backend call and formats the returned
// requirements. Refused before any COBOL source is present.
func (m *Manager) Analyze(ctx context.Context) (*requirements.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	logger := common.Logger()
	if !m.sources.HasConvertible() {
		return nil, ErrNoSources
	}
	result, err := m.client.AnalyzeRequirements(ctx, gateway.AnalyzeRequest{
		SourceLanguage: sourceLanguage,
		TargetLanguage: m.target,
		FileData:       m.sources.FileData(),
	})
	if err != nil {
		return nil, fmt.Errorf("analyze requirements: %w", err)
	}
	document := requirements.Build(result.BusinessRequirements, result.TechnicalRequirements)
	m.analysis = result
	m.document = &document
	logger.Info("workflow: analysis stored", "items", len(document.Items))
	return &document, nil
}

// Convert runs the second backend call and normalises its response into
// the project tree. Requires a prior successful Analyze.
func (m *Manager) Convert(ctx context.Context, target string) (*project.FileTree, *gateway.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	logger := common.Logger()
	if m.analysis == nil {
		return nil, nil, ErrNotAnalyzed
	}
	resolved := strings.TrimSpace(target)
	if resolved == "" {
		resolved = m.target
	}
	result, err := m.client.Convert(ctx, gateway.ConvertRequest{
		SourceLanguage:        sourceLanguage,
		TargetLanguage:        resolved,
		SourceCode:            m.sources.CombinedSource(),
		BusinessRequirements:  m.analysis.BusinessRequirements,
		TechnicalRequirements: m.analysis.TechnicalRequirements,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("convert: %w", err)
	}
	raw := project.ParseRaw(result.ConvertedCode)
	tree := project.Normalize(raw, result.UnitTests, project.Options{Profile: project.ProfileFor(resolved)})
	m.conversion = result
	m.tree = tree
	logger.Info("workflow: conversion stored", "files", tree.Len(), "target", resolved)
	return tree, result, nil
}

// Tree returns the normalised project tree from the last conversion.
func (m *Manager) Tree() (*project.FileTree, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tree == nil {
		return nil, ErrNotConverted
	}
	return m.tree, nil
}

// Conversion returns the raw result of the last conversion call.
func (m *Manager) Conversion() (*gateway.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conversion == nil {
		return nil, ErrNotConverted
	}
	return m.conversion, nil
}

// Requirements returns the formatted document from the last analysis.
func (m *Manager) Requirements() (*requirements.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.document == nil {
		return nil, ErrNotAnalyzed
	}
	return m.document, nil
}

// Zip streams the normalised project as a zip archive.
func (m *Manager) Zip(w io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tree == nil {
		return ErrNotConverted
	}
	return archive.WriteZip(w, m.tree)
}

// ArchiveName is the suggested download file name for the current tree.
func (m *Manager) ArchiveName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tree == nil {
		return "project.zip"
	}
	return m.tree.Identity.ProjectName + ".zip"
}

// Reset discards all session state.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources.Reset()
	m.analysis = nil
	m.document = nil
	m.conversion = nil
	m.tree = nil
	common.Logger().Info("workflow: session reset")
}
