// File path: internal/project/testsrc.go
package project

import (
	"regexp"
	"strings"
)

// TestFolder is the inferred placement bucket for generated test code.
type TestFolder string

const (
	FolderServices     TestFolder = "Services"
	FolderControllers  TestFolder = "Controllers"
	FolderRepositories TestFolder = "Repositories"
)

var (
	fenceOpenPattern  = regexp.MustCompile("^```[a-zA-Z#+]*[ \\t]*\\r?\\n?")
	fenceClosePattern = regexp.MustCompile("\\r?\\n?```\\s*$")
)

// StripFences removes a surrounding markdown code fence from generated
// source, which backends frequently wrap test code in.
func StripFences(src string) string {
	out := strings.TrimSpace(src)
	out = fenceOpenPattern.ReplaceAllString(out, "")
	out = fenceClosePattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// TestArtifact describes where one generated test blob landed.
type TestArtifact struct {
	Folder    TestFolder
	ClassName string
}

// inferTestArtifact scans test source for a namespace/package hint to pick
// the target folder and a type declaration to pick the class name. This is
// the same best-effort sniffing as identity inference: defaults apply
// whenever no signal is found.
func inferTestArtifact(src string, identity Identity, profile Profile) TestArtifact {
	artifact := TestArtifact{Folder: FolderServices}
	var ns string
	if match := profile.namespaceRegexp().FindStringSubmatch(src); match != nil {
		ns = strings.ToLower(match[1])
	}
	switch {
	case strings.HasSuffix(ns, ".controllers") || strings.HasSuffix(ns, ".controller"):
		artifact.Folder = FolderControllers
	case strings.HasSuffix(ns, ".repositories") || strings.HasSuffix(ns, ".repository"):
		artifact.Folder = FolderRepositories
	}
	if match := classPattern.FindStringSubmatch(src); match != nil {
		artifact.ClassName = match[1]
	} else {
		artifact.ClassName = identity.ClassName + "ServiceTests"
	}
	return artifact
}

// placeTests writes the generated test source into the test project at the
// inferred folder, plus the test-project descriptor and shared usings for
// the .NET profile. Reports whether a test file was materialised.
func placeTests(tree *FileTree, profile Profile, identity Identity, source string) bool {
	code := StripFences(source)
	if code == "" {
		return false
	}
	artifact := inferTestArtifact(code, identity, profile)
	if profile == ProfileSpring {
		folder := strings.ToLower(strings.TrimSuffix(string(artifact.Folder), "s"))
		path := joinPath(profile.testRoot(identity), folder, artifact.ClassName+".java")
		return tree.Put(path, code)
	}
	testRoot := profile.testRoot(identity)
	placed := tree.Put(joinPath(testRoot, string(artifact.Folder), artifact.ClassName+".cs"), code)
	if !placed {
		return false
	}
	if !tree.Has(joinPath(testRoot, identity.ProjectName+".Tests.csproj")) {
		tree.Put(joinPath(testRoot, identity.ProjectName+".Tests.csproj"), dotnetTestProjectFile(identity))
	}
	if !tree.Has(joinPath(testRoot, "Usings.cs")) {
		tree.Put(joinPath(testRoot, "Usings.cs"), dotnetTestUsings())
	}
	return true
}

func dotnetTestProjectFile(identity Identity) string {
	return `<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <Nullable>enable</Nullable>
    <IsPackable>false</IsPackable>
  </PropertyGroup>

  <ItemGroup>
    <PackageReference Include="Microsoft.NET.Test.Sdk" Version="17.8.0" />
    <PackageReference Include="xunit" Version="2.6.2" />
    <PackageReference Include="xunit.runner.visualstudio" Version="2.5.4" />
    <PackageReference Include="Moq" Version="4.20.70" />
  </ItemGroup>

  <ItemGroup>
    <ProjectReference Include="..\` + identity.ProjectName + `\` + identity.ProjectName + `.csproj" />
  </ItemGroup>

</Project>
`
}

func dotnetTestUsings() string {
	return `global using Xunit;
global using Moq;
`
}
