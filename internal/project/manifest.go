// File path: internal/project/manifest.go
package project

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// csharpProjectTypeGUID is the fixed Visual Studio project-type identifier
// for C# projects, referenced by every generated solution.
const csharpProjectTypeGUID = "FAE04EC0-301F-11D3-BF4B-00C04F79EFBC"

// writeManifest synthesises the top-level build manifest. For .NET that is
// a solution file with freshly generated project identifiers; uniqueness is
// all that matters, the values themselves carry no meaning and only
// structural presence is ever asserted. For Spring the pom written during
// scaffolding already is the build descriptor, so nothing further is added.
func writeManifest(tree *FileTree, profile Profile, identity Identity, withTests bool) {
	if profile == ProfileSpring {
		return
	}
	projectGUID := newSolutionGUID()
	testGUID := newSolutionGUID()

	var builder strings.Builder
	builder.WriteString("Microsoft Visual Studio Solution File, Format Version 12.00\n")
	builder.WriteString("# Visual Studio Version 17\n")
	builder.WriteString("VisualStudioVersion = 17.8.34330.188\n")
	builder.WriteString("MinimumVisualStudioVersion = 10.0.40219.1\n")
	fmt.Fprintf(&builder, "Project(\"{%s}\") = \"%s\", \"%s\\%s.csproj\", \"{%s}\"\nEndProject\n",
		csharpProjectTypeGUID, identity.ProjectName, identity.ProjectName, identity.ProjectName, projectGUID)
	if withTests {
		fmt.Fprintf(&builder, "Project(\"{%s}\") = \"%s.Tests\", \"%s.Tests\\%s.Tests.csproj\", \"{%s}\"\nEndProject\n",
			csharpProjectTypeGUID, identity.ProjectName, identity.ProjectName, identity.ProjectName, testGUID)
	}
	builder.WriteString("Global\n")
	builder.WriteString("\tGlobalSection(SolutionConfigurationPlatforms) = preSolution\n")
	builder.WriteString("\t\tDebug|Any CPU = Debug|Any CPU\n")
	builder.WriteString("\t\tRelease|Any CPU = Release|Any CPU\n")
	builder.WriteString("\tEndGlobalSection\n")
	builder.WriteString("\tGlobalSection(ProjectConfigurationPlatforms) = postSolution\n")
	writeSolutionConfigs(&builder, projectGUID)
	if withTests {
		writeSolutionConfigs(&builder, testGUID)
	}
	builder.WriteString("\tEndGlobalSection\n")
	builder.WriteString("\tGlobalSection(SolutionProperties) = preSolution\n\t\tHideSolutionNode = FALSE\n\tEndGlobalSection\n")
	builder.WriteString("EndGlobal\n")

	tree.Put(identity.ProjectName+".sln", builder.String())
}

func writeSolutionConfigs(builder *strings.Builder, guid string) {
	for _, cfg := range []string{"Debug", "Release"} {
		fmt.Fprintf(builder, "\t\t{%s}.%s|Any CPU.ActiveCfg = %s|Any CPU\n", guid, cfg, cfg)
		fmt.Fprintf(builder, "\t\t{%s}.%s|Any CPU.Build.0 = %s|Any CPU\n", guid, cfg, cfg)
	}
}

// newSolutionGUID generates one uppercase identifier at the point of use.
// Deliberately not seeded or made deterministic.
func newSolutionGUID() string {
	return strings.ToUpper(uuid.NewString())
}
