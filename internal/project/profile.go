// File path: internal/project/profile.go
package project

import (
	"regexp"
	"strings"
)

// Profile selects the target-language conventions used for default paths,
// scaffolding and the build manifest.
type Profile int

const (
	// ProfileDotNet targets C#/.NET 8; the original demo's default.
	ProfileDotNet Profile = iota
	// ProfileSpring targets Java/Spring Boot.
	ProfileSpring
)

// ProfileFor maps a user-facing target language to a profile. Anything
// unrecognised falls back to .NET, matching the original backend which only
// ever converted to C#.
func ProfileFor(target string) Profile {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "java", "spring", "java/spring", "spring boot":
		return ProfileSpring
	default:
		return ProfileDotNet
	}
}

func (p Profile) String() string {
	if p == ProfileSpring {
		return "spring"
	}
	return "dotnet"
}

// SourceExt returns the generated-source file extension for the profile.
func (p Profile) SourceExt() string {
	if p == ProfileSpring {
		return ".java"
	}
	return ".cs"
}

func (p Profile) defaultProject() string {
	if p == ProfileSpring {
		return defaultSpringPackage
	}
	return defaultDotNetProject
}

func (p Profile) namespaceRegexp() *regexp.Regexp {
	if p == ProfileSpring {
		return packagePattern
	}
	return namespacePattern
}

// sectionRule is one row of the static singular-section table: the logical
// section name and where its file lands when the backend supplies no
// explicit path. Templates substitute {class} and {project}.
type sectionRule struct {
	Key  string
	Dir  string
	Name string
}

// dotnetSections is the fixed materialisation order for singular sections
// in the .NET profile. Paths are relative to the project root directory.
var dotnetSections = []sectionRule{
	{Key: "Entity", Dir: "Models", Name: "{class}.cs"},
	{Key: "Repository", Dir: "Repositories/Interfaces", Name: "I{class}Repository.cs"},
	{Key: "RepositoryImpl", Dir: "Repositories", Name: "{class}Repository.cs"},
	{Key: "Service", Dir: "Services/Interfaces", Name: "I{class}Service.cs"},
	{Key: "ServiceImpl", Dir: "Services", Name: "{class}Service.cs"},
	{Key: "Controller", Dir: "Controllers", Name: "{class}Controller.cs"},
	{Key: "DbContext", Dir: "Data", Name: "ApplicationDbContext.cs"},
	{Key: "Program", Dir: "", Name: "Program.cs"},
	{Key: "Startup", Dir: "", Name: "Startup.cs"},
	{Key: "AppSettings", Dir: "", Name: "appsettings.json"},
	{Key: "AppSettingsDev", Dir: "", Name: "appsettings.Development.json"},
	{Key: "ProjectFile", Dir: "", Name: "{project}.csproj"},
	{Key: "Dependencies", Dir: "", Name: "DEPENDENCIES.md"},
}

// springSections mirrors the table for Java/Spring. The {pkg} placeholder
// expands to the package path derived from the inferred project name.
var springSections = []sectionRule{
	{Key: "Entity", Dir: "src/main/java/{pkg}/model", Name: "{class}.java"},
	{Key: "Repository", Dir: "src/main/java/{pkg}/repository", Name: "{class}Repository.java"},
	{Key: "RepositoryImpl", Dir: "src/main/java/{pkg}/repository", Name: "{class}RepositoryImpl.java"},
	{Key: "Service", Dir: "src/main/java/{pkg}/service", Name: "{class}Service.java"},
	{Key: "ServiceImpl", Dir: "src/main/java/{pkg}/service", Name: "{class}ServiceImpl.java"},
	{Key: "Controller", Dir: "src/main/java/{pkg}/controller", Name: "{class}Controller.java"},
	{Key: "DbContext", Dir: "src/main/java/{pkg}/config", Name: "PersistenceConfig.java"},
	{Key: "Program", Dir: "src/main/java/{pkg}", Name: "Application.java"},
	{Key: "AppSettings", Dir: "src/main/resources", Name: "application.properties"},
	{Key: "ProjectFile", Dir: "", Name: "pom.xml"},
	{Key: "Dependencies", Dir: "", Name: "DEPENDENCIES.md"},
}

// pluralRule maps a collection section to its default directory and the
// suffix appended when deriving a file name from a member key.
type pluralRule struct {
	Key    string
	Dir    string
	Suffix string
}

var dotnetPlurals = []pluralRule{
	{Key: "Entities", Dir: "Models", Suffix: ""},
	{Key: "Models", Dir: "Models", Suffix: ""},
	{Key: "Repositories", Dir: "Repositories", Suffix: "Repository"},
	{Key: "Services", Dir: "Services", Suffix: "Service"},
	{Key: "Controllers", Dir: "Controllers", Suffix: "Controller"},
	{Key: "Files", Dir: "", Suffix: ""},
}

var springPlurals = []pluralRule{
	{Key: "Entities", Dir: "src/main/java/{pkg}/model", Suffix: ""},
	{Key: "Models", Dir: "src/main/java/{pkg}/model", Suffix: ""},
	{Key: "Repositories", Dir: "src/main/java/{pkg}/repository", Suffix: "Repository"},
	{Key: "Services", Dir: "src/main/java/{pkg}/service", Suffix: "Service"},
	{Key: "Controllers", Dir: "src/main/java/{pkg}/controller", Suffix: "Controller"},
	{Key: "Files", Dir: "", Suffix: ""},
}

func (p Profile) singularRules() []sectionRule {
	if p == ProfileSpring {
		return springSections
	}
	return dotnetSections
}

func (p Profile) pluralRules() []pluralRule {
	if p == ProfileSpring {
		return springPlurals
	}
	return dotnetPlurals
}

// expand substitutes the identity placeholders into a table template.
func (p Profile) expand(template string, identity Identity) string {
	out := strings.ReplaceAll(template, "{class}", identity.ClassName)
	out = strings.ReplaceAll(out, "{project}", identity.ProjectName)
	if p == ProfileSpring {
		out = strings.ReplaceAll(out, "{pkg}", packagePath(identity.ProjectName))
	}
	return out
}

// projectRoot is the directory every generated project file lives under.
func (p Profile) projectRoot(identity Identity) string {
	if p == ProfileSpring {
		return artifactID(identity.ProjectName)
	}
	return identity.ProjectName
}

// testRoot is the directory the generated test sources live under.
func (p Profile) testRoot(identity Identity) string {
	if p == ProfileSpring {
		return joinPath(p.projectRoot(identity), "src/test/java", packagePath(identity.ProjectName))
	}
	return identity.ProjectName + ".Tests"
}

// packagePath converts a Java package name to its directory form.
func packagePath(pkg string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(pkg)), ".", "/")
}

// artifactID derives a maven artifact id from the last package segment.
func artifactID(pkg string) string {
	segments := strings.Split(strings.TrimSpace(pkg), ".")
	last := segments[len(segments)-1]
	if last == "" {
		return "project"
	}
	return strings.ToLower(last)
}
