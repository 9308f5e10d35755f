// File path: internal/project/scaffold.go
package project

import (
	"fmt"
	"strings"
)

// injectScaffolding guarantees the structural minimum of a buildable-looking
// project: an entry point, a build descriptor and a settings file. Each is
// added only when the backend did not already supply it, so the three are
// present exactly once in every non-empty tree.
func injectScaffolding(tree *FileTree, profile Profile, identity Identity) {
	root := profile.projectRoot(identity)
	if profile == ProfileSpring {
		pkg := strings.ToLower(identity.ProjectName)
		pkgDir := joinPath(root, "src/main/java", packagePath(pkg))
		if !tree.Has(joinPath(pkgDir, "Application.java")) {
			tree.Put(joinPath(pkgDir, "Application.java"), springApplication(pkg))
		}
		if !tree.Has(joinPath(root, "pom.xml")) {
			tree.Put(joinPath(root, "pom.xml"), springPom(pkg, artifactID(pkg)))
		}
		if !tree.Has(joinPath(root, "src/main/resources/application.properties")) {
			tree.Put(joinPath(root, "src/main/resources/application.properties"), springProperties(artifactID(pkg)))
		}
		return
	}
	if !tree.Has(joinPath(root, "Program.cs")) {
		tree.Put(joinPath(root, "Program.cs"), dotnetProgram(identity))
	}
	if !tree.Has(joinPath(root, identity.ProjectName+".csproj")) {
		tree.Put(joinPath(root, identity.ProjectName+".csproj"), dotnetProjectFile())
	}
	if !tree.Has(joinPath(root, "appsettings.json")) {
		tree.Put(joinPath(root, "appsettings.json"), dotnetAppSettings(identity))
	}
}

func dotnetProgram(identity Identity) string {
	return fmt.Sprintf(`using Microsoft.AspNetCore.Builder;
using Microsoft.Extensions.DependencyInjection;
using Microsoft.Extensions.Hosting;

namespace %s
{
    public class Program
    {
        public static void Main(string[] args)
        {
            var builder = WebApplication.CreateBuilder(args);

            builder.Services.AddControllers();
            builder.Services.AddEndpointsApiExplorer();

            var app = builder.Build();

            app.UseHttpsRedirection();
            app.UseAuthorization();
            app.MapControllers();

            app.Run();
        }
    }
}
`, identity.ProjectName)
}

func dotnetProjectFile() string {
	return `<Project Sdk="Microsoft.NET.Sdk.Web">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <Nullable>enable</Nullable>
    <ImplicitUsings>enable</ImplicitUsings>
  </PropertyGroup>

  <ItemGroup>
    <PackageReference Include="Microsoft.EntityFrameworkCore" Version="8.0.0" />
    <PackageReference Include="Pomelo.EntityFrameworkCore.MySql" Version="8.0.0" />
  </ItemGroup>

</Project>
`
}

func dotnetAppSettings(identity Identity) string {
	return fmt.Sprintf(`{
  "Logging": {
    "LogLevel": {
      "Default": "Information",
      "Microsoft.AspNetCore": "Warning"
    }
  },
  "ConnectionStrings": {
    "DefaultConnection": "Server=localhost;Database=%sDb;User=root;Password=;"
  },
  "AllowedHosts": "*"
}
`, identity.ClassName)
}

func springApplication(pkg string) string {
	return fmt.Sprintf(`package %s;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class Application {
    public static void main(String[] args) {
        SpringApplication.run(Application.class, args);
    }
}
`, pkg)
}

func springPom(pkg, artifact string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>
    <parent>
        <groupId>org.springframework.boot</groupId>
        <artifactId>spring-boot-starter-parent</artifactId>
        <version>3.2.5</version>
        <relativePath/>
    </parent>
    <groupId>%s</groupId>
    <artifactId>%s</artifactId>
    <version>0.0.1-SNAPSHOT</version>
    <name>%s</name>
    <description>Converted legacy application</description>
    <properties>
        <java.version>17</java.version>
    </properties>
    <dependencies>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
        </dependency>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-data-jpa</artifactId>
        </dependency>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-test</artifactId>
            <scope>test</scope>
        </dependency>
    </dependencies>
    <build>
        <plugins>
            <plugin>
                <groupId>org.springframework.boot</groupId>
                <artifactId>spring-boot-maven-plugin</artifactId>
            </plugin>
        </plugins>
    </build>
</project>
`, pkg, artifact, artifact)
}

func springProperties(artifact string) string {
	return fmt.Sprintf("spring.application.name=%s\nspring.datasource.url=jdbc:mysql://localhost:3306/%sdb\nspring.jpa.hibernate.ddl-auto=update\n", artifact, artifact)
}
