// CI functions for nglint.
//
// The functions lint the module, run the unit, integration and end-to-end
// suites, and cross-compile the release binaries. They can be called from the
// dagger CLI, e.g. `dagger call unit-tests --source-dir=. stdout`.

package main

import (
	"context"
	"fmt"
	"runtime"

	"nglint/dagger/internal/dagger"

	"golang.org/x/sync/errgroup"
)

const containerPath = "/go/src/github.com/kevinphelps/nglint"

type Nglint struct{}

// Lint runs golangci-lint on the main module (./...) only.
func (ci *Nglint) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	c = ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir)

	return c.WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *Nglint) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTest(sourceDir, "go test -tags=unit ./...")
}

// IntegrationTests returns a container that runs the integration tests.
func (ci *Nglint) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTest(sourceDir, "go test -tags=integration ./...")
}

// EndToEndTests returns a container that runs the end-to-end tests.
func (ci *Nglint) EndToEndTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTest(sourceDir, "go test -tags=e2e ./test/ -v")
}

// Check runs the linter and every test suite in parallel.
func (ci *Nglint) Check(ctx context.Context, sourceDir *dagger.Directory) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, c := range map[string]*dagger.Container{
		"lint":        ci.Lint(sourceDir),
		"unit":        ci.UnitTests(sourceDir),
		"integration": ci.IntegrationTests(sourceDir),
		"e2e":         ci.EndToEndTests(sourceDir),
	} {
		g.Go(func() error {
			if _, err := c.Sync(ctx); err != nil {
				return fmt.Errorf("%s failed: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Binaries cross-compiles nglint for every release platform.
func (ci *Nglint) Binaries(
	sourceDir *dagger.Directory,
	// +optional
	// +default="dev"
	version string,
) *dagger.Directory {
	c := ci.withGoCodeAndCacheAsWorkDirectory(
		dag.Container().From("golang:"+goVersion()+"-alpine"), sourceDir).
		WithEnvVariable("CGO_ENABLED", "0")

	out := dag.Directory()
	for _, name := range AvailablePlatforms() {
		p := Platforms[name]
		built := c.
			WithEnvVariable("GOOS", p.OS).
			WithEnvVariable("GOARCH", p.Arch).
			WithEnvVariable("GOARM", p.Arm).
			WithExec([]string{
				"go", "build",
				"-ldflags", "-s -w -X main.version=" + version,
				"-o", "/out/" + p.BinaryName(),
				"./cmd/nglint",
			})
		out = out.WithFile(p.BinaryName(), built.File("/out/"+p.BinaryName()))
	}
	return out
}

func (ci *Nglint) goTest(sourceDir *dagger.Directory, command string) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c", command})
}

func (ci *Nglint) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
