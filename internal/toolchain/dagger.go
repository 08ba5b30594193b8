package toolchain

import "context"

// Dagger wraps the dagger CLI commands used to initialize and regenerate
// modules.
type Dagger struct {
	runner Runner
	binary string
}

// NewDagger returns a Dagger that invokes "dagger" through runner.
func NewDagger(runner Runner) *Dagger {
	return &Dagger{runner: runner, binary: "dagger"}
}

// Init runs "dagger init --sdk go --name <name> --source ." in dir.
func (d *Dagger) Init(ctx context.Context, dir, name string) error {
	return d.runner.Run(ctx, dir, d.binary, "init", "--sdk", "go", "--name", name, "--source", ".")
}

// Install runs "dagger install <source>" in dir.
func (d *Dagger) Install(ctx context.Context, dir, source string) error {
	return d.runner.Run(ctx, dir, d.binary, "install", source)
}

// Develop runs "dagger develop" in dir, regenerating the module bindings.
func (d *Dagger) Develop(ctx context.Context, dir string) error {
	return d.runner.Run(ctx, dir, d.binary, "develop")
}

// GoFmt runs "go fmt ./..." in dir.
func GoFmt(ctx context.Context, runner Runner, dir string) error {
	return runner.Run(ctx, dir, "go", "fmt", "./...")
}
