// Package js exposes the layout engine to JavaScript. Scripts build a node
// tree, run layout, and read back resolved geometry, which makes it easy to
// port layout test cases written against browser APIs.
package js

import (
	"fmt"
	"os"

	"github.com/dop251/goja"

	"flexlay/pkg/layout"
)

// Engine executes JavaScript against a layout tree.
type Engine struct {
	vm     *goja.Runtime
	tree   *layout.Tree
	layout *layout.LayoutEngine
}

// New creates a JS engine with a fresh goja runtime, an empty tree, and the
// flex/console globals registered.
func New() *Engine {
	e := &Engine{
		vm:     goja.New(),
		tree:   layout.NewTree(),
		layout: layout.NewLayoutEngine(),
	}
	registerConsole(e.vm)
	e.registerFlex()
	return e
}

// Tree returns the tree the scripts have built so far.
func (e *Engine) Tree() *layout.Tree {
	return e.tree
}

// Run executes one script. Goja exceptions come back as errors; state
// persists across calls, so scripts may build incrementally.
func (e *Engine) Run(script string) error {
	if _, err := e.vm.RunString(script); err != nil {
		return fmt.Errorf("js: %w", err)
	}
	return nil
}

// RunFile reads and executes a script file.
func (e *Engine) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("js: read %s: %w", path, err)
	}
	prog, err := goja.Compile(path, string(src), false)
	if err != nil {
		return fmt.Errorf("js: %s: %w", path, err)
	}
	if _, err := e.vm.RunProgram(prog); err != nil {
		return fmt.Errorf("js: %s: %w", path, err)
	}
	return nil
}
