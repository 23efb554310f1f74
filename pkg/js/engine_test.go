package js

import (
	"os"
	"path/filepath"
	"testing"
)

func run(t *testing.T, script string) *Engine {
	t.Helper()
	engine := New()
	if err := engine.Run(script); err != nil {
		t.Fatal(err)
	}
	return engine
}

func TestFlexNodeAndLayout(t *testing.T) {
	run(t, `
		var root = flex.node("container", "display: flex; gap: 10px");
		var a = flex.node("item", "flex: 1 1 0");
		var b = flex.node("item", "flex: 1 1 0");
		root.append(a, b);
		flex.layout(root, 210, 100);

		var r = a.rect();
		if (r.width !== 100) throw new Error("a.width: " + r.width);
		if (r.x !== 0) throw new Error("a.x: " + r.x);
		var s = b.rect();
		if (s.x !== 110) throw new Error("b.x: " + s.x);
		if (s.height !== 100) throw new Error("b.height: " + s.height);
	`)
}

func TestStyleChaining(t *testing.T) {
	run(t, `
		var root = flex.node("container", "display: flex");
		var item = flex.node("item").style("flex", "0 0 50px").style("height", "20px");
		root.append(item);
		flex.layout(root, 200, 100);
		if (item.rect().width !== 50) throw new Error("width: " + item.rect().width);
		if (item.rect().height !== 20) throw new Error("height: " + item.rect().height);
	`)
}

func TestMeasureDrivesAutoBasis(t *testing.T) {
	run(t, `
		var root = flex.node("container", "display: flex");
		var text = flex.node("text", "flex-shrink: 0");
		text.measure({minWidth: 30, maxWidth: 90, height: 14});
		root.append(text);
		flex.layout(root, 400, 50);
		if (text.rect().width !== 90) throw new Error("width: " + text.rect().width);
	`)
}

func TestProxyIdentity(t *testing.T) {
	run(t, `
		var root = flex.node("container", "display: flex");
		var a = flex.node("item");
		root.append(a);
		if (root.children()[0] !== a) throw new Error("proxy identity broken");
	`)
}

func TestLayoutErrorSurfacesToScript(t *testing.T) {
	engine := New()
	err := engine.Run(`
		var orphan = flex.node("item");
		flex.layout({}, 100, 100);
	`)
	if err == nil {
		t.Fatal("expected an error for a non-node layout root")
	}
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	engine := New()
	if err := engine.Run(`var root = flex.node("container", "display: flex");`); err != nil {
		t.Fatal(err)
	}
	if err := engine.Run(`
		root.append(flex.node("item", "flex: 1 1 0"));
		flex.layout(root, 100, 40);
		if (root.rect().width !== 100) throw new Error("width: " + root.rect().width);
	`); err != nil {
		t.Fatal(err)
	}
	if engine.Tree().Len() != 2 {
		t.Errorf("tree has %d nodes, want 2", engine.Tree().Len())
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.js")
	script := `
		var root = flex.node("container", "display: flex");
		root.append(flex.node("item", "width: 60px; height: 20px"));
		flex.layout(root, -1, -1);
		if (root.rect().width !== 60) throw new Error("width: " + root.rect().width);
	`
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	if err := New().RunFile(path); err != nil {
		t.Fatal(err)
	}
}
