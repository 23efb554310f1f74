package layout

import (
	"testing"

	"flexlay/pkg/css"
)

func TestJustify_Modes(t *testing.T) {
	cases := []struct {
		mode  string
		wantX []float64
	}{
		{"flex-start", []float64{0, 100}},
		{"flex-end", []float64{200, 300}},
		{"center", []float64{100, 200}},
		{"space-between", []float64{0, 300}},
		{"space-around", []float64{50, 250}},
		{"space-evenly", []float64{200.0 / 3, 400.0/3 + 100}},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			tree, root, kids := buildContainer(
				"display: flex; justify-content: "+tc.mode,
				"width: 100px; flex-shrink: 0",
				"width: 100px; flex-shrink: 0")
			layoutOrFail(t, tree, root, 400, 50)
			for i, id := range kids {
				if x := tree.Node(id).Rect.X; !approx(x, tc.wantX[i]) {
					t.Errorf("item %d: x = %g, want %g", i, x, tc.wantX[i])
				}
			}
		})
	}
}

func TestJustify_NegativeLeftoverFallsBackToStart(t *testing.T) {
	// Overflowing content ignores the distribution mode and packs from
	// the start.
	tree, root, kids := buildContainer(
		"display: flex; justify-content: space-between",
		"flex: 0 0 300px", "flex: 0 0 300px")
	layoutOrFail(t, tree, root, 400, 50)

	if x := tree.Node(kids[0]).Rect.X; !approx(x, 0) {
		t.Errorf("first item x = %g, want 0", x)
	}
	if x := tree.Node(kids[1]).Rect.X; !approx(x, 300) {
		t.Errorf("second item x = %g, want 300", x)
	}
}

func TestAlignItems_Modes(t *testing.T) {
	cases := []struct {
		mode  string
		wantY float64
	}{
		{"flex-start", 0},
		{"center", 30},
		{"flex-end", 60},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			tree, root, kids := buildContainer(
				"display: flex; align-items: "+tc.mode,
				"width: 50px; height: 40px")
			layoutOrFail(t, tree, root, 400, 100)
			if y := tree.Node(kids[0]).Rect.Y; !approx(y, tc.wantY) {
				t.Errorf("y = %g, want %g", y, tc.wantY)
			}
		})
	}
}

func TestAlignItems_StretchFillsLine(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"width: 50px",
		"width: 50px; height: 40px")
	layoutOrFail(t, tree, root, 400, 100)

	// Auto-height item stretches to the line, explicit height does not.
	if h := tree.Node(kids[0]).Rect.Height; !approx(h, 100) {
		t.Errorf("auto-height item should stretch to 100, got %g", h)
	}
	if h := tree.Node(kids[1]).Rect.Height; !approx(h, 40) {
		t.Errorf("fixed-height item must keep 40, got %g", h)
	}
}

func TestAlignItems_StretchRespectsMaxHeight(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"width: 50px; max-height: 60px")
	layoutOrFail(t, tree, root, 400, 100)

	if h := tree.Node(kids[0]).Rect.Height; !approx(h, 60) {
		t.Errorf("stretch must re-clamp against max-height, got %g", h)
	}
}

func TestAlignSelf_OverridesContainer(t *testing.T) {
	tree, root, kids := buildContainer("display: flex; align-items: flex-start",
		"width: 50px; height: 40px",
		"width: 50px; height: 40px; align-self: flex-end")
	layoutOrFail(t, tree, root, 400, 100)

	if y := tree.Node(kids[0]).Rect.Y; !approx(y, 0) {
		t.Errorf("first item y = %g, want 0", y)
	}
	if y := tree.Node(kids[1]).Rect.Y; !approx(y, 60) {
		t.Errorf("align-self item y = %g, want 60", y)
	}
}

func TestAlign_Baseline(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("container",
		css.ParseInlineStyle("display: flex; align-items: baseline"))
	a := tree.NewNode("text", css.ParseInlineStyle("width: 50px; height: 40px"))
	b := tree.NewNode("text", css.ParseInlineStyle("width: 50px; height: 20px"))
	tree.AddChild(root, a)
	tree.AddChild(root, b)
	tree.SetMeasure(a, func() Metrics {
		return Metrics{Height: 40, Baseline: 30, HasBaseline: true}
	})
	tree.SetMeasure(b, func() Metrics {
		return Metrics{Height: 20, Baseline: 10, HasBaseline: true}
	})
	layoutOrFail(t, tree, root, 400, 100)

	// Line baseline is the max ascent (30); each item sits so its own
	// baseline lands there.
	if y := tree.Node(a).Rect.Y; !approx(y, 0) {
		t.Errorf("deep-baseline item y = %g, want 0", y)
	}
	if y := tree.Node(b).Rect.Y; !approx(y, 20) {
		t.Errorf("shallow-baseline item y = %g, want 20", y)
	}
}

func TestWrap_BreaksLines(t *testing.T) {
	tree, root, kids := buildContainer("display: flex; flex-wrap: wrap",
		"flex: 0 0 60px; height: 20px",
		"flex: 0 0 60px; height: 20px",
		"flex: 0 0 60px; height: 20px")
	layoutOrFail(t, tree, root, 130, Indefinite)

	// 60+60 fits in 130, the third wraps.
	if y := tree.Node(kids[1]).Rect.Y; !approx(y, 0) {
		t.Errorf("second item should stay on the first line, y = %g", y)
	}
	if r := tree.Node(kids[2]).Rect; !approx(r.Y, 20) || !approx(r.X, 0) {
		t.Errorf("third item should start the second line, got (%g,%g)", r.X, r.Y)
	}
	if h := tree.Node(root).Rect.Height; !approx(h, 40) {
		t.Errorf("container height should cover both lines, got %g", h)
	}
}

func TestWrap_RowGapSeparatesLines(t *testing.T) {
	tree, root, kids := buildContainer(
		"display: flex; flex-wrap: wrap; row-gap: 8px",
		"flex: 0 0 100px; height: 20px",
		"flex: 0 0 100px; height: 20px")
	layoutOrFail(t, tree, root, 150, Indefinite)

	if y := tree.Node(kids[1]).Rect.Y; !approx(y, 28) {
		t.Errorf("second line y = %g, want 28", y)
	}
}

func TestWrap_ReverseStacksLinesBackward(t *testing.T) {
	tree, root, kids := buildContainer(
		"display: flex; flex-wrap: wrap-reverse",
		"flex: 0 0 100px; height: 20px",
		"flex: 0 0 100px; height: 20px")
	layoutOrFail(t, tree, root, 150, Indefinite)

	// The later item's line comes first in the cross direction.
	if y := tree.Node(kids[1]).Rect.Y; !approx(y, 0) {
		t.Errorf("second item y = %g, want 0", y)
	}
	if y := tree.Node(kids[0]).Rect.Y; !approx(y, 20) {
		t.Errorf("first item y = %g, want 20", y)
	}
}

func TestWrap_IndefiniteMainNeverWraps(t *testing.T) {
	tree, root, kids := buildContainer("display: flex; flex-wrap: wrap",
		"flex: 0 0 100px; height: 10px",
		"flex: 0 0 100px; height: 10px",
		"flex: 0 0 100px; height: 10px")
	layoutOrFail(t, tree, root, Indefinite, 50)

	for i, id := range kids {
		if y := tree.Node(id).Rect.Y; !approx(y, 0) {
			t.Errorf("item %d wrapped under indefinite main size, y = %g", i, y)
		}
	}
}

func TestAlignContent_CenterPacksLines(t *testing.T) {
	tree, root, kids := buildContainer(
		"display: flex; flex-wrap: wrap; align-content: center",
		"flex: 0 0 100px; height: 20px",
		"flex: 0 0 100px; height: 20px")
	layoutOrFail(t, tree, root, 150, 100)

	// Two 20px lines in a 100px container leave 60, centered as 30.
	if y := tree.Node(kids[0]).Rect.Y; !approx(y, 30) {
		t.Errorf("first line y = %g, want 30", y)
	}
	if y := tree.Node(kids[1]).Rect.Y; !approx(y, 50) {
		t.Errorf("second line y = %g, want 50", y)
	}
}

func TestAutoMargins_CenterSingleItem(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"width: 100px; margin-left: auto; margin-right: auto")
	layoutOrFail(t, tree, root, 400, 50)

	if x := tree.Node(kids[0]).Rect.X; !approx(x, 150) {
		t.Errorf("auto margins should center the item, x = %g", x)
	}
}

func TestAutoMargins_WinOverJustify(t *testing.T) {
	tree, root, kids := buildContainer(
		"display: flex; justify-content: center",
		"width: 100px; margin-left: auto")
	layoutOrFail(t, tree, root, 400, 50)

	// The auto margin absorbs all leftover before justification runs.
	if x := tree.Node(kids[0]).Rect.X; !approx(x, 300) {
		t.Errorf("margin-left auto should push the item to the end, x = %g", x)
	}
}

func TestMargins_OffsetAndPack(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"width: 100px; margin: 10px",
		"width: 100px")
	layoutOrFail(t, tree, root, 400, 80)

	if r := tree.Node(kids[0]).Rect; !approx(r.X, 10) || !approx(r.Y, 10) {
		t.Errorf("margined item at (%g,%g), want (10,10)", r.X, r.Y)
	}
	if x := tree.Node(kids[1]).Rect.X; !approx(x, 120) {
		t.Errorf("second item must clear the first item's margins, x = %g", x)
	}
}

func TestPaddingBorder_AddToBorderBox(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"flex: 0 0 100px; padding: 5px; border-width: 2px; height: 30px")
	layoutOrFail(t, tree, root, 400, Indefinite)

	r := tree.Node(kids[0]).Rect
	if !approx(r.Width, 114) {
		t.Errorf("border-box width = %g, want 114", r.Width)
	}
	if !approx(r.Height, 44) {
		t.Errorf("border-box height = %g, want 44", r.Height)
	}
}

func TestNested_ChildCoordinatesAreLocal(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("container", css.ParseInlineStyle("display: flex"))
	inner := tree.NewNode("container", css.ParseInlineStyle("display: flex; flex: 1 1 0"))
	tree.AddChild(root, inner)
	a := tree.NewNode("item", css.ParseInlineStyle("flex: 1 1 0"))
	b := tree.NewNode("item", css.ParseInlineStyle("flex: 1 1 0"))
	tree.AddChild(inner, a)
	tree.AddChild(inner, b)
	layoutOrFail(t, tree, root, 400, 100)

	if w := tree.Node(inner).Rect.Width; !approx(w, 400) {
		t.Errorf("inner container width = %g, want 400", w)
	}
	// Grandchildren are positioned in the inner container's space.
	if x := tree.Node(a).Rect.X; !approx(x, 0) {
		t.Errorf("first grandchild x = %g, want 0", x)
	}
	if x := tree.Node(b).Rect.X; !approx(x, 200) {
		t.Errorf("second grandchild x = %g, want 200", x)
	}
	for _, id := range []NodeID{inner, a, b} {
		if !tree.Node(id).Laid {
			t.Errorf("node %d not marked as laid out", id)
		}
	}
}
