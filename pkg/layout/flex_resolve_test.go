package layout

import (
	"math"
	"testing"
)

func TestResolve_ShrinkWeightedByBasis(t *testing.T) {
	// Three items with bases 150 + 98.18 + 98.18 in a 280.72 container,
	// shrink factors 0, 1 and 2. The zero-shrink item keeps its basis
	// exactly; the others absorb the 65.64 overflow weighted by
	// shrink * basis.
	tree, root, kids := buildContainer("display: flex",
		"flex: 0 0 150px",
		"flex: 0 1 98.18px",
		"flex: 0 2 98.18px")
	layoutOrFail(t, tree, root, 280.72, 50)

	if w := tree.Node(kids[0]).Rect.Width; w != 150 {
		t.Errorf("zero-shrink item must keep its basis exactly, got %g", w)
	}
	// Equal bases make the scaled factors 98.18 and 196.36, so the second
	// item takes a third of the overflow and the last takes two thirds.
	if w := tree.Node(kids[1]).Rect.Width; !approx(w, 98.18-65.64/3) {
		t.Errorf("shrink-1 item width = %g, want %g", w, 98.18-65.64/3)
	}
	if w := tree.Node(kids[2]).Rect.Width; !approx(w, 98.18-2*65.64/3) {
		t.Errorf("shrink-2 item width = %g, want %g", w, 98.18-2*65.64/3)
	}
}

func TestResolve_ShrinkScaledNotNaive(t *testing.T) {
	// Equal shrink factors but different bases: the reduction is
	// proportional to shrink * basis, so the larger item gives up more.
	// Naive shrink-only weighting would split the 100px overflow 50/50.
	tree, root, kids := buildContainer("display: flex",
		"flex: 0 1 100px",
		"flex: 0 1 300px")
	layoutOrFail(t, tree, root, 300, 50)

	if w := tree.Node(kids[0]).Rect.Width; !approx(w, 75) {
		t.Errorf("small item width = %g, want 75", w)
	}
	if w := tree.Node(kids[1]).Rect.Width; !approx(w, 225) {
		t.Errorf("large item width = %g, want 225", w)
	}
}

func TestResolve_MaxWidthFreezesAndRedistributes(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"flex: 1 1 100px; max-width: 120px",
		"flex: 1 1 100px")
	layoutOrFail(t, tree, root, 600, 50)

	// First item would get 300 but is capped; the freed space flows to
	// the second item in the next round.
	if w := tree.Node(kids[0]).Rect.Width; !approx(w, 120) {
		t.Errorf("capped item width = %g, want 120", w)
	}
	if w := tree.Node(kids[1]).Rect.Width; !approx(w, 480) {
		t.Errorf("uncapped item width = %g, want 480", w)
	}
}

func TestResolve_MinWidthFreezesAndRedistributes(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"flex: 0 1 100px; min-width: 80px",
		"flex: 0 1 100px")
	layoutOrFail(t, tree, root, 100, 50)

	if w := tree.Node(kids[0]).Rect.Width; !approx(w, 80) {
		t.Errorf("floored item width = %g, want 80", w)
	}
	if w := tree.Node(kids[1]).Rect.Width; !approx(w, 20) {
		t.Errorf("remaining overflow should land on the second item, got %g", w)
	}
}

func TestResolve_FrozenItemStaysAtBound(t *testing.T) {
	// Once frozen at a bound an item must not drift in later rounds,
	// even when the remaining items keep adjusting.
	tree, root, kids := buildContainer("display: flex",
		"flex: 1 1 0; max-width: 50px",
		"flex: 1 1 0; max-width: 90px",
		"flex: 1 1 0")
	layoutOrFail(t, tree, root, 600, 50)

	if w := tree.Node(kids[0]).Rect.Width; !approx(w, 50) {
		t.Errorf("item 0 width = %g, want 50", w)
	}
	if w := tree.Node(kids[1]).Rect.Width; !approx(w, 90) {
		t.Errorf("item 1 width = %g, want 90", w)
	}
	if w := tree.Node(kids[2]).Rect.Width; !approx(w, 460) {
		t.Errorf("item 2 width = %g, want 460", w)
	}
}

func TestResolve_NeverNegative(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"flex: 0 1 10px",
		"flex: 0 5 500px")
	layoutOrFail(t, tree, root, 50, 50)

	for i, id := range kids {
		if w := tree.Node(id).Rect.Width; w < 0 {
			t.Errorf("item %d: negative width %g", i, w)
		}
	}
}

func TestResolve_AllInflexibleOverflows(t *testing.T) {
	// No shrink anywhere: items keep their bases and overflow the
	// container rather than being squeezed.
	tree, root, kids := buildContainer("display: flex",
		"flex: 0 0 200px",
		"flex: 0 0 200px")
	layoutOrFail(t, tree, root, 100, 50)

	for i, id := range kids {
		if w := tree.Node(id).Rect.Width; !approx(w, 200) {
			t.Errorf("item %d: width = %g, want 200", i, w)
		}
	}
	if x := tree.Node(kids[1]).Rect.X; !approx(x, 200) {
		t.Errorf("second item x = %g, want 200", x)
	}
}

func TestResolve_TerminatesWithManyBounds(t *testing.T) {
	// Every item carries a bound that fights the distribution; the loop
	// must still settle and conserve space within tolerance.
	cssList := []string{
		"flex: 1 1 0; max-width: 10px",
		"flex: 1 1 0; max-width: 20px",
		"flex: 1 1 0; max-width: 30px",
		"flex: 1 1 0; max-width: 40px",
		"flex: 1 1 0; max-width: 50px",
		"flex: 1 1 0",
	}
	tree, root, kids := buildContainer("display: flex", cssList...)
	layoutOrFail(t, tree, root, 1000, 50)

	total := 0.0
	for _, id := range kids {
		total += tree.Node(id).Rect.Width
	}
	if math.Abs(total-1000) > 1e-6 {
		t.Errorf("widths sum to %g, want 1000", total)
	}
	if w := tree.Node(kids[5]).Rect.Width; !approx(w, 850) {
		t.Errorf("unbounded item should take the rest, got %g", w)
	}
}

func TestResolve_ProportionalGrowth(t *testing.T) {
	tree, root, kids := buildContainer("display: flex",
		"flex: 1 1 0", "flex: 3 1 0")
	layoutOrFail(t, tree, root, 400, 50)

	if w := tree.Node(kids[0]).Rect.Width; !approx(w, 100) {
		t.Errorf("grow-1 item width = %g, want 100", w)
	}
	if w := tree.Node(kids[1]).Rect.Width; !approx(w, 300) {
		t.Errorf("grow-3 item width = %g, want 300", w)
	}
}
