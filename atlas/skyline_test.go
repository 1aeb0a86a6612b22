package atlas

import "image"
import "testing"
import "math/rand"

func checkNodes(t *testing.T, skyline *Skyline) {
	t.Helper()
	x := 0
	for i, node := range skyline.nodes {
		if node.X != x {
			t.Fatalf("node #%d starts at %d, expected %d (nodes: %v)", i, node.X, x, skyline.nodes)
		}
		if node.Width <= 0 {
			t.Fatalf("node #%d has width %d (nodes: %v)", i, node.Width, skyline.nodes)
		}
		if node.Y < 0 || node.Y > skyline.height {
			t.Fatalf("node #%d has y %d out of bounds", i, node.Y)
		}
		if i > 0 && skyline.nodes[i - 1].Y == node.Y {
			t.Fatalf("nodes #%d and #%d not merged (nodes: %v)", i - 1, i, skyline.nodes)
		}
		x += node.Width
	}
	if x != skyline.width {
		t.Fatalf("nodes cover [0, %d), expected [0, %d)", x, skyline.width)
	}
}

func TestSkylineBestFit(t *testing.T) {
	skyline := NewSkyline(30, 100)
	steps := []struct{ w, h, x, y int }{
		{10, 10,  0, 0},
		{10,  5, 10, 0},
		{10, 10, 20, 0},
	}
	for i, step := range steps {
		x, y, ok := skyline.Insert(step.w, step.h)
		if !ok || x != step.x || y != step.y {
			t.Fatalf("step #%d: expected (%d, %d), got (%d, %d, %t)", i, step.x, step.y, x, y, ok)
		}
		checkNodes(t, skyline)
	}

	want := []Node{ {0, 10, 10}, {10, 5, 10}, {20, 10, 10} }
	got := skyline.Nodes()
	if len(got) != len(want) {
		t.Fatalf("expected nodes %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] { t.Fatalf("expected nodes %v, got %v", want, got) }
	}
}

func TestSkylineZeroWidthCollapse(t *testing.T) {
	// the middle node is exactly covered by the new level, so its
	// width shrinks to zero and it must be removed before the merge
	// pass joins the three equal height nodes
	skyline := NewSkyline(30, 100)
	skyline.Insert(10, 10)
	skyline.Insert(10, 5)
	skyline.Insert(10, 10)

	x, y, ok := skyline.Insert(10, 5)
	if !ok || x != 10 || y != 5 {
		t.Fatalf("expected (10, 5), got (%d, %d, %t)", x, y, ok)
	}
	checkNodes(t, skyline)
	nodes := skyline.Nodes()
	if len(nodes) != 1 || nodes[0] != (Node{0, 10, 30}) {
		t.Fatalf("expected a single {0 10 30} node, got %v", nodes)
	}

	// a level wider than the node it starts on removes it, and also the
	// next one, which ends exactly at the level's right edge
	skyline = NewSkyline(30, 100)
	skyline.Insert(10, 10) // [{0 10 10} {10 0 20}]
	skyline.Insert(5, 20)  // [{0 10 10} {10 20 5} {15 0 15}]
	x, y, ok = skyline.Insert(20, 1)
	if !ok || x != 10 || y != 20 {
		// both x=0 and x=10 rest at y=20, the narrower node wins
		t.Fatalf("expected (10, 20), got (%d, %d, %t)", x, y, ok)
	}
	checkNodes(t, skyline)
	nodes = skyline.Nodes()
	want := []Node{ {0, 10, 10}, {10, 21, 20} }
	if len(nodes) != 2 || nodes[0] != want[0] || nodes[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, nodes)
	}
}

func TestSkylineFull(t *testing.T) {
	skyline := NewSkyline(16, 16)
	if _, _, ok := skyline.Insert(17, 1); ok {
		t.Fatalf("rect wider than the surface was placed")
	}
	if _, _, ok := skyline.Insert(1, 17); ok {
		t.Fatalf("rect taller than the surface was placed")
	}
	if _, _, ok := skyline.Insert(16, 16); !ok {
		t.Fatalf("rect of the surface size not placed")
	}
	before := skyline.Nodes()
	if _, _, ok := skyline.Insert(1, 1); ok {
		t.Fatalf("rect placed on a full surface")
	}
	after := skyline.Nodes()
	if len(before) != len(after) || before[0] != after[0] {
		t.Fatalf("failed insert modified the skyline: %v -> %v", before, after)
	}
	if skyline.Utilization() != 1.0 {
		t.Fatalf("expected full utilization, got %f", skyline.Utilization())
	}
}

func TestSkylineZeroArea(t *testing.T) {
	skyline := NewSkyline(16, 16)
	skyline.Insert(4, 4)
	before := skyline.Nodes()
	if _, _, ok := skyline.Insert(0, 5); !ok {
		t.Fatalf("zero width rect not placed")
	}
	if _, _, ok := skyline.Insert(5, 0); !ok {
		t.Fatalf("zero height rect not placed")
	}
	after := skyline.Nodes()
	if len(before) != len(after) {
		t.Fatalf("zero area rects modified the skyline: %v -> %v", before, after)
	}
	checkNodes(t, skyline)
}

func TestSkylineNoOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5EED))
	for round := 0; round < 8; round++ {
		skyline := NewSkyline(256, 192)
		bounds := image.Rect(0, 0, 256, 192)
		var placed []image.Rectangle
		failures := 0
		for failures < 16 {
			w, h := 1 + rng.Intn(40), 1 + rng.Intn(40)
			x, y, ok := skyline.Insert(w, h)
			if !ok {
				failures += 1
				continue
			}
			rect := image.Rect(x, y, x + w, y + h)
			if !rect.In(bounds) {
				t.Fatalf("round %d: rect %v out of bounds", round, rect)
			}
			for _, other := range placed {
				if rect.Overlaps(other) {
					t.Fatalf("round %d: rect %v overlaps %v", round, rect, other)
				}
			}
			placed = append(placed, rect)
			checkNodes(t, skyline)
		}
		if len(placed) < 20 {
			t.Fatalf("round %d: suspiciously few placements (%d)", round, len(placed))
		}
	}
}

func TestSkylineMarkUsed(t *testing.T) {
	skyline := NewSkyline(64, 64)
	err := skyline.MarkUsed(image.Rect(0, 0, 32, 16))
	if err != nil { t.Fatal(err) }
	checkNodes(t, skyline)

	x, y, ok := skyline.Insert(32, 32)
	if !ok || x != 32 || y != 0 {
		t.Fatalf("expected (32, 0), got (%d, %d, %t)", x, y, ok)
	}
	x, y, ok = skyline.Insert(8, 8)
	if !ok || x != 0 || y != 16 {
		t.Fatalf("expected (0, 16), got (%d, %d, %t)", x, y, ok)
	}

	// reserved regions not starting at a node boundary split it
	skyline.Reset(64, 64)
	err = skyline.MarkUsed(image.Rect(10, 0, 20, 5))
	if err != nil { t.Fatal(err) }
	checkNodes(t, skyline)
	nodes := skyline.Nodes()
	if len(nodes) != 3 || nodes[1] != (Node{10, 5, 10}) {
		t.Fatalf("unexpected nodes %v", nodes)
	}

	err = skyline.MarkUsed(image.Rect(60, 0, 70, 5))
	if err == nil { t.Fatalf("out of bounds region accepted") }
}

func TestSkylineFillToBottom(t *testing.T) {
	skyline := NewSkyline(64, 64)
	x, y, ok := skyline.Insert(64, 64)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("expected (0, 0, true) for a surface sized rect, got (%d, %d, %t)", x, y, ok)
	}

	skyline.Reset(64, 64)
	if _, _, ok := skyline.Insert(64, 10); !ok { t.Fatalf("64x10 not placed") }
	x, y, ok = skyline.Insert(63, 54)
	if !ok || x != 0 || y != 10 {
		t.Fatalf("expected (0, 10, true) for 63x54, got (%d, %d, %t)", x, y, ok)
	}
	checkNodes(t, skyline)

	skyline.Reset(64, 64)
	skyline.Insert(64, 10)
	x, y, ok = skyline.Insert(64, 54)
	if !ok || x != 0 || y != 10 {
		t.Fatalf("expected (0, 10, true) for 64x54, got (%d, %d, %t)", x, y, ok)
	}
	if skyline.Utilization() != 1.0 {
		t.Fatalf("expected full utilization, got %f", skyline.Utilization())
	}
}
