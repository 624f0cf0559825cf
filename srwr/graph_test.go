package srwr

import (
	"reflect"
	"testing"
	"time"
)

func TestLinkUndirected(t *testing.T) {
	graph := NewWeightedGraph()

	graph.Link("a", "b", 1.0)
	graph.Link("b", "c", -2.0)

	if graph.Size() != 3 {
		t.Error("Expected", 3, "but got", graph.Size())
	}

	a, _ := graph.Index("a")
	b, _ := graph.Index("b")
	c, _ := graph.Index("c")

	expected := []Edge{{Target: a, Weight: 1}, {Target: c, Weight: -2}}
	actual, ok := graph.Outlinks(b)
	if !ok || reflect.DeepEqual(actual, expected) != true {
		t.Error("Expected", expected, "but got", actual)
	}

	actual, _ = graph.Outlinks(c)
	if reflect.DeepEqual(actual, []Edge{{Target: b, Weight: -2}}) != true {
		t.Error("Expected link back to b but got", actual)
	}
}

func TestCancelOpposites(t *testing.T) {
	graph := NewWeightedGraph()

	graph.Link("a", "b", 1.0)
	graph.Link("a", "b", -1.0)
	graph.Link("a", "c", 2.0)
	graph.Link("a", "c", -1.0)
	graph.Link("a", "d", 1.0)
	graph.Link("a", "d", -2.0)

	b, _ := graph.Index("b")
	c, _ := graph.Index("c")
	d, _ := graph.Index("d")

	// b cancelled out entirely and is now dangling
	if _, ok := graph.Outlinks(b); ok {
		t.Errorf("b should be dangling")
	}

	expected := []Edge{{Target: c, Weight: 1}, {Target: d, Weight: -1}}
	actual, _ := graph.Outlinks(0)
	if reflect.DeepEqual(actual, expected) != true {
		t.Error("Expected", expected, "but got", actual)
	}

	// removed slots must not shift later links
	graph.Link("a", "d", 1.0)
	graph.Link("a", "c", 3.0)
	expected = []Edge{{Target: c, Weight: 4}}
	actual, _ = graph.Outlinks(0)
	if reflect.DeepEqual(actual, expected) != true {
		t.Error("Expected", expected, "but got", actual)
	}
}

func TestLinkIndexAndNames(t *testing.T) {
	graph := NewWeightedGraph()
	graph.AddNode("seed")
	graph.LinkIndex(0, 3, 1.0)

	if graph.Size() != 4 {
		t.Error("Expected", 4, "but got", graph.Size())
	}
	if graph.ID(0) != "seed" || graph.ID(3) != "3" {
		t.Error("unexpected names", graph.ID(0), graph.ID(3))
	}
	if _, ok := graph.Outlinks(1); ok {
		t.Errorf("node 1 should be dangling")
	}
	if _, ok := graph.Outlinks(7); ok {
		t.Errorf("out of range node should be dangling")
	}
}

func TestLinkIndexNameTaken(t *testing.T) {
	graph := NewWeightedGraph()
	graph.AddNode("3")
	graph.AddNode("4_")

	done := make(chan struct{})
	go func() {
		graph.LinkIndex(0, 5, 1.0)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("LinkIndex(0, 5) did not return")
	}

	if graph.Size() != 6 {
		t.Fatal("Expected", 6, "but got", graph.Size())
	}
	expected := []string{"3", "4_", "2", "3_", "4", "5"}
	for i, id := range expected {
		if graph.ID(i) != id {
			t.Error("Expected", id, "but got", graph.ID(i))
		}
		if j, ok := graph.Index(id); !ok || j != i {
			t.Error("Expected", id, "at", i, "but got", j)
		}
	}
	if actual, _ := graph.Outlinks(5); reflect.DeepEqual(actual, []Edge{{Target: 0, Weight: 1}}) != true {
		t.Error("Expected link back to node 0 but got", actual)
	}
}

func TestSelfLink(t *testing.T) {
	graph := NewWeightedGraph()
	graph.Link("a", "a", 2.0)

	actual, _ := graph.Outlinks(0)
	if reflect.DeepEqual(actual, []Edge{{Target: 0, Weight: 2}}) != true {
		t.Error("Expected single self link but got", actual)
	}
}

func TestEdges(t *testing.T) {
	graph := NewWeightedGraph()
	graph.Link("a", "b", 1.0)
	graph.Link("b", "c", -1.0)
	graph.Link("c", "c", 1.0)

	type link struct {
		a, b int
		w    float64
	}
	var actual []link
	graph.Edges(func(a, b int, w float64) {
		actual = append(actual, link{a, b, w})
	})

	expected := []link{{0, 1, 1}, {1, 2, -1}, {2, 2, 1}}
	if reflect.DeepEqual(actual, expected) != true {
		t.Error("Expected", expected, "but got", actual)
	}
}
