package graph_test

import (
	"testing"

	"github.com/sybilscope/sybilscope/graph"
	"github.com/sybilscope/sybilscope/model"
)

// TestComponents_PureIsolation covers 5 actors mutually following each
// other, no other data. Expect one cluster of size 5, density 1.0,
// conductance 0, externalEdges 0.
func TestComponents_PureIsolation(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MinClusterSize = 2
	actors := []string{"a1", "a2", "a3", "a4", "a5"}
	var logs []model.Event
	for _, from := range actors {
		for _, to := range actors {
			if from != to {
				logs = append(logs, ev(from, "follow", to))
			}
		}
	}
	g := graph.Build(logs, settings)
	clusters := g.Components(settings.MinClusterSize)

	if len(clusters) != 1 {
		t.Fatalf("len(clusters) = %d; want 1", len(clusters))
	}
	c := clusters[0]
	if len(c.Members) != 5 {
		t.Errorf("members = %d; want 5", len(c.Members))
	}
	if c.Density != 1.0 {
		t.Errorf("density = %v; want 1.0", c.Density)
	}
	if c.Conductance != 0.0 {
		t.Errorf("conductance = %v; want 0.0", c.Conductance)
	}
	if c.ExternalEdges != 0 {
		t.Errorf("externalEdges = %d; want 0", c.ExternalEdges)
	}
}

func TestComponents_DropsBelowMinSize(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MinClusterSize = 3
	logs := []model.Event{ev("a", "follow", "b")} // component of size 2
	g := graph.Build(logs, settings)

	clusters := g.Components(settings.MinClusterSize)
	if len(clusters) != 0 {
		t.Fatalf("len(clusters) = %d; want 0 (below minClusterSize)", len(clusters))
	}
}

func TestComponents_MonotonicIDsInDiscoveryOrder(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MinClusterSize = 2
	logs := []model.Event{
		ev("a", "follow", "b"),
		ev("b", "follow", "a"),
		ev("c", "follow", "d"),
		ev("d", "follow", "c"),
	}
	g := graph.Build(logs, settings)
	clusters := g.Components(settings.MinClusterSize)

	if len(clusters) != 2 {
		t.Fatalf("len(clusters) = %d; want 2", len(clusters))
	}
	if clusters[0].ID != 0 || clusters[1].ID != 1 {
		t.Errorf("cluster IDs = %d,%d; want 0,1", clusters[0].ID, clusters[1].ID)
	}
}
