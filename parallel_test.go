package salin

import (
	"fmt"
	"testing"
)

func makeNodes(texts ...string) []TextNode {
	nodes := make([]TextNode, len(texts))
	for i, text := range texts {
		hash := HashText(text)
		nodes[i] = TextNode{ID: hash[:8], Text: text, Hash: hash}
	}
	return nodes
}

func TestParallelCacheLookup_NilCache(t *testing.T) {
	nodes := makeNodes("a", "b")
	hits, misses := ParallelCacheLookup(nil, nodes, "tl")
	if len(hits) != 0 {
		t.Errorf("Expected no hits without a cache, got %d", len(hits))
	}
	if len(misses) != 2 {
		t.Errorf("Expected 2 misses, got %d", len(misses))
	}
}

func TestParallelCacheLookup_Small(t *testing.T) {
	c := newMockCache()
	nodes := makeNodes("hit", "miss")
	c.Set(CacheKey(nodes[0].Hash, "tl"), "tama")

	hits, misses := ParallelCacheLookup(c, nodes, "tl")
	if hits[nodes[0].Hash] != "tama" {
		t.Errorf("Expected cached value, got %v", hits)
	}
	if len(misses) != 1 || misses[0].Text != "miss" {
		t.Errorf("Expected one miss for 'miss', got %v", misses)
	}
}

func TestParallelCacheLookup_Large(t *testing.T) {
	c := newMockCache()
	var texts []string
	for i := 0; i < 20; i++ {
		texts = append(texts, fmt.Sprintf("text %d", i))
	}
	nodes := makeNodes(texts...)

	// Cache even-numbered entries
	for i := 0; i < 20; i += 2 {
		c.Set(CacheKey(nodes[i].Hash, "tl"), "cached "+nodes[i].Text)
	}

	hits, misses := ParallelCacheLookup(c, nodes, "tl")
	if len(hits) != 10 {
		t.Errorf("Expected 10 hits, got %d", len(hits))
	}
	if len(misses) != 10 {
		t.Fatalf("Expected 10 misses, got %d", len(misses))
	}

	// Misses keep original order
	for i := 0; i < 10; i++ {
		want := fmt.Sprintf("text %d", i*2+1)
		if misses[i].Text != want {
			t.Errorf("Miss %d: expected %q, got %q", i, want, misses[i].Text)
		}
	}
}

func TestParallelCacheLookup_Dedupes(t *testing.T) {
	c := newMockCache()
	nodes := makeNodes("same", "same", "same", "other")

	_, misses := ParallelCacheLookup(c, nodes, "tl")
	if len(misses) != 2 {
		t.Errorf("Expected duplicates collapsed to 2 misses, got %d", len(misses))
	}
}
