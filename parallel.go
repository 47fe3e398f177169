package salin

import "sync"

// parallelLookupThreshold is the node count below which cache lookups stay
// sequential; goroutine overhead swamps any gain for tiny documents.
const parallelLookupThreshold = 5

// ParallelCacheLookup resolves cached node translations, concurrently for
// larger documents. It returns hash-to-translation for the hits and the
// deduplicated nodes that still need the provider, in original order.
func ParallelCacheLookup(cache TranslationCache, nodes []TextNode, target string) (map[string]string, []TextNode) {
	if cache == nil || len(nodes) == 0 {
		return make(map[string]string), dedupeNodes(nodes)
	}

	unique := dedupeNodes(nodes)
	if len(unique) < parallelLookupThreshold {
		translations := make(map[string]string)
		var misses []TextNode
		for _, node := range unique {
			if val, ok := cache.Get(CacheKey(node.Hash, target)); ok {
				translations[node.Hash] = val
			} else {
				misses = append(misses, node)
			}
		}
		return translations, misses
	}

	type lookupResult struct {
		hash  string
		value string
		found bool
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup
	for _, node := range unique {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			if val, ok := cache.Get(CacheKey(h, target)); ok {
				results <- lookupResult{hash: h, value: val, found: true}
			} else {
				results <- lookupResult{hash: h}
			}
		}(node.Hash)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	translations := make(map[string]string)
	missedHashes := make(map[string]bool)
	for result := range results {
		if result.found {
			translations[result.hash] = result.value
		} else {
			missedHashes[result.hash] = true
		}
	}

	var misses []TextNode
	for _, node := range unique {
		if missedHashes[node.Hash] {
			misses = append(misses, node)
		}
	}

	return translations, misses
}

// dedupeNodes drops nodes whose hash was already seen, preserving order.
func dedupeNodes(nodes []TextNode) []TextNode {
	seen := make(map[string]bool, len(nodes))
	out := make([]TextNode, 0, len(nodes))
	for _, node := range nodes {
		if !seen[node.Hash] {
			seen[node.Hash] = true
			out = append(out, node)
		}
	}
	return out
}
