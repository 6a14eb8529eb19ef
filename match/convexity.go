// File: convexity.go
// Role: the convexity well-formedness check, implemented as a
// pair of frontier-expansion reachability sweeps over the target graph.
// Grounded on bfs/bfs.go's queue-of-frontier idiom, generalized from
// vertex-to-vertex reachability to edge-to-edge reachability along the
// hypergraph's edge-precedes-edge relation.
//
// A set of image edges S is convex iff no edge outside S lies on a
// directed path between two edges of S. Equivalently (since the target
// is acyclic): there is no edge x not in S that is both forward-reachable
// from some edge of S and can itself forward-reach some edge of S. This
// file computes exactly those two reachability sets and intersects them.

package match

import "github.com/chyp-core/chyp/hypergraph"

// isConvex reports whether the image edge set (the values of edgeMap)
// forms a convex subgraph of target.
func isConvex(target *hypergraph.Graph, image map[hypergraph.EHandle]struct{}) bool {
	seeds := make([]hypergraph.EHandle, 0, len(image))
	for e := range image {
		seeds = append(seeds, e)
	}

	reachableFromImage := sweep(seeds, func(e hypergraph.EHandle) []hypergraph.EHandle { return target.OutEdges(e) })
	canReachImage := sweep(seeds, func(e hypergraph.EHandle) []hypergraph.EHandle { return target.InEdges(e) })

	for e := range reachableFromImage {
		if _, inImage := image[e]; inImage {
			continue
		}
		if _, alsoBackward := canReachImage[e]; alsoBackward {
			return false // e sits strictly between two image edges
		}
	}

	return true
}

// sweep performs a breadth-first expansion from seeds following next,
// and returns every edge reached other than the seeds: seeds are marked
// seen before the sweep starts, so they are never included, even when
// reachable from another seed.
func sweep(seeds []hypergraph.EHandle, next func(hypergraph.EHandle) []hypergraph.EHandle) map[hypergraph.EHandle]struct{} {
	visited := make(map[hypergraph.EHandle]struct{}, len(seeds))
	queue := append([]hypergraph.EHandle(nil), seeds...)
	seen := make(map[hypergraph.EHandle]struct{}, len(seeds))
	for _, s := range seeds {
		seen[s] = struct{}{}
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		for _, n := range next(e) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	return visited
}
