// Package search runs uniform-cost shortest-path searches over unit-weight
// directed grid graphs.
//
// Overview:
//
//   - Every node is Unvisited, on the Frontier (tentative distance), or Settled
//     (final distance). The source starts on the Frontier at distance 0.
//   - The frontier is a min-heap ordered by tentative distance with lazy
//     decrease-key: improved nodes are pushed again and stale entries are skipped
//     when popped. Relaxation uses a strict "<", so equal candidates are no-ops.
//   - Target stops as soon as the target is settled. All drains the frontier and
//     returns the distance of every reached node.
//
// Strategies:
//
//   - Heap (default): the priority frontier described above.
//   - Queue: plain FIFO breadth-first search. With unit weights it settles nodes in
//     the same distance order and yields identical distances.
//
// Options:
//
//   - WithContext(ctx):    cancel long searches; checked once per frontier pop.
//   - WithMaxDistance(n):  do not settle nodes farther than n steps.
//   - WithOnSettle(fn):    observe each node as its distance becomes final.
//   - WithStrategy(s):     Heap or Queue.
//
// Errors:
//
//   - ErrNilGraph:        graph is nil.
//   - ErrSourceNotFound:  the source is not a node of the graph.
//   - ErrOptionViolation: an option was given an invalid value.
//
// "No path" is not an error: Target reports it through its boolean result and All
// simply omits unreached nodes.
//
// Complexity:
//
//   - Heap:  O((V + E) log V) time, O(V + E) memory.
//   - Queue: O(V + E) time, O(V) memory.
package search
