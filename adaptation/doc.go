// Package adaptation resolves adapter chains between capabilities.
//
// Given a value and a target capability it does not satisfy, the Manager
// searches the registered adaptation offers for a chain of factories that
// turns the value into something satisfying the target.
//
// Resolution pipeline:
//  1. If the value already satisfies the target, return it unchanged.
//  2. Best-first search over capabilities. Candidate chains are ordered by
//     (number of offers, summed specificity distance, insertion order).
//  3. Outgoing edges of a capability are ordered by specificity distance,
//     then by how specific the offer's source capability is, then by
//     registration order.
//  4. A chain reaching the target is materialized by calling its factories
//     in order. A factory may decline, in which case the search continues
//     with the next candidate.
//
// No offer is used twice within one chain, so cycles among offers cannot
// loop forever.
package adaptation
