// Package frontier provides the two container shapes used by the step-driven
// searches: a LIFO Stack and a FIFO Queue, both generic over the element type.
//
// Both containers are finite and restartable: Reset drops every element and
// keeps the backing storage for reuse. Pop and Dequeue on an empty container
// return the zero value and false instead of panicking.
//
// Stale entries are the caller's business. DFS pushes a node again when it is
// rediscovered and filters duplicates against its visited set at pop time;
// the containers never deduplicate.
//
// Complexity:
//
//   - Push, Pop, Peek, Len: O(1) amortized.
//   - Enqueue, Dequeue, Len: O(1) amortized.
//   - Reset: O(1).
package frontier
