// Package arraylist implements List, a contiguous, index-addressed array of
// fixed-size items that grows through an explicit allocator.
//
// A List is either dynamic (it owns storage acquired from an alloc.Allocator
// and grows geometrically) or static (it wraps caller storage and never grows,
// shrinks, or frees). The zero List is the empty, cleaned-up state and is a
// legal input to CleanUp.
//
// Lists are not safe for concurrent use.
package arraylist
