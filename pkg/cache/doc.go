// Package cache provides a generic, thread-safe LRU (Least Recently Used) cache.
//
// formkit uses it to memoize the static shape of resolved rules (rule name,
// parameter template and bound validator) so that a rule chain does not hit
// the validator registry on every validation call. Parameter values are never
// stored here because cross-field references change between calls.
//
// # Usage
//
//	c := cache.NewLRUCache[string, Descriptor](128)
//
//	d, ok := c.Get("required")
//	if !ok {
//		d = buildDescriptor("required")
//		c.Put("required", d)
//	}
//
// When the cache reaches its capacity the least recently used entry is
// evicted. Get and Put both mark an entry as recently used.
package cache
