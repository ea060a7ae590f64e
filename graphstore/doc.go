// See types.go for Node/Edge and Store's field layout, store.go for the
// dedup-on-insert catalog operations, and key.go for the canonical key
// functions and ID generation.
package graphstore
