// See shortestpath.go for Run and the deterministic-tie-break heap it uses.
package shortestpath
