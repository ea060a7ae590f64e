// See stepgraph.go for New/Append/ComputePath, the library's full contract.
package stepgraph
