// See enumerate.go for the depth-first enumeration algorithm and its
// legality rules.
package placement
