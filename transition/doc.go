// See state.go for the State type and its Append transition rule.
package transition
