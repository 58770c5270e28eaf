// Package claims provides a catalog of statements about small finite domains
// (unary and binary numbers, graphs), along with their known truth value, and
// a runner evaluating them concurrently.
//
// Claims double as regression tests of the encodings: a claim that does not
// evaluate to its expected value reveals a bug in the encoding it relies on.
//
// The selection of claims to run can be read from a YAML file:
//
//	jobs: 2
//	claims:
//	  - name: unary-doubles
//	    width: 3
//	  - name: digraph-unique-equal
package claims
