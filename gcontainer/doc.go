// Package gcontainer contains small generic sequential containers:
// a doubly linked [List], and the [Queue] and [Stack] adapters built on it.
//
// The containers exist to schedule tree traversals and to hold ordered child lists.
// The zero value of every container is an empty container ready to use.
// None of the types in this package are safe for concurrent use.
package gcontainer
