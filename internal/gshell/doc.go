// Package gshell contains a line-oriented interactive shell
// for experimenting with a [gkary.Tree] of ints.
package gshell
