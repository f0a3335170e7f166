// Package x holds the authentication helpers shared by the extensions in
// its sub-packages. Each extension registers its own handlers, queries and
// genesis initializer.
package x
