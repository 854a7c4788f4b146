// Package identity holds the package info record and derives the package id
// from it.
//
// The id is the SHA-1 of the record's canonical text form. Two builds share a
// binary package exactly when their records render identically, so a recipe
// that clears the record declares that one package serves every
// configuration:
//
//	info := identity.NewInfo(s, opts.Map())
//	info.Clear()
//	id := info.ID() // same for every s and opts
package identity
