// SPDX-License-Identifier: MIT

// Package fixture reads and writes the plain-text reference operators used
// to validate dimer builders, and derives their canonical file names.
//
// File format: one stored entry per line,
//
//	<row> <col> <value>          real entry
//	<row> <col> <re> <im>        complex entry
//
// separated by blanks or tabs. Empty lines and lines starting with '#'
// are ignored. The matrix dimension is not stored; callers pass it in.
//
// File name:
//
//	<artifact>_np(<N>)_diss(<type>_<γ>)_prm(<E>_<U>_<J>)_drv(<type>_<A>_<ω>_<φ>).txt
//
// with every real printed as %.4f.
package fixture
