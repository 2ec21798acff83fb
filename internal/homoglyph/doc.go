// Package homoglyph builds the immutable substitution table from a list of
// equivalence classes. Each class is a string of characters that look alike;
// every character maps to the other members of its class. Classes must be
// pairwise disjoint.
package homoglyph
