package morse

/*

# Morse code primitives

This package holds the input side of table generation: the two code elements,
parsed codes, (code, symbol) entries and the built-in code sets.

A Code is a short sequence of elements. Element values are chosen so that they
can be used directly as a child selector:

	dot  child = 2*p + 1 + Dot   (Dot  == 0)
	dash child = 2*p + 1 + Dash  (Dash == 1)

The same value selects the even (dot) or odd (dash) cell of an index-doubling
table row.

Codes are validated when parsed. Symbols are validated here only for the
properties every table scheme shares (single printable ASCII byte); each scheme
applies its own range checks when flattening.

*/
