package table

/*

# Flat Morse lookup tables

This package flattens a code trie (see `go-morsetable/trie`) into a byte table
a small decoder can walk with one index step per element. No pointers, no
allocation and no string compares are needed at decode time.

Three schemes are provided. They are independent: each takes the finished trie
and produces its own Table.

## Scheme A: index-doubling

Node identity is derived from the character itself: id = sym - base, with the
root at id 0 (base is '/', the character just below '0'). Each node owns two
cells:

	t[2*id+0] = 2 * dotChildId
	t[2*id+1] = 2 * dashChildId

Stored values are pre-doubled so the decoder can use them directly as the next
row offset. A zero value means "no such branch".

Internal nodes that no code ends at have no character, so they are given a
placeholder id from the unused gap between '9' and 'A' (':'..'@'). Allocation is
depth-first, dot before dash. There are only 7 such slots in the default
layout; running out is ErrPlaceholdersExhausted.

After filling, ReachFlag (0x80) is set on the root row and on every row of the
placeholder block. A row whose dot cell carries the flag is not a terminal.

	+--------+--------------+------------------+----------------+
	| root   | '0'..'9'     | ':'..'@'         | 'A'..'Z'       |
	| id 0   | id 1..10     | id 11..17 (flag) | id 18..43      |
	+--------+--------------+------------------+----------------+

## Scheme B: bit-packed heap

Nodes are addressed as an implicit complete binary tree (heap addressing):

	dot  = 2*p + 1
	dash = 2*p + 2

Each byte packs the child mask and the character:

	bit 0     dot child exists
	bit 1     dash child exists
	bits 2..7 sym - '/' (0 when not a terminal)

## Scheme C: sparse direct

Same addressing as B. Each byte is the character itself; everything else is
Sentinel (0x01). This is the only scheme able to carry punctuation.

For B and C the table is exactly as long as the highest touched index + 1, and
is never longer than HeapCapacity(depth).

*/
