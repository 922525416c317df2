package trie

/*

# Binary code trie

Builder inserts (code, symbol) entries into a pointer based binary trie. Each
edge is one code element; the dot child is on the left.

The builder is the only place that allocates nodes. The table schemes in
`go-morsetable/table` walk the finished trie read-only, which lets one trie be
flattened into several encodings.

## Collisions

Morse is not prefix free in the bit-string sense: "." (E) is a prefix of ".-"
(A). The only real conflict is two symbols ending on the same node. By default
that is rejected with ErrDuplicateSymbolAssignment. WithOverwrite restores the
historical "last entry wins" behaviour.

In strict mode a symbol used for two different codes is also rejected with
ErrSymbolReused. Under WithOverwrite it is accepted; the heap schemes address
nodes by position and are unaffected, while the index-doubling flattener
reports the aliased identity itself.

*/
