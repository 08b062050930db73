/*
Package dhash provides a string-keyed, string-valued hash table using open
addressing with double hashing.

Table stores every entry directly in a fixed array of slots. Collisions are
resolved by probing a sequence of alternate slots derived from two independent
hashes of the key. Deleted entries leave tombstones behind so that keys whose
probe sequence passes through a deleted slot remain reachable.

Basic usage:

	import "github.com/theflywheel/dhash"

	t, err := dhash.New() // 53 slots, reference hash pair
	if err != nil {
		log.Fatal(err)
	}
	defer t.Destroy()

	if err := t.Insert("cat", "1"); err != nil {
		log.Fatal(err) // errors.Is(err, dhash.ErrTableFull)
	}

	if v, ok := t.Search("cat"); ok {
		fmt.Println("cat =", v)
	}

	t.Delete("cat")

Features:

  - Fixed capacity by default; optional growth with WithMaxLoadFactor
  - Polynomial base hash with primes 227 and 229, or xxhash with WithHasher
  - Bounded probing: no operation ever probes more than capacity slots
  - Configuration from TOML files via LoadConfig
  - Structured logging through zap with WithLogger

Implementation Details:

For attempt i the probed slot is

	(hash_a + i*(hash_b+1)) mod capacity

where hash_a and hash_b are BaseHash with the two primes. A slot is empty,
deleted or occupied. Search stops at the first empty slot and skips deleted
ones. Insert updates the key in place if it is found along the sequence;
otherwise it uses the first deleted slot seen, or the empty slot that ended the
chain. When neither exists after capacity attempts Insert returns an error
wrapping ErrTableFull and leaves the table unchanged.

The empty string is not a valid key: Insert rejects it with ErrEmptyKey, Search
never finds it and Delete ignores it.

A Table is not safe for concurrent use.
*/
package dhash
