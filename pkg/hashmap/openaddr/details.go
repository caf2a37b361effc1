package openaddr

/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	quadratic probing for resolving any hash collisions, and tombstones for deletion.
	The basic principal is:
	-----------------------
	1) The table size is always prime. For a prime size p the offsets j*j for
	   j in [0, p/2] land on distinct slots, so while the table is less than half
	   full a probe always reaches a slot it can use.
	2) Calculate the hash value and the home index (hash % size) of the key
	3) Visit home, home+1, home+4, home+9, ... (mod size)
	4) An empty slot ends every search. A put claims it.
	5) A deleted entry stays in its slot marked as a tombstone, so probe chains
	   running through it stay intact. Lookups walk past tombstones. A put walks
	   into the first tombstone it meets and takes the slot over, reviving it if
	   the key matches.
	6) Taking over a tombstone with a different key does not look further down the
	   chain, so a live copy of the key sitting past the tombstone is left behind.
	   Entries reports both copies until the older one is removed or a resize
	   folds them together.
	7) Growing doubles the requested size, promotes it to a prime and puts every
	   live entry back through the normal insert path. Tombstones are dropped.
*/
