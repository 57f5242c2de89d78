package shuffled

/*

# Motivation for shuffling a sorted array

Binary search is great for finding a value in a large sorted array, but cache
performance suffers from jumping between midpoint and midpoint (start at
size/2, then skip to size/4 or 3*size/4 and so on). Every probe lands far from
the previous one, so for large arrays almost every step is a cache miss.

A simple improvement is to reorganize the sorted array so that it begins with
the middle value, followed by all lower values arranged in the same way, and
then all higher values arranged in the same way. After this rearrangement a
binary search only ever advances *forward* through memory:

  - if the probed value is too high, the next probe is the very next element
    (~50% of steps are a one-element advance)
  - if the probed value is too low, the next probe is at the current midpoint
    plus one

So given a segment of n elements starting at position first, the shuffled
layout is, recursively:

	position first:                   the value from sorted midpoint first+n/2
	positions first+1 .. first+n/2:   the shuffled lower half (size n/2)
	remaining positions:              the shuffled upper half (size (n-1)/2)

For the values 0..n-1 the small layouts come out as

	n  sorted      shuffled
	2  01          10
	3  012         102
	4  0123        2103
	5  01234       21043
	6  012345      310254
	7  0123456     3102546
	8  01234567    42103657
	9  012345678   421037658
	10 0123456789  5210438769

# Navigating between index spaces

Search returns the index of the value in the *shuffled* array. That is the
right answer when companion data is shuffled with the same permutation, but a
caller keeping companion data in plain sorted order instead wants the linear
index. DeshuffleIndex converts a shuffled index back to the linear one with a
small O(log n) loop of pure index arithmetic, touching no memory at all; the
segment sizes at every level of the layout are fully determined by the total
count. ShuffleIndex is the inverse mapping, linear to shuffled.

# Keys and values

Reorganizing for cache performance only helps when several elements share a
cache line, so when the array values are keys mapping to values, keep the keys
in one array and the values in another with matching indices. Either apply the
same shuffle to both arrays, or shuffle only the keys and use DeshuffleIndex
on each hit to address the untouched value array.

# Maintenance

Insertion and removal, which are trivial with a sorted array, become more
difficult with the shuffled layout - to the point that unshuffling back to
sorted order, splicing, and shuffling again is the good option. The difference
in cost between the shuffle transform and a general sort is too large to
justify sorting. Insert and Remove do exactly this round trip; both are O(n)
and dominated by the splice and the shuffle passes, not the O(log n) search.

# A note on size

If the typical case is small enough that all values fit in one cache line
there is probably nothing measurable to gain from a binary search at all, let
alone a shuffled one.

*/
