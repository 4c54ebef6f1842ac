/*
Package btreeset defines an ordered set of unique keys and the contract shared by its
implementations.

Sets

A set holds keys of a totally ordered type. It supports point operations only:
search, membership test, insertion and removal. There are no associated values,
no duplicate keys and no range queries.

The main implementation lives in package btree: an in-memory B-tree of
configurable minimum degree B, where every node except the root holds between
B-1 and 2B-1 keys and every leaf sits at the same depth. Package reference
provides a trusted ordered set with the identical surface, used to validate the
B-tree differentially, and package conformance holds a black-box test harness
which every implementation of Set has to pass.

From Cormen, Leiserson, Rivest and Stein, Introduction to Algorithms:

B-trees are balanced search trees designed to work well on disks or other
direct-access secondary storage devices. […] B-tree nodes may have many
children, from a few to thousands. That is, the "branching factor" of a B-tree
can be quite large. […] Every n-node B-tree has height O(lg n).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package btreeset

// SetError is an error type for the btreeset module.
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged by Search and Remove whenever a key is not
// contained in a set. The set is left unchanged.
const ErrKeyNotFound = SetError("key not found")

// ErrKeyAlreadyExists is flagged by Insert for a key which is already
// contained in a set. The set is left unchanged.
const ErrKeyAlreadyExists = SetError("key already exists")
