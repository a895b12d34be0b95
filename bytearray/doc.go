// Package bytearray provides fixed-size byte containers.
//
// Array holds ordinary public data (hashes, public keys, addresses). Secure
// holds secret key material: constructing one consumes and zeroes the source
// buffer, and Erase overwrites the container's own storage.
//
// Both types are parameterised by a Size marker so that the length is part of
// the type. Construction from a buffer of any other length fails with a
// sdkerr.KindSizeMismatch error; nothing is ever truncated or padded.
package bytearray
