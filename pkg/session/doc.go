/*
Package session keeps live sequences addressable by ID and serializes access
to each of them.

A Sequence is not safe for concurrent use. The Manager wraps every Run and
Resume in a per-ID mutex, and optionally in a ports.DistributedLocker when
callers in several workers may drive the same sequence.
*/
package session
