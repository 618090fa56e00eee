/*
Package observability provides tools for monitoring sequences.

It includes lifecycle hooks that log transitions, Prometheus metrics, an
in-memory event recorder for introspection, and an HTTP router exposing
/metrics, /healthz and /events.
*/
package observability
