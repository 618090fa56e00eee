/*
Package runner drives a sequence to the end, answering each suspension through
an IOHandler.

TextHandler talks to a terminal (or any reader/writer pair), JSONHandler speaks
JSON lines for programmatic hosts, and ScriptedHandler replays canned answers
for headless runs and tests. RunBatch drives many sequences concurrently.
*/
package runner
