/*
Package observability provides observer plumbing around the core machine:
fan-out to multiple observers, step history recording, and structured log
emission. All of it is diagnostic; none of it influences a run.
*/
package observability
