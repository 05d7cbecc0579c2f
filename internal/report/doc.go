// Package report renders and delivers periodic statistics for a running
// benchmark.
//
// A Reporter polls the shared run state at a fixed cadence and, once per
// reporting interval, takes a snapshot, notifies an optional observer, writes
// the rendered record to the log sink and echoes it to the console. The log
// record has a fixed width, so the sink rewrites the same bytes in place and
// the log file never grows.
//
// Sink failures are warned about and skipped; a full disk must not stop the
// benchmark.
package report
