// Package chanlog provides an in-process, channel-filtered logger that keeps
// everything in memory until the program decides to flush it.
//
// Features:
//   - Two append-only buffers: a full log and a filtered screen log
//   - Named channels gating what reaches the screen log
//   - Call-site attribution and full call-stack dumps
//   - Fatal comparison checks that dump the stack before panicking
//   - A lifecycle wrapper that captures failures and flushes exactly once
//   - Snapshot of the full log to a file
//
// Lixen Wraith, 2024
package chanlog
