// Package cli wires the workbook engine behind the meeting-workbook
// command: a one-shot fetch of a week's program and a long-running serve
// mode with the HTTP API and the weekly pre-fetch job.
package cli
