// Package controller implements the download form: it validates the submitted URL,
// fetches video metadata, tracks the selected resolution and format, and downloads
// the chosen variant. State is exposed as FormState snapshots to an observer so the
// desktop window and the CLI can render the same flow.
package controller
