package platform

// Package platform contains OS integration: the default download location,
// file name rules for saved videos, and opening or revealing files with the
// desktop's own applications.
