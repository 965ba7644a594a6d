package download

// Package download stores downloaded video payloads on disk. Files are written
// through an afero filesystem so the same code runs against the OS and against an
// in-memory filesystem in tests. Progress is reported while the body is copied.
