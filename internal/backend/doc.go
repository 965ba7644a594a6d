// Package backend talks to the downloader backend: the metadata service that
// resolves a YouTube URL into video details and resolution variants, and the
// download service that streams the bytes of a chosen variant. It also provides
// an offline Simulated service used by the demo mode.
package backend
