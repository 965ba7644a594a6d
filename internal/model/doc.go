package model

// Package model defines the data the download form works with: the video details
// returned by the metadata service, resolution variants, and the form state with
// its derived status. Structures are plain values so snapshots can be handed to
// the UI without sharing memory with the controller.
