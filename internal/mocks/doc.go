// Package mocks provides hand-written test doubles for the store,
// geocoding, blob storage and auth interfaces. Each mock exposes
// function fields to customize behavior per test, with map-backed
// defaults that behave like a tiny in-memory store.
package mocks
