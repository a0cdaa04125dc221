// Package store defines the persistence interfaces consumed by the
// service layer, together with the sentinel errors every implementation
// must translate driver-level failures into. Implementations live in
// internal/platform/postgres.
package store
