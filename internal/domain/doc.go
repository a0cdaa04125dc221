// Package domain defines the core business entities of the listing
// platform: users, provinces, geographic entities (cities and
// communities), properties and favorites, along with their validation
// rules and the pagination primitives shared by all listing endpoints.
package domain
