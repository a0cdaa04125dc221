// Package service implements the resource services of the listing
// platform. Services take their collaborators (stores, the geocoding
// provider, the blob storage client) as explicit constructor
// dependencies and raise typed failures; translating those into HTTP
// status codes is the API layer's job, never theirs.
package service
