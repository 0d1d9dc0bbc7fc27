// Package service declares the ports the marketplace use cases call out
// through: credential hashing, geocoding, image storage, QR rendering and
// event publishing. Implementations live under internal/infra.
package service
