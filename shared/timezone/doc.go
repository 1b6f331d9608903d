// Package timezone keeps every timestamp the service renders in one configured location.
//
// Flight departure and arrival times are stored as timestamptz and rendered through Format.
// Date-only query parameters (departure_from, departure_to) are resolved with ParseDate, which
// anchors the day boundaries in the application location rather than the server's.
//
// The location comes from APP_TIMEZONE (an IANA name such as "UTC" or "Asia/Jakarta") and is
// loaded when the package is imported.
package timezone
