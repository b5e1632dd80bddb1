// Package sysinfo collects host metadata for snapshot annotation: hostname,
// kernel identity, distribution identity, Go runtime, and CPU facts.
//
// Collection is placeholder-tolerant: any fact whose source cannot be read
// yields the Placeholder value instead of an error, so a snapshot can always
// be annotated even on unusual hosts.
package sysinfo
