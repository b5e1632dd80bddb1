// Package hostfile reads and parses host-exposed text files such as
// /etc/os-release and single-value /proc/sys entries.
//
// The Parser is configured with functional options and guards against
// oversized or non-UTF-8 content:
//
//	parser := hostfile.NewParser(
//	    hostfile.WithVTrimChars(`"'`),
//	    hostfile.WithSkipEmptyValues(true),
//	)
//	release, err := parser.GetMap("/etc/os-release")
package hostfile
