// Package manager detects the host's native package manager and provides
// per-manager backends for enumerating installed packages and fetching
// per-package details.
//
// Detection reads the distribution id from os-release and maps it to a Kind.
// Resolve turns a Kind into a Backend via a registry lookup; kinds without a
// registered backend (Unknown, Zypper) refuse resolution before any
// subprocess runs:
//
//	kind := manager.Detect()
//	backend, err := manager.Resolve(kind, manager.WithTimeout(30*time.Second))
//	if err != nil {
//	    return err
//	}
//	if err := manager.CheckTool(backend); err != nil {
//	    return err
//	}
//	packages, err := backend.List(ctx)
//
// Listing output is parsed strictly: every line must split into exactly one
// name and one version, and a repeated name aborts the pass. Detail fetches
// are best-effort by contract; callers absorb their failures.
package manager
