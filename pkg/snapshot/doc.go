// Package snapshot defines the package inventory record and the Assembler
// that builds it.
//
// A Snapshot combines the listing produced by a package manager backend,
// optional per-package details, host metadata, and a fixed-format timestamp.
// Assembly is sequential and rejects inputs that would violate the persisted
// snapshot invariants: an empty inventory or an unknown manager kind.
//
//	asm := snapshot.New(kind,
//	    snapshot.WithDetails(backend),
//	    snapshot.WithProgress(func(done, total int, name string) {
//	        bar.Update(done, total)
//	    }),
//	)
//	snap, err := asm.Assemble(ctx, packages, meta)
package snapshot
