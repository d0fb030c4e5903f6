// Package setlist loads the show's setlist file: the ordered song list with
// per-song overlay overrides.
//
// Song order is authoritative. Scheduling folds over the setlist in order
// because each song's variety penalty depends on the previous song's
// selection, so nothing downstream may reorder or parallelize it.
package setlist
