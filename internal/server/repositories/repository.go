// Package repositories defines the storage capability contracts shared by
// every persisted entity. Concrete per-entity implementations live in
// subpackages.
//
// The contracts are deliberately narrow: an entity opts into writing,
// single-row reads, and owner-scoped reads independently, and a consumer
// depends on the smallest capability it needs (a read-only view takes a
// TargetReader, not a full Writer).
package repositories

import "context"

// TargetReader reads one entity by its primary identifier. R is the
// canonical read representation for the entity, which may be a redacted
// projection rather than the full row.
type TargetReader[ID comparable, R any] interface {
	Read(ctx context.Context, id ID) (R, error)
}

// AllReader reads every entity owned by the given key. The owner key is a
// secondary (foreign) key, so its type may differ from the entity's own
// identifier type.
type AllReader[ID comparable, R any] interface {
	ReadAll(ctx context.Context, ownerID ID) (R, error)
}

// Writer mutates entities. O is the read-back representation returned by
// Insert and Update: implementations re-read the row after a write so the
// caller observes the stored state, not the payload it passed in. Every
// Writer is therefore also a TargetReader for the same O.
//
// Insert and its read-back are two independent statements, not one
// transaction; a concurrent Delete between them makes the read-back fail
// with not-found even though the insert committed.
type Writer[ID comparable, P any, O any] interface {
	TargetReader[ID, O]

	Insert(ctx context.Context, payload P) (O, error)
	Update(ctx context.Context, id ID, payload P) (O, error)
	Delete(ctx context.Context, id ID) error
}
