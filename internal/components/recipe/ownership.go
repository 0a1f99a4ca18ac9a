package recipe

import "github.com/google/uuid"

// canMutate reports whether the authenticated user may modify the recipe.
// The decision is a pure function of the recipe's recorded owner and the
// caller's id, evaluated against the freshly loaded row on every mutating
// request. Token claims assert who the caller is, not what they may touch,
// so the result is never cached across requests.
func canMutate(r *Recipe, userID uuid.UUID) bool {
	return r.OwnerID == userID
}
