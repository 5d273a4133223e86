package auth

// Action names a mutation a subject wants to perform on a resource.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Resource describes the row being acted on; OwnerID is the owning user.
type Resource struct {
	Kind    string
	OwnerID int64
}

// Can is the single ownership policy: a user may mutate a resource only when
// they own it. Every handler goes through here instead of comparing ids
// inline.
func Can(userID int64, res Resource, _ Action) bool {
	return userID != 0 && userID == res.OwnerID
}
