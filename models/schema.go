package models

// All lists every persisted model in dependency order. It is the static schema definition
// applied at startup.
func All() []any {
	return []any{
		&UserProfile{},
		&BlogPost{},
		&Comment{},
		&ContactSubmission{},
	}
}
