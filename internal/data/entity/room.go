package entity

// Room is created administratively (seeded by migration) and is never
// mutated by the booking core except for its active flag.
type Room struct {
	Base
	Name        string `db:"name"`
	Description string `db:"description"`
	Capacity    int    `db:"capacity"`
	IsActive    bool   `db:"is_active"`
}
