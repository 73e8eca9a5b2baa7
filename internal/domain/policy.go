package domain

// Tier represents a user tier for policy lookup
type Tier string

const (
	TierStudent Tier = "student"
	TierFaculty Tier = "faculty"
	TierGuest   Tier = "guest"
	TierAdmin   Tier = "admin"

	// tierTeacher историческое имя тарифа faculty в форме логина
	tierTeacher Tier = "teacher"
)

// RolePolicy describes per-tier booking limits and pricing.
// Zero caps mean unlimited (admin).
type RolePolicy struct {
	Tier     Tier
	MaxRooms int
	MaxHours int
	Free     bool
}

// AllowsRooms reports whether a selection of n rooms fits the cap.
func (p RolePolicy) AllowsRooms(n int) bool {
	return p.MaxRooms == 0 || n <= p.MaxRooms
}

// AllowsHours reports whether a selection of n slots fits the cap.
func (p RolePolicy) AllowsHours(n int) bool {
	return p.MaxHours == 0 || n <= p.MaxHours
}

// TotalPrice computes a booking total for the given rooms and hour count.
// Free tiers always pay zero; paying tiers pay price-per-room-per-hour.
func (p RolePolicy) TotalPrice(rooms []*Room, hours int) float64 {
	if p.Free {
		return 0
	}
	var total float64
	for _, room := range rooms {
		total += room.Price * float64(hours)
	}
	return total
}

// PolicyTable maps user tiers onto their booking policies.
type PolicyTable map[Tier]RolePolicy

// DefaultPolicies returns the built-in policy table.
// Значения совпадают с формой выбора тарифа: student 1/2 бесплатно,
// faculty 3/4 бесплатно, guest 2/3 платно, admin без ограничений.
func DefaultPolicies() PolicyTable {
	return PolicyTable{
		TierStudent: {Tier: TierStudent, MaxRooms: 1, MaxHours: 2, Free: true},
		TierFaculty: {Tier: TierFaculty, MaxRooms: 3, MaxHours: 4, Free: true},
		TierGuest:   {Tier: TierGuest, MaxRooms: 2, MaxHours: 3, Free: false},
		TierAdmin:   {Tier: TierAdmin, MaxRooms: 0, MaxHours: 0, Free: true},
	}
}

// PolicyFor returns the policy for the tier. Unknown tiers fail closed to
// the guest policy: guest is the tier anyone gets without credentials, it
// never books for free and its caps stay tight. Student carries the
// tighter room/hour caps, but would grant a free booking to an
// unidentified caller, so paying guest is the safer floor. This is an
// explicit fallback, not a silent guess.
func (t PolicyTable) PolicyFor(tier Tier) RolePolicy {
	if policy, ok := t[NormalizeTier(tier)]; ok {
		return policy
	}
	if guest, ok := t[TierGuest]; ok {
		return guest
	}
	// Таблица без guest-политики считается ошибкой конфигурации,
	// возвращаем встроенный guest-тариф.
	return DefaultPolicies()[TierGuest]
}

// NormalizeTier maps legacy tier spellings onto canonical ones.
func NormalizeTier(tier Tier) Tier {
	if tier == tierTeacher {
		return TierFaculty
	}
	return tier
}
