package program

// Tier is the GZCLP slot a lift occupies in a workout: T1 is the primary
// low-rep/high-load lift, T2 the secondary moderate-volume lift, T3 the
// high-rep accessory work.
type Tier string

const (
	TierT1 Tier = "T1"
	TierT2 Tier = "T2"
	TierT3 Tier = "T3"
)

func (t Tier) Valid() bool {
	switch t {
	case TierT1, TierT2, TierT3:
		return true
	}
	return false
}

// Stage is the difficulty level within a tier: 0 easiest, 2 hardest.
// Advancing a stage raises the required load per rep scheme. T3 has a
// single stage and stays at 0 forever.
type Stage int

const (
	MinStage Stage = 0
	MaxStage Stage = 2
)

func (s Stage) Valid() bool {
	return s >= MinStage && s <= MaxStage
}

// Role is a primary lift's semantic identity, independent of which tier
// it occupies on a given day. Accessory exercises all share RoleT3.
type Role string

const (
	RoleSquat    Role = "squat"
	RoleBench    Role = "bench"
	RoleOHP      Role = "ohp"
	RoleDeadlift Role = "deadlift"
	RoleT3       Role = "t3"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSquat, RoleBench, RoleOHP, RoleDeadlift, RoleT3:
		return true
	}
	return false
}

func (r Role) IsPrimary() bool {
	switch r {
	case RoleSquat, RoleBench, RoleOHP, RoleDeadlift:
		return true
	}
	return false
}

// MuscleGroup returns the body half a primary lift trains, which selects
// the default weight increment. Accessory definitions carry their own
// muscle group instead.
func (r Role) MuscleGroup() MuscleGroup {
	switch r {
	case RoleSquat, RoleDeadlift:
		return MuscleGroupLower
	default:
		return MuscleGroupUpper
	}
}

type MuscleGroup string

const (
	MuscleGroupUpper MuscleGroup = "upper"
	MuscleGroupLower MuscleGroup = "lower"
)

func (mg MuscleGroup) Valid() bool {
	return mg == MuscleGroupUpper || mg == MuscleGroupLower
}

// Unit is the weight unit the whole program runs in.
type Unit string

const (
	UnitKg  Unit = "kg"
	UnitLbs Unit = "lbs"
)

func (u Unit) Valid() bool {
	return u == UnitKg || u == UnitLbs
}

// Day is one of the four fixed GZCLP program days. DayUnknown means the
// day could not be inferred for a workout.
type Day int

const (
	DayUnknown Day = 0
	Day1       Day = 1
	Day2       Day = 2
	Day3       Day = 3
	Day4       Day = 4
)

func (d Day) Valid() bool {
	return d >= Day1 && d <= Day4
}

// dayRotation is the static role x day tier assignment. Each program day
// schedules exactly one T1 and one T2 primary lift; the two remaining
// roles are not scheduled on that day.
var dayRotation = map[Day]map[Role]Tier{
	Day1: {RoleSquat: TierT1, RoleBench: TierT2},
	Day2: {RoleOHP: TierT1, RoleDeadlift: TierT2},
	Day3: {RoleBench: TierT1, RoleSquat: TierT2},
	Day4: {RoleDeadlift: TierT1, RoleOHP: TierT2},
}

// TierFor resolves which tier a role occupies on the given program day.
// Accessories always resolve to T3, day or no day. A primary lift on an
// unknown day, or one not scheduled on that day, resolves to false and
// must be skipped by the caller - it must never fall back to T1, since
// that would feed an unrelated progression record.
func TierFor(role Role, day Day) (Tier, bool) {
	if role == RoleT3 {
		return TierT3, true
	}
	dayTable, ok := dayRotation[day]
	if !ok {
		return "", false
	}
	tier, ok := dayTable[role]
	return tier, ok
}
