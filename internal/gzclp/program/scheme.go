package program

// RepScheme is the prescription for one (tier, stage) slot.
type RepScheme struct {
	Sets          int    `json:"sets"`
	Reps          int    `json:"reps"`
	AmrapFinalSet bool   `json:"amrapFinalSet"`
	Scheme        string `json:"scheme"`
}

var repSchemes = map[Tier][3]RepScheme{
	TierT1: {
		{Sets: 5, Reps: 3, AmrapFinalSet: true, Scheme: "5x3+"},
		{Sets: 6, Reps: 2, AmrapFinalSet: true, Scheme: "6x2+"},
		{Sets: 10, Reps: 1, AmrapFinalSet: true, Scheme: "10x1+"},
	},
	TierT2: {
		{Sets: 3, Reps: 10, Scheme: "3x10"},
		{Sets: 3, Reps: 8, Scheme: "3x8"},
		{Sets: 3, Reps: 6, Scheme: "3x6"},
	},
	// T3 has a single prescription, repeated so any valid stage value
	// resolves to the same scheme
	TierT3: {
		{Sets: 3, Reps: 15, AmrapFinalSet: true, Scheme: "3x15+"},
		{Sets: 3, Reps: 15, AmrapFinalSet: true, Scheme: "3x15+"},
		{Sets: 3, Reps: 15, AmrapFinalSet: true, Scheme: "3x15+"},
	},
}

// SchemeFor returns the rep scheme for the given tier and stage. A stage
// outside [MinStage, MaxStage] is a caller bug and panics.
func SchemeFor(tier Tier, stage Stage) RepScheme {
	return repSchemes[tier][stage]
}

// T3PassReps is the AMRAP rep threshold on the final T3 set that counts
// as a pass. Total volume across earlier sets is irrelevant.
const T3PassReps = 25
