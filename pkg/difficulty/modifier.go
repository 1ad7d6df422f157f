package difficulty

// Modifier is a gameplay mod that can change a beatmap's effective difficulty.
type Modifier int

const (
	None Modifier = iota
	HalfTime
	DoubleTime
	Nightcore
	HardRock
	Hidden
	Easy
	Flashlight
)

var acronyms = map[Modifier]string{
	None:       "",
	HalfTime:   "HT",
	DoubleTime: "DT",
	Nightcore:  "NC",
	HardRock:   "HR",
	Hidden:     "HD",
	Easy:       "EZ",
	Flashlight: "FL",
}

// Acronym returns the osu! acronym for the mod, or "" for None.
func (m Modifier) Acronym() string {
	return acronyms[m]
}

func (m Modifier) String() string {
	if m == None {
		return "NM"
	}
	if a, ok := acronyms[m]; ok {
		return a
	}
	return "unknown"
}

// IsDoubleTime reports whether the mod speeds playback up by 1.5x.
func (m Modifier) IsDoubleTime() bool {
	return m == DoubleTime || m == Nightcore
}

// AltersDifficulty reports whether Adjust changes any figure for this mod.
func (m Modifier) AltersDifficulty() bool {
	return m == HardRock || m.IsDoubleTime()
}
