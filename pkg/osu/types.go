package osu

// Beatmap is the subset of GET /api/v2/beatmaps/{id} that the backend reads.
type Beatmap struct {
	ID               int64      `json:"id"`
	BeatmapsetID     int64      `json:"beatmapset_id"`
	Version          string     `json:"version"`
	Mode             string     `json:"mode"`
	DifficultyRating float64    `json:"difficulty_rating"`
	CS               float64    `json:"cs"`
	Drain            float64    `json:"drain"`
	AR               float64    `json:"ar"`
	Accuracy         float64    `json:"accuracy"`
	BPM              float64    `json:"bpm"`
	TotalLength      int        `json:"total_length"`
	HitLength        int        `json:"hit_length"`
	URL              string     `json:"url"`
	Beatmapset       Beatmapset `json:"beatmapset"`
}

type Beatmapset struct {
	ID      int64  `json:"id"`
	Artist  string `json:"artist"`
	Title   string `json:"title"`
	Creator string `json:"creator"`
	Covers  Covers `json:"covers"`
}

type Covers struct {
	Cover   string `json:"cover"`
	Card    string `json:"card"`
	List    string `json:"list"`
	SlimCov string `json:"slimcover"`
}

// DifficultyAttributes mirrors the osu! ruleset attributes returned by
// POST /api/v2/beatmaps/{id}/attributes.
type DifficultyAttributes struct {
	StarRating        float64 `json:"star_rating"`
	MaxCombo          int     `json:"max_combo"`
	AimDifficulty     float64 `json:"aim_difficulty"`
	SpeedDifficulty   float64 `json:"speed_difficulty"`
	SpeedNoteCount    float64 `json:"speed_note_count"`
	SliderFactor      float64 `json:"slider_factor"`
	ApproachRate      float64 `json:"approach_rate"`
	OverallDifficulty float64 `json:"overall_difficulty"`
}

type attributesRequest struct {
	Mods    []string `json:"mods"`
	Ruleset string   `json:"ruleset"`
}

type attributesResponse struct {
	Attributes DifficultyAttributes `json:"attributes"`
}

// User is the subset of GET /api/v2/me used by the login flow.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatar_url"`
	CountryCode string `json:"country_code"`
}
