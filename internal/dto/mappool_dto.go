// FILE: internal/dto/mappool_dto.go
package dto

// MapPoolDocument is the persisted pool artifact and the body served to clients.
// Field order is fixed so the encoding is stable across cache round trips.
type MapPoolDocument struct {
	NM []MapPoolPick `json:"NM"`
	HD []MapPoolPick `json:"HD"`
	HR []MapPoolPick `json:"HR"`
	DT []MapPoolPick `json:"DT"`
	TB []MapPoolPick `json:"TB"`
}

type MapPoolPick struct {
	Pick    string  `json:"pick"`
	MapId   int64   `json:"mapId"`
	Bg      string  `json:"bg"`
	Artist  string  `json:"artist"`
	Title   string  `json:"title"`
	Diff    string  `json:"diff"`
	Creator string  `json:"creator"`
	Length  string  `json:"length"`
	Link    string  `json:"link"`
	AR      float64 `json:"ar"`
	CS      float64 `json:"cs"`
	HP      float64 `json:"hp"`
	OD      float64 `json:"od"`
	SR      float64 `json:"sr"`
	BPM     float64 `json:"bpm"`
}

type StageResponse struct {
	Id   int    `json:"id"`
	Slug string `json:"slug"`
}
