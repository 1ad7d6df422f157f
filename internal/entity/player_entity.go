// FILE: internal/entity/player_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlayerRole string

const (
	PlayerRolePlayer PlayerRole = "player"
	PlayerRoleAdmin  PlayerRole = "admin"
)

// Player is an osu! account that completed the login flow.
type Player struct {
	Id        uuid.UUID
	ApiId     string // client session id supplied by the frontend on login
	OsuUserId int64
	Username  string
	AvatarURL string
	Token     []byte // oauth2 token save-data, JSON encoded
	CreatedAt time.Time
	UpdatedAt time.Time
}
