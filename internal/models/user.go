package models

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID             int64  `bun:"id,pk,autoincrement"`
	Username       string `bun:"username,unique,notnull"`
	PasswordDigest string `bun:"password_digest,notnull"`
	Fullname       string `bun:"fullname,notnull"`
	IsAdmin        bool   `bun:"is_admin"`
}
