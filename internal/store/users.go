package store

import (
	"context"
	"database/sql"
	"errors"

	"cruisedesk/internal/models"
)

// ---------------- USERS ----------------

// RegisterUser inserts a new non-admin account. The caller supplies the
// password digest; plaintext never reaches the store.
func (d *DB) RegisterUser(ctx context.Context, username, passwordDigest, fullname string) (*models.User, error) {
	taken, err := d.Bun.NewSelect().
		Model((*models.User)(nil)).
		Where("username = ?", username).
		Exists(ctx)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	user := models.User{
		Username:       username,
		PasswordDigest: passwordDigest,
		Fullname:       fullname,
	}
	res, err := d.Bun.NewInsert().Model(&user).Exec(ctx)
	if err != nil {
		return nil, err
	}
	if id, err := res.LastInsertId(); err == nil {
		user.ID = id
	}
	return &user, nil
}

// AuthenticateUser returns the account matching username and digest, or
// ErrNotFound when either is wrong.
func (d *DB) AuthenticateUser(ctx context.Context, username, passwordDigest string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("username = ?", username).
		Where("password_digest = ?", passwordDigest).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
