package mysql

import (
	"context"

	"github.com/upper/db/v4"

	appDb "github.com/skillswap/skillswap-be/db"
	"github.com/skillswap/skillswap-be/model"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) CreateUser(ctx context.Context, req *appDb.CreateUser) (int64, error) {
	res, err := udb.sess.SQL().
		InsertInto("person").
		Columns("name", "email", "password_hash").
		Values(req.Name, req.Email, req.PasswordHash).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (udb *UserDB) GetUserById(ctx context.Context, id int64) (*model.User, error) {
	return udb.getUser(ctx, "id = ?", id)
}

func (udb *UserDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return udb.getUser(ctx, "email = ?", email)
}

func (udb *UserDB) getUser(ctx context.Context, where string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("id", "name", "email").
		From("person").
		Where(where, arg).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

type credentialsRow struct {
	Id           int64  `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}

func (udb *UserDB) GetCredentialsByEmail(ctx context.Context, email string) (*model.User, string, error) {
	var row credentialsRow
	if err := udb.sess.SQL().
		Select("id", "name", "email", "password_hash").
		From("person").
		Where("email = ?", email).
		IteratorContext(ctx).
		One(&row); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, "", nil
		}
		return nil, "", err
	}
	return &model.User{Id: row.Id, Name: row.Name, Email: row.Email}, row.PasswordHash, nil
}
