package mysql

import (
	"context"
	"time"

	"github.com/upper/db/v4"

	appDb "github.com/skillswap/skillswap-be/db"
	"github.com/skillswap/skillswap-be/db/dao"
	"github.com/skillswap/skillswap-be/model"
)

type ChatDB struct {
	sess db.Session
}

func getChatDB(sess db.Session) *ChatDB {
	return &ChatDB{sess}
}

type questionRow struct {
	Id           int64         `db:"id"`
	UserId       dao.NullInt64 `db:"user_id"`
	CommunityId  int64         `db:"community_id"`
	QuestionText string        `db:"question_text"`
	CreatedAt    time.Time     `db:"created_at"`
}

type replyRow struct {
	Id         int64         `db:"id"`
	QuestionId int64         `db:"question_id"`
	UserId     dao.NullInt64 `db:"user_id"`
	ReplyText  string        `db:"reply_text"`
	Likes      int           `db:"likes"`
	CreatedAt  time.Time     `db:"created_at"`
}

func (q *questionRow) toModel() *model.Question {
	return &model.Question{
		Id:           q.Id,
		UserId:       q.UserId.AsInt(),
		CommunityId:  q.CommunityId,
		QuestionText: q.QuestionText,
		CreatedAt:    q.CreatedAt,
		Replies:      []*model.Reply{}, // DON'T return nil slice
	}
}

func (r *replyRow) toModel() *model.Reply {
	return &model.Reply{
		Id:         r.Id,
		QuestionId: r.QuestionId,
		UserId:     r.UserId.AsInt(),
		ReplyText:  r.ReplyText,
		Likes:      r.Likes,
		CreatedAt:  r.CreatedAt,
	}
}

// GetQuestionsByCommunity returns a community's questions in insertion
// order, replies nested in insertion order. Display ordering is the
// client's concern.
func (cdb *ChatDB) GetQuestionsByCommunity(ctx context.Context, communityId int64) ([]*model.Question, error) {
	var rows []*questionRow
	if err := cdb.sess.SQL().
		Select("*").
		From("question").
		Where("community_id = ?", communityId).
		OrderBy("id").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}

	questions := make([]*model.Question, len(rows))
	byId := make(map[int64]*model.Question, len(rows))
	ids := make([]int64, len(rows))
	for i, row := range rows {
		questions[i] = row.toModel()
		byId[row.Id] = questions[i]
		ids[i] = row.Id
	}
	if len(ids) == 0 {
		return questions, nil
	}

	var replies []*replyRow
	if err := cdb.sess.SQL().
		Select("*").
		From("reply").
		Where("question_id IN ?", ids).
		OrderBy("id").
		IteratorContext(ctx).
		All(&replies); err != nil {
		return nil, err
	}
	for _, row := range replies {
		q := byId[row.QuestionId]
		q.Replies = append(q.Replies, row.toModel())
	}
	return questions, nil
}

func (cdb *ChatDB) GetQuestionById(ctx context.Context, id int64) (*model.Question, error) {
	var row questionRow
	if err := cdb.sess.SQL().
		Select("*").
		From("question").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&row); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (cdb *ChatDB) CreateQuestion(ctx context.Context, req *appDb.CreateQuestion) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("question").
		Columns("user_id", "community_id", "question_text").
		Values(authorValue(req.UserId), req.CommunityId, req.QuestionText).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (cdb *ChatDB) CreateReply(ctx context.Context, req *appDb.CreateReply) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("reply").
		Columns("question_id", "user_id", "reply_text").
		Values(req.QuestionId, authorValue(req.UserId), req.ReplyText).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LikeReply increments in SQL so concurrent likes from other clients never
// lose updates; the returned count is the authoritative post-increment
// value.
func (cdb *ChatDB) LikeReply(ctx context.Context, replyId int64) (int, error) {
	var likes int
	err := cdb.sess.TxContext(ctx, func(sess db.Session) error {
		res, err := sess.SQL().
			ExecContext(ctx, "UPDATE reply SET likes = likes + 1 WHERE id = ?", replyId)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return appDb.ErrNotFound
		}
		row, err := sess.SQL().
			QueryRowContext(ctx, "SELECT likes FROM reply WHERE id = ?", replyId)
		if err != nil {
			return err
		}
		return row.Scan(&likes)
	}, nil)
	if err != nil {
		return 0, err
	}
	return likes, nil
}

func (cdb *ChatDB) CreateReport(ctx context.Context, req *appDb.CreateReport) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("report").
		Columns("reply_id", "reference").
		Values(req.ReplyId, req.Reference).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// authorValue maps the anonymous author (id 0) to NULL.
func authorValue(userId int64) interface{} {
	if userId == 0 {
		return nil
	}
	return userId
}
