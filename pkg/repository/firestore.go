package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/interfaces"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/exam"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/types"
)

const collectionUserExams = "user_exams"

// Firestore is the durable ExamRepository. One document per user, keyed by
// the user ID, so upserts and deletes are single-document operations and
// therefore atomic per user.
type Firestore struct {
	db *firestore.Client
}

var _ interfaces.ExamRepository = &Firestore{}

func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	db, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.T(errs.TagExternal))
	}

	return &Firestore{db: db}, nil
}

func (r *Firestore) Close() error {
	return r.db.Close()
}

func (r *Firestore) userExamDoc(userID types.UserID) *firestore.DocumentRef {
	return r.db.Collection(collectionUserExams).Doc(userID.String())
}

func (r *Firestore) PutUserExam(ctx context.Context, record *exam.UserExam) error {
	if err := record.Validate(); err != nil {
		return err
	}

	if _, err := r.userExamDoc(record.UserID).Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to put user exam",
			goerr.V("user_id", record.UserID),
			goerr.T(errs.TagExternal))
	}
	return nil
}

func (r *Firestore) GetUserExam(ctx context.Context, userID types.UserID) (*exam.UserExam, error) {
	doc, err := r.userExamDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get user exam",
			goerr.V("user_id", userID),
			goerr.T(errs.TagExternal))
	}

	var record exam.UserExam
	if err := doc.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user exam",
			goerr.V("user_id", userID),
			goerr.T(errs.TagExternal))
	}
	return &record, nil
}

func (r *Firestore) DeleteUserExam(ctx context.Context, userID types.UserID) (bool, error) {
	deleted := false
	err := r.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := r.userExamDoc(userID)
		if _, err := tx.Get(doc); err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return err
		}
		deleted = true
		return tx.Delete(doc)
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to delete user exam",
			goerr.V("user_id", userID),
			goerr.T(errs.TagExternal))
	}
	return deleted, nil
}

func (r *Firestore) ListUserExams(ctx context.Context) ([]*exam.UserExam, error) {
	iter := r.db.Collection(collectionUserExams).Documents(ctx)
	defer iter.Stop()

	var out []*exam.UserExam
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list user exams", goerr.T(errs.TagExternal))
		}

		var record exam.UserExam
		if err := doc.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user exam",
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagExternal))
		}
		out = append(out, &record)
	}
	return out, nil
}
