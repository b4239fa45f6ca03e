package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/animationlms/platform-api/internal/core/domain"
)

const signupCollection = "notifications"

// SignupRepository persists notification signups in the "notifications"
// collection. Inserts are append-only; there is no uniqueness index, so
// duplicate emails produce distinct documents.
type SignupRepository struct {
	coll *mongo.Collection
}

func NewSignupRepository(db *mongo.Database) *SignupRepository {
	return &SignupRepository{coll: db.Collection(signupCollection)}
}

type signupDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Timestamp string             `bson:"timestamp"`
	Source    string             `bson:"source,omitempty"`
}

func (r *SignupRepository) InsertOne(ctx context.Context, rec *domain.SignupRecord) error {
	if _, err := r.coll.InsertOne(ctx, toDoc(rec)); err != nil {
		return fmt.Errorf("insert signup: %w", err)
	}
	return nil
}

// InsertMany writes the whole batch in a single driver call. Mongo's
// ordered insert stops at the first failure; the error is surfaced for the
// batch as a whole.
func (r *SignupRepository) InsertMany(ctx context.Context, recs []domain.SignupRecord) error {
	docs := make([]interface{}, 0, len(recs))
	for i := range recs {
		docs = append(docs, toDoc(&recs[i]))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert signups: %w", err)
	}
	return nil
}

func (r *SignupRepository) FindAll(ctx context.Context) ([]domain.SignupRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find signups: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []signupDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode signups: %w", err)
	}

	recs := make([]domain.SignupRecord, 0, len(docs))
	for _, doc := range docs {
		recs = append(recs, domain.SignupRecord{
			ID:        doc.ID.Hex(),
			Email:     doc.Email,
			Phone:     doc.Phone,
			Timestamp: doc.Timestamp,
			Source:    doc.Source,
		})
	}
	return recs, nil
}

func toDoc(rec *domain.SignupRecord) signupDoc {
	return signupDoc{
		Email:     rec.Email,
		Phone:     rec.Phone,
		Timestamp: rec.Timestamp,
		Source:    rec.Source,
	}
}
