package repository

import (
	"context"

	"expresocargas/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "expresocargas"

type MongoDraftRepo struct {
	DB *mongo.Client
}

func NewMongoDraftRepo(db *mongo.Client) *MongoDraftRepo {
	return &MongoDraftRepo{DB: db}
}

func (r *MongoDraftRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("dispatch_draft")
}

func (r *MongoDraftRepo) GetDraft(ctx context.Context, sessionID string) (*models.DispatchDraft, error) {
	draft := &models.DispatchDraft{}
	err := r.collection().FindOne(ctx, bson.M{"session_id": sessionID}).Decode(draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return draft, nil
}

func (r *MongoDraftRepo) SaveDraft(ctx context.Context, draft *models.DispatchDraft) error {
	_, err := r.collection().ReplaceOne(ctx,
		bson.M{"session_id": draft.SessionID},
		draft,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoDraftRepo) DeleteDraft(ctx context.Context, sessionID string) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}
