package repository

import (
	"context"
	"errors"
	"time"

	"expresocargas/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type MongoEmployeeRepo struct {
	DB *mongo.Client
}

func NewMongoEmployeeRepo(db *mongo.Client) *MongoEmployeeRepo {
	return &MongoEmployeeRepo{DB: db}
}

func (r *MongoEmployeeRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("employee")
}

func (r *MongoEmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	existing, err := r.GetEmployeeByEmail(ctx, e.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("el email ya está registrado")
	}

	if e.Password == "" {
		return errors.New("la contraseña no puede estar vacía")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Password = string(hashed)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err = r.collection().InsertOne(ctx, e)
	return err
}

func (r *MongoEmployeeRepo) GetEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoEmployeeRepo) GetEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoEmployeeRepo) GetEmployeeByVerificationToken(ctx context.Context, token string) (*models.Employee, error) {
	if token == "" {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"verification_token": token})
}

func (r *MongoEmployeeRepo) findOne(ctx context.Context, filter bson.M) (*models.Employee, error) {
	e := &models.Employee{}
	err := r.collection().FindOne(ctx, filter).Decode(e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *MongoEmployeeRepo) MarkVerified(ctx context.Context, id string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"verified": true, "verification_token": ""}},
	)
	return err
}

func (r *MongoEmployeeRepo) SetVerificationToken(ctx context.Context, id, token string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"verification_token": token}},
	)
	return err
}

// ------------------------ Sessions ------------------------

type MongoSessionRepo struct {
	DB *mongo.Client
}

func NewMongoSessionRepo(db *mongo.Client) *MongoSessionRepo {
	return &MongoSessionRepo{DB: db}
}

func (r *MongoSessionRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("session")
}

func (r *MongoSessionRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().InsertOne(ctx, s)
	return err
}

func (r *MongoSessionRepo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	s := &models.Session{}
	err := r.collection().FindOne(ctx, bson.M{"_id": token}).Decode(s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *MongoSessionRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": token})
	return err
}
