package repositories

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/pkg/dberrors"
	"github.com/champlain/campus/internal/pkg/logger"
)

// ErrEnrollmentAlreadyExists is returned when an enrollment with the same business id exists.
var ErrEnrollmentAlreadyExists = errors.New("enrollment with this enrollment id already exists")

var _ EnrollmentRepository = (*MongoEnrollmentRepository)(nil)

// enrollmentDocument is the stored shape of an enrollment.
type enrollmentDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	EnrollmentID     string             `bson:"enrollment_id"`
	EnrollmentYear   int                `bson:"enrollment_year"`
	Semester         string             `bson:"semester"`
	StudentID        string             `bson:"student_id"`
	StudentFirstName string             `bson:"student_first_name"`
	StudentLastName  string             `bson:"student_last_name"`
	CourseID         string             `bson:"course_id"`
	CourseNumber     string             `bson:"course_number"`
	CourseName       string             `bson:"course_name"`
}

func toEnrollmentDocument(e *models.Enrollment, id primitive.ObjectID) enrollmentDocument {
	return enrollmentDocument{
		ID:               id,
		EnrollmentID:     e.EnrollmentID,
		EnrollmentYear:   e.EnrollmentYear,
		Semester:         string(e.Semester),
		StudentID:        e.StudentID,
		StudentFirstName: e.StudentFirstName,
		StudentLastName:  e.StudentLastName,
		CourseID:         e.CourseID,
		CourseNumber:     e.CourseNumber,
		CourseName:       e.CourseName,
	}
}

func (d enrollmentDocument) toModel() *models.Enrollment {
	return &models.Enrollment{
		ID:               d.ID.Hex(),
		EnrollmentID:     d.EnrollmentID,
		EnrollmentYear:   d.EnrollmentYear,
		Semester:         models.Semester(d.Semester),
		StudentID:        d.StudentID,
		StudentFirstName: d.StudentFirstName,
		StudentLastName:  d.StudentLastName,
		CourseID:         d.CourseID,
		CourseNumber:     d.CourseNumber,
		CourseName:       d.CourseName,
	}
}

// MongoEnrollmentRepository stores enrollments in a MongoDB collection
type MongoEnrollmentRepository struct {
	c *mongo.Collection
}

// NewMongoEnrollmentRepository creates a repository over the named collection
func NewMongoEnrollmentRepository(db *mongo.Database, collection string) *MongoEnrollmentRepository {
	return &MongoEnrollmentRepository{c: db.Collection(collection)}
}

// EnsureIndexes creates the unique index on the business id.
func (r *MongoEnrollmentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "enrollment_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("enrollment_id_unique"),
	})
	if err != nil {
		return fmt.Errorf("error creating enrollment indexes: %w", err)
	}
	return nil
}

// FindByEnrollmentID retrieves an enrollment by its business id
func (r *MongoEnrollmentRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	var doc enrollmentDocument
	err := r.c.FindOne(ctx, bson.M{"enrollment_id": enrollmentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("enrollmentId", enrollmentID).Msg("Error finding enrollment")
		return nil, fmt.Errorf("error getting enrollment by enrollment id: %w", err)
	}
	return doc.toModel(), nil
}

// FindAll streams every enrollment in insertion order
func (r *MongoEnrollmentRepository) FindAll(ctx context.Context) iter.Seq2[*models.Enrollment, error] {
	return func(yield func(*models.Enrollment, error) bool) {
		opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
		cur, err := r.c.Find(ctx, bson.M{}, opts)
		if err != nil {
			logger.Error().Err(err).Msg("Error querying enrollments")
			yield(nil, fmt.Errorf("error querying enrollments: %w", err))
			return
		}
		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc enrollmentDocument
			if err := cur.Decode(&doc); err != nil {
				yield(nil, fmt.Errorf("error decoding enrollment: %w", err))
				return
			}
			if !yield(doc.toModel(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			logger.Error().Err(err).Msg("Error iterating enrollments")
			yield(nil, fmt.Errorf("error iterating enrollments: %w", err))
		}
	}
}

// Save inserts or replaces an enrollment
func (r *MongoEnrollmentRepository) Save(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		oid := primitive.NewObjectID()
		if _, err := r.c.InsertOne(ctx, toEnrollmentDocument(enrollment, oid)); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return ErrEnrollmentAlreadyExists
			}
			logger.Error().Err(err).Msg("Error inserting enrollment")
			return fmt.Errorf("error creating enrollment: %w", err)
		}
		enrollment.ID = oid.Hex()
		return nil
	}

	oid, err := primitive.ObjectIDFromHex(enrollment.ID)
	if err != nil {
		return fmt.Errorf("invalid enrollment key %q: %w", enrollment.ID, err)
	}
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": oid}, toEnrollmentDocument(enrollment, oid))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEnrollmentAlreadyExists
		}
		logger.Error().Err(err).Str("id", enrollment.ID).Msg("Error replacing enrollment")
		return fmt.Errorf("error updating enrollment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an enrollment by its internal key
func (r *MongoEnrollmentRepository) Delete(ctx context.Context, enrollment *models.Enrollment) error {
	oid, err := primitive.ObjectIDFromHex(enrollment.ID)
	if err != nil {
		return fmt.Errorf("invalid enrollment key %q: %w", enrollment.ID, err)
	}
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", enrollment.ID).Msg("Error deleting enrollment")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored enrollments
func (r *MongoEnrollmentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return n, nil
}

// Ping checks the connection to the primary
func (r *MongoEnrollmentRepository) Ping(ctx context.Context) error {
	return r.c.Database().Client().Ping(ctx, readpref.Primary())
}
