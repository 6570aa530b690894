package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursehub/course-platform/internal/core/domain"
)

const enrollmentsCollection = "enrollments"

// EnrollmentRepository implements ports.EnrollmentRepository using MongoDB.
// The unique compound index on (student_id, course_id) is the authoritative
// duplicate-enrollment guard.
type EnrollmentRepository struct {
	coll *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{coll: db.Collection(enrollmentsCollection)}
}

type mongoEnrollment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	StudentID  string             `bson:"student_id"`
	CourseID   string             `bson:"course_id"`
	EnrolledAt time.Time          `bson:"enrolled_at"`
}

func (me mongoEnrollment) toDomain() *domain.Enrollment {
	return &domain.Enrollment{
		ID:         me.ID.Hex(),
		StudentID:  me.StudentID,
		CourseID:   me.CourseID,
		EnrolledAt: me.EnrolledAt.UTC(),
	}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEnrollment{
		StudentID:  enrollment.StudentID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	created := *enrollment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EnrollmentRepository) FindByStudent(ctx context.Context, studentID string) ([]*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, fmt.Errorf("find enrollments: %w", err)
	}
	defer cur.Close(ctx)

	var enrollments []*domain.Enrollment
	for cur.Next(ctx) {
		var me mongoEnrollment
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode enrollment: %w", err)
		}
		enrollments = append(enrollments, me.toDomain())
	}
	return enrollments, cur.Err()
}

func (r *EnrollmentRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error) {
	return r.exists(ctx, bson.M{"student_id": studentID, "course_id": courseID})
}

func (r *EnrollmentRepository) ExistsByCourse(ctx context.Context, courseID string) (bool, error) {
	return r.exists(ctx, bson.M{"course_id": courseID})
}

func (r *EnrollmentRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count enrollments: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique (student_id, course_id) index plus the
// course lookup index on the enrollments collection.
func (r *EnrollmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "course_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "course_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
