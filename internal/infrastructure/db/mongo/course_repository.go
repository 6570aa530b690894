package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursehub/course-platform/internal/core/domain"
)

const coursesCollection = "courses"

// CourseRepository implements ports.CourseRepository using MongoDB.
type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(coursesCollection)}
}

type mongoCourse struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description,omitempty"`
	Category       string             `bson:"category,omitempty"`
	InstructorID   string             `bson:"instructor_id"`
	InstructorName string             `bson:"instructor_name"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (mc mongoCourse) toDomain() *domain.Course {
	return &domain.Course{
		ID:             mc.ID.Hex(),
		Title:          mc.Title,
		Description:    mc.Description,
		Category:       mc.Category,
		InstructorID:   mc.InstructorID,
		InstructorName: mc.InstructorName,
		CreatedAt:      mc.CreatedAt.UTC(),
		UpdatedAt:      mc.UpdatedAt.UTC(),
	}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCourse{
		Title:          course.Title,
		Description:    course.Description,
		Category:       course.Category,
		InstructorID:   course.InstructorID,
		InstructorName: course.InstructorName,
		CreatedAt:      course.CreatedAt,
		UpdatedAt:      course.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *course
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCourse
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]*domain.Course, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *CourseRepository) FindByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error) {
	return r.findMany(ctx, bson.M{"instructor_id": instructorID})
}

func (r *CourseRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer cur.Close(ctx)

	var courses []*domain.Course
	for cur.Next(ctx) {
		var mc mongoCourse
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, mc.toDomain())
	}
	return courses, cur.Err()
}

// Update overwrites the mutable fields of the stored course.
func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       course.Title,
		"description": course.Description,
		"category":    course.Category,
		"updated_at":  course.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// EnsureIndexes creates the instructor lookup index on the courses collection.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "instructor_id", Value: 1}},
	})
	return err
}
