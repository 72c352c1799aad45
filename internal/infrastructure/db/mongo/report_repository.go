package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gct/report-admin/internal/core/domain"
)

const reportCollection = "reports"

// ReportRepository persists report definitions. Name uniqueness is enforced
// by a unique index; the existence check is exact and case-sensitive.
type ReportRepository struct {
	coll *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{coll: db.Collection(reportCollection)}
}

func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure report indexes: %w", err)
	}
	return nil
}

type mongoReport struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	SQLContent  string             `bson:"sql_content"`
	CreatorID   string             `bson:"creator_id"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *ReportRepository) Insert(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	doc := mongoReport{
		Name:        report.Name,
		Description: report.Description,
		SQLContent:  report.SQLContent,
		CreatorID:   report.CreatorID,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateReportName
		}
		return nil, fmt.Errorf("insert report: %w", err)
	}

	created := *report
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReportRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count reports by name: %w", err)
	}
	return n > 0, nil
}
