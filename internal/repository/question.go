package repository

import (
	"context"
	"errors"
	"perfume-designer/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	SeedDefaults(ctx context.Context) error
	List(ctx context.Context) ([]*model.Question, error)
	FindByID(ctx context.Context, questionID string) (*model.Question, error)
	Upsert(ctx context.Context, question *model.Question) (created bool, err error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, questionID string) error
}

type questionRepoImpl struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepoImpl{
		db: db,
	}
}

// SeedDefaults inserts the base quiz. Existing ids are left untouched, so
// admin edits survive restarts.
func (r *questionRepoImpl) SeedDefaults(ctx context.Context) error {
	questions := model.DefaultQuestions()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&questions).Error
}

func (r *questionRepoImpl) List(ctx context.Context) ([]*model.Question, error) {
	var questions []*model.Question
	err := r.db.WithContext(ctx).Find(&questions).Error
	if err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *questionRepoImpl) FindByID(ctx context.Context, questionID string) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Where("id = ?", questionID).
		First(&question).Error

	if err != nil {
		return nil, err
	}

	return &question, nil
}

func (r *questionRepoImpl) Upsert(ctx context.Context, question *model.Question) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Question
		err := tx.Where("id = ?", question.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(question).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&existing).
			Select("text", "type", "options").
			Updates(question).Error
	})

	return created, err
}

// Update rewrites text, type and options of an existing question. Unknown
// ids are a no-op, matching an update without upsert.
func (r *questionRepoImpl) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).
		Model(&model.Question{ID: question.ID}).
		Select("text", "type", "options").
		Updates(question).Error
}

func (r *questionRepoImpl) Delete(ctx context.Context, questionID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", questionID).
		Delete(&model.Question{}).Error
}
