package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"perfume-designer/internal/dto"
	"perfume-designer/internal/model"
	"perfume-designer/internal/repository"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	ErrInvalidSize     = errors.New("invalid bottle size")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidFileType = errors.New("invalid file type")
)

// PricingSizes are the bottle sizes (ml) that can carry a price.
var PricingSizes = []string{"35", "50"}

const importExtension = ".xlsx"

type AdminService interface {
	Dashboard(ctx context.Context) (*dto.Dashboard, error)
	SetPrice(ctx context.Context, req *dto.PricingRequest) error
	SaveQuestion(ctx context.Context, req *dto.QuestionRequest) (created bool, err error)
	EditQuestion(ctx context.Context, questionID string, req *dto.QuestionRequest) error
	DeleteQuestion(ctx context.Context, questionID string) error
	ImportQuestions(ctx context.Context, filename string, src io.Reader) (int, error)
}

type adminServiceImpl struct {
	questionRepo repository.QuestionRepository
	pricingRepo  repository.PricingRepository
	orderRepo    repository.OrderRepository
	uploadDir    string
	log          *zap.Logger
}

func NewAdminService(
	questionRepo repository.QuestionRepository,
	pricingRepo repository.PricingRepository,
	orderRepo repository.OrderRepository,
	uploadDir string,
	log *zap.Logger,
) AdminService {
	return &adminServiceImpl{
		questionRepo: questionRepo,
		pricingRepo:  pricingRepo,
		orderRepo:    orderRepo,
		uploadDir:    uploadDir,
		log:          log,
	}
}

func (s *adminServiceImpl) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	pricing, err := s.pricingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pricing: %w", err)
	}

	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return &dto.Dashboard{
		Pricing:   pricing,
		Questions: questions,
		Orders:    orders,
	}, nil
}

func (s *adminServiceImpl) SetPrice(ctx context.Context, req *dto.PricingRequest) error {
	if !slices.Contains(PricingSizes, req.Size) {
		return ErrInvalidSize
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPrice, req.Price)
	}

	if err := s.pricingRepo.SetPrice(ctx, req.Size, price); err != nil {
		return fmt.Errorf("set price: %w", err)
	}

	s.log.Info("price updated", zap.String("size", req.Size), zap.String("price", price.String()))
	return nil
}

func (s *adminServiceImpl) SaveQuestion(ctx context.Context, req *dto.QuestionRequest) (bool, error) {
	created, err := s.questionRepo.Upsert(ctx, questionFromRequest(req.ID, req))
	if err != nil {
		return false, fmt.Errorf("upsert question %s: %w", req.ID, err)
	}
	return created, nil
}

func (s *adminServiceImpl) EditQuestion(ctx context.Context, questionID string, req *dto.QuestionRequest) error {
	if err := s.questionRepo.Update(ctx, questionFromRequest(questionID, req)); err != nil {
		return fmt.Errorf("update question %s: %w", questionID, err)
	}
	return nil
}

func (s *adminServiceImpl) DeleteQuestion(ctx context.Context, questionID string) error {
	if err := s.questionRepo.Delete(ctx, questionID); err != nil {
		return fmt.Errorf("delete question %s: %w", questionID, err)
	}
	return nil
}

// questionFromRequest splits comma separated options for choice questions;
// every other type gets no options.
func questionFromRequest(questionID string, req *dto.QuestionRequest) *model.Question {
	questionType := model.QuestionType(req.Type)

	options := []string{}
	if questionType.HasOptions() {
		for _, opt := range strings.Split(req.Options, ",") {
			options = append(options, strings.TrimSpace(opt))
		}
	}

	return &model.Question{
		ID:      questionID,
		Text:    req.Text,
		Type:    questionType,
		Options: options,
	}
}

// ImportQuestions stores the upload under the upload dir, upserts one
// question per spreadsheet row and removes the file whatever happens. Rows
// before a failing row stay imported.
func (s *adminServiceImpl) ImportQuestions(ctx context.Context, filename string, src io.Reader) (int, error) {
	if !strings.EqualFold(filepath.Ext(filename), importExtension) {
		return 0, ErrInvalidFileType
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return 0, fmt.Errorf("create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.uploadDir, "*-"+SecureFilename(filename))
	if err != nil {
		return 0, fmt.Errorf("create upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("save upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("save upload: %w", err)
	}

	sheet, err := openQuestionSheet(tmp.Name())
	if err != nil {
		return 0, err
	}

	imported := 0
	for n, row := range sheet.rows {
		if len(strings.Join(row, "")) == 0 {
			continue
		}

		q, err := sheet.question(row)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", n+2, err)
		}
		if _, err := s.questionRepo.Upsert(ctx, q); err != nil {
			return imported, fmt.Errorf("row %d: upsert question %s: %w", n+2, q.ID, err)
		}
		imported++
	}

	s.log.Info("questions imported", zap.Int("count", imported), zap.String("file", filename))
	return imported, nil
}

type questionSheet struct {
	columns map[string]int
	rows    [][]string
}

// openQuestionSheet reads the first sheet. The header row names the columns
// id, text, type and options; options holds a JSON array or stays empty.
func openQuestionSheet(path string) (*questionSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("spreadsheet is empty")
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{"id", "text", "type"} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	return &questionSheet{columns: columns, rows: rows[1:]}, nil
}

func (s *questionSheet) cell(row []string, name string) string {
	i, ok := s.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (s *questionSheet) question(row []string) (*model.Question, error) {
	id := s.cell(row, "id")
	if id == "" {
		return nil, errors.New("missing id")
	}

	options := []string{}
	if raw := s.cell(row, "options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &options); err != nil {
			return nil, fmt.Errorf("options: %w", err)
		}
	}

	return &model.Question{
		ID:      id,
		Text:    s.cell(row, "text"),
		Type:    model.QuestionType(s.cell(row, "type")),
		Options: options,
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SecureFilename reduces an uploaded name to a plain base name safe to put
// on disk.
func SecureFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "upload"
	}
	return name
}
