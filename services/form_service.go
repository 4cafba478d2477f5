package services

import (
	"errors"
	"strings"
	"time"

	"formforge/config"
	"formforge/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Message strings consumed by the UI. Logical failures are reported through
// these, never through HTTP status codes.
const (
	MsgFormsFound       = "Forms found!"
	MsgNoForms          = "No forms found!"
	MsgFormFound        = "Form found!"
	MsgInvalidRecordID  = "Invalid record-Id!"
	MsgNoFormQuestions  = "No questions found for this form!"
	MsgNoQuestions      = "No questions found!"
	MsgDuplicateTitle   = "Form with the same name already exists!"
	MsgInvalidUpdateID  = "Invalid record-id!"
	MsgFormSaved        = "Form saved successfully!"
	MsgSaveFailed       = "Failed to save the form!"
	MsgAnswersSubmitted = "Answers submitted successfully!"
	MsgSubmitFailed     = "Failed to submit answers!"
	MsgRecordIDNotFound = "Record-id not found!"
	MsgInvalidFormID    = "Invalid form-id!"
	MsgFormDeleted      = "Form deleted successfully!"
	MsgInternalError    = "Something went wrong, please try again!"
	MsgReadOnly         = "This action is disabled in read-only mode!"
)

type FormService struct {
	db *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{db: db}
}

// Result is the envelope every data-access operation resolves to. Unexpected
// store faults are returned as errors instead and converted by the API layer.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type QuestionPayload struct {
	ID          uint   `json:"_id"`
	QuestionID  string `json:"questionId"`
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Answer      string `json:"answer"`
}

type SaveFormRequest struct {
	FormID      string            `json:"formId"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	UpdateOnly  bool              `json:"updateOnly"`
	Questions   []QuestionPayload `json:"questions"`
}

type SubmitQuestionsRequest struct {
	FormID    string            `json:"formId"`
	Questions []QuestionPayload `json:"questions"`
}

// ListForms returns every form. Success iff at least one exists.
func (s *FormService) ListForms() (*Result, error) {
	var forms []models.Form
	if err := s.db.Order("created_at DESC").Find(&forms).Error; err != nil {
		config.Log.Error("ListForms: query failed", zap.Error(err))
		return nil, err
	}

	if len(forms) == 0 {
		return &Result{Success: false, Message: MsgNoForms}, nil
	}
	return &Result{Success: true, Message: MsgFormsFound, Data: forms}, nil
}

// GetFormForEdit looks up a form by its identifier together with its questions
// in display order. The question list is always re-derived from the questions
// table, never read back from the form record.
func (s *FormService) GetFormForEdit(formID string) (*Result, error) {
	var form models.Form
	err := s.db.Where("form_id = ?", formID).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Result{Success: false, Message: MsgInvalidRecordID}, nil
		}
		config.Log.Error("GetFormForEdit: form query failed", zap.String("formId", formID), zap.Error(err))
		return nil, err
	}

	questions := make([]models.Question, 0)
	if err := s.db.Where("form_id = ?", formID).Order(`"order" ASC`).Find(&questions).Error; err != nil {
		config.Log.Error("GetFormForEdit: question query failed", zap.String("formId", formID), zap.Error(err))
		return nil, err
	}
	form.Questions = questions

	if len(questions) == 0 {
		return &Result{Success: true, Message: MsgNoFormQuestions, Data: form}, nil
	}
	return &Result{Success: true, Message: MsgFormFound, Data: form}, nil
}

// SaveForm dispatches on updateOnly: create inserts a new form plus its
// questions, update rewrites the form's mutable fields and replaces its
// question set wholesale.
func (s *FormService) SaveForm(req *SaveFormRequest) (*Result, error) {
	if len(req.Questions) == 0 {
		return &Result{Success: false, Message: MsgNoQuestions}, nil
	}
	if req.UpdateOnly {
		return s.updateForm(req)
	}
	return s.createForm(req)
}

func (s *FormService) createForm(req *SaveFormRequest) (*Result, error) {
	var count int64
	if err := s.db.Model(&models.Form{}).Where("title = ?", req.Title).Count(&count).Error; err != nil {
		config.Log.Error("createForm: title lookup failed", zap.String("title", req.Title), zap.Error(err))
		return nil, err
	}
	if count > 0 {
		return &Result{Success: false, Message: MsgDuplicateTitle}, nil
	}

	// The fresh form identifier must not collide with any existing one.
	var existing []string
	if err := s.db.Model(&models.Form{}).Pluck("form_id", &existing).Error; err != nil {
		config.Log.Error("createForm: identifier lookup failed", zap.Error(err))
		return nil, err
	}
	exclude := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		exclude[id] = struct{}{}
	}
	formID, err := generateIdentifier(exclude)
	if err != nil {
		return nil, err
	}

	form := models.Form{
		FormID:      formID,
		Title:       req.Title,
		Description: req.Description,
	}

	// Question identifiers are collision-checked within this batch only.
	batch := make(map[string]struct{}, len(req.Questions))
	questions := make([]models.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		questionID, err := generateIdentifier(batch)
		if err != nil {
			return nil, err
		}
		batch[questionID] = struct{}{}
		questions = append(questions, models.Question{
			QuestionID:  questionID,
			FormID:      formID,
			Title:       q.Title,
			Placeholder: q.Placeholder,
			Type:        q.Type,
			Required:    q.Required,
			Order:       i,
			IsTaken:     false,
		})
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&form).Error; err != nil {
			return err
		}
		return tx.Create(&questions).Error
	})
	if txErr != nil {
		config.Log.Error("createForm: transaction failed", zap.String("title", req.Title), zap.Error(txErr))
		return nil, txErr
	}

	config.SLog.Infof("Form created: %s (%s) with %d questions", form.Title, form.FormID, len(questions))
	form.Questions = questions
	return &Result{Success: true, Message: MsgFormSaved, Data: form}, nil
}

func (s *FormService) updateForm(req *SaveFormRequest) (*Result, error) {
	var form models.Form
	err := s.db.Where("form_id = ?", req.FormID).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Result{Success: false, Message: MsgInvalidUpdateID}, nil
		}
		config.Log.Error("updateForm: form lookup failed", zap.String("formId", req.FormID), zap.Error(err))
		return nil, err
	}

	// Keep incoming identifiers; fresh ones must not collide with those kept
	// or generated so far.
	exclude := make(map[string]struct{}, len(req.Questions))
	for _, q := range req.Questions {
		if q.QuestionID != "" {
			exclude[q.QuestionID] = struct{}{}
		}
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		questionID := q.QuestionID
		if questionID == "" {
			generated, err := generateIdentifier(exclude)
			if err != nil {
				return nil, err
			}
			exclude[generated] = struct{}{}
			questionID = generated
		}
		questions = append(questions, models.Question{
			QuestionID:  questionID,
			FormID:      req.FormID,
			Title:       q.Title,
			Placeholder: q.Placeholder,
			Type:        q.Type,
			Required:    q.Required,
			Order:       i,
			IsTaken:     false,
		})
	}

	var inserted int64
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		form.Title = req.Title
		form.Description = req.Description
		if err := tx.Save(&form).Error; err != nil {
			return err
		}

		// Replace the question set wholesale.
		if err := tx.Where("form_id = ?", req.FormID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		res := tx.Create(&questions)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	if txErr != nil {
		config.Log.Error("updateForm: transaction failed", zap.String("formId", req.FormID), zap.Error(txErr))
		return nil, txErr
	}

	if inserted == 0 {
		return &Result{Success: false, Message: MsgSaveFailed}, nil
	}
	config.SLog.Infof("Form updated: %s (%s) with %d questions", form.Title, form.FormID, len(questions))
	form.Questions = questions
	return &Result{Success: true, Message: MsgFormSaved, Data: form}, nil
}

// SubmitQuestions records respondent answers. Each question is updated by its
// store key: answer, position in the submitted list, and the taken flags
// derived from whether the trimmed answer is non-empty.
func (s *FormService) SubmitQuestions(req *SubmitQuestionsRequest) (*Result, error) {
	if len(req.Questions) == 0 {
		return &Result{Success: false, Message: MsgNoQuestions}, nil
	}

	now := time.Now().UTC()
	var modified int64
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		for i, q := range req.Questions {
			taken := strings.TrimSpace(q.Answer) != ""
			updates := map[string]interface{}{
				"answer":   q.Answer,
				"order":    i,
				"is_taken": taken,
				"taken_at": nil,
			}
			if taken {
				updates["taken_at"] = now
			}
			res := tx.Model(&models.Question{}).Where("id = ?", q.ID).Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			modified += res.RowsAffected
		}
		return nil
	})
	if txErr != nil {
		config.Log.Error("SubmitQuestions: transaction failed", zap.String("formId", req.FormID), zap.Error(txErr))
		return nil, txErr
	}

	if modified == 0 {
		return &Result{Success: false, Message: MsgSubmitFailed}, nil
	}
	return &Result{Success: true, Message: MsgAnswersSubmitted}, nil
}

// DeleteForm removes a form and cascades to its questions.
func (s *FormService) DeleteForm(formID string) (*Result, error) {
	if strings.TrimSpace(formID) == "" {
		return &Result{Success: false, Message: MsgRecordIDNotFound}, nil
	}

	var affected int64
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("form_id = ?", formID).Delete(&models.Form{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			// No such form; leave the questions untouched.
			return nil
		}

		cascade := tx.Where("form_id = ?", formID).Delete(&models.Question{})
		if cascade.Error != nil {
			return cascade.Error
		}
		affected += cascade.RowsAffected
		return nil
	})
	if txErr != nil {
		config.Log.Error("DeleteForm: transaction failed", zap.String("formId", formID), zap.Error(txErr))
		return nil, txErr
	}

	if affected == 0 {
		return &Result{Success: false, Message: MsgInvalidFormID}, nil
	}
	config.SLog.Infof("Form deleted: %s", formID)
	return &Result{Success: true, Message: MsgFormDeleted}, nil
}
