package operations

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/CorrelAid/chart_submission_portal/inits"
	"github.com/CorrelAid/chart_submission_portal/models"
	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionStore keeps submission records in memory.
type SubmissionStore struct {
	db  *memdb.MemDB
	ttl time.Duration
	now func() time.Time
}

func NewSubmissionStore(db *memdb.MemDB, ttl time.Duration) *SubmissionStore {
	return &SubmissionStore{db: db, ttl: ttl, now: time.Now}
}

// StartSubmission records a new attempt in the submitting state.
func (s *SubmissionStore) StartSubmission(processedFormData models.ProcessedFormData) (models.Submission, error) {
	now := s.now().UTC()
	submission := models.Submission{
		ID:       uuid.NewString(),
		State:    models.StateSubmitting,
		Name:     processedFormData.Name,
		FileName: processedFormData.FileName,
		Time:     now.Format(time.RFC3339),
		Expiry:   now.Add(s.ttl).Format(time.RFC3339),
	}

	if err := s.put(submission); err != nil {
		return models.Submission{}, err
	}
	log.Printf("Started submission: id=%s file=%q", submission.ID, submission.FileName)
	return submission, nil
}

// FinishSubmission moves a record out of the submitting state. A nil err
// marks it successful.
func (s *SubmissionStore) FinishSubmission(id string, result models.Result, err error) (models.Submission, error) {
	submission, getErr := s.GetSubmission(id)
	if getErr != nil {
		return models.Submission{}, getErr
	}

	if err != nil {
		submission.State = models.StateError
		submission.Error = err.Error()
	} else {
		submission.State = models.StateSuccess
		submission.Message = result.Message
		submission.ChartCount = len(result.Charts)
	}

	if putErr := s.put(submission); putErr != nil {
		return models.Submission{}, putErr
	}
	log.Printf("Finished submission: id=%s state=%s", submission.ID, submission.State)
	return submission, nil
}

func (s *SubmissionStore) GetSubmission(id string) (models.Submission, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(inits.SubmissionTable, "id", id)
	if err != nil {
		return models.Submission{}, err
	}
	if raw == nil {
		return models.Submission{}, ErrSubmissionNotFound
	}
	return *raw.(*models.Submission), nil
}

// CountByState returns how many records are currently in the given state.
func (s *SubmissionStore) CountByState(state models.SubmissionState) (int, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(inits.SubmissionTable, "state", string(state))
	if err != nil {
		return 0, err
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}

// DeleteExpired removes every record whose expiry is at or before now and
// returns how many were deleted.
func (s *SubmissionStore) DeleteExpired(now time.Time) (int, error) {
	cutoff := now.UTC().Format(time.RFC3339)

	txn := s.db.Txn(true)
	defer txn.Abort()

	it, err := txn.LowerBound(inits.SubmissionTable, "expiry", "")
	if err != nil {
		return 0, err
	}

	var expired []*models.Submission
	for obj := it.Next(); obj != nil; obj = it.Next() {
		submission := obj.(*models.Submission)
		if submission.Expiry > cutoff {
			break
		}
		expired = append(expired, submission)
	}

	for _, submission := range expired {
		if err := txn.Delete(inits.SubmissionTable, submission); err != nil {
			return 0, fmt.Errorf("delete submission %s: %w", submission.ID, err)
		}
		log.Printf("Deleted expired submission: id=%s", submission.ID)
	}

	txn.Commit()
	return len(expired), nil
}

func (s *SubmissionStore) put(submission models.Submission) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(inits.SubmissionTable, &submission); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
