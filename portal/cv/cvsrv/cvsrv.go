package cvsrv

import (
	"context"
	"time"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/catalog"
	"github.com/openhire/jobportal/portal/cv"
)

// CVService provides business operations for CVs
type CVService struct {
	cvRepo    cv.Repository
	skillRepo catalog.SkillRepository
}

// NewCVService creates a new instance of the CV service
func NewCVService(cvRepo cv.Repository, skillRepo catalog.SkillRepository) *CVService {
	return &CVService{
		cvRepo:    cvRepo,
		skillRepo: skillRepo,
	}
}

// ListMyCVs retrieves the caller's CVs
func (s *CVService) ListMyCVs(ctx context.Context, userID kernel.UserID) ([]cv.CVResponse, error) {
	cvs, err := s.cvRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list CVs", errx.TypeInternal)
	}
	return cvs, nil
}

// GetCV retrieves a CV. Seekers can only read their own; employer and admin
// scopes can read any.
func (s *CVService) GetCV(ctx context.Context, scope access.Scope, id kernel.CVID) (*cv.CVResponse, error) {
	resp, err := s.cvRepo.GetResponseByID(ctx, id)
	if err != nil {
		return nil, cv.ErrCVNotFound().WithDetail("cv_id", id.String())
	}

	if scope.IsJobSeeker() && resp.UserID != scope.UserID {
		return nil, cv.ErrNotOwner().WithDetail("cv_id", id.String())
	}

	return resp, nil
}

// CreateCV creates a CV for the caller. The CV and its skill rows are stored
// atomically.
func (s *CVService) CreateCV(ctx context.Context, scope access.Scope, req cv.CreateCVRequest) (*cv.CVResponse, error) {
	if err := s.validateSkillSet(ctx, req.SkillIDs); err != nil {
		return nil, err
	}

	newCV := &cv.CV{
		UserID:          scope.UserID,
		Summary:         req.Summary,
		ExperienceYears: req.ExperienceYears,
		EducationLevel:  req.EducationLevel,
		SkillsText:      req.SkillsText,
		CreatedAt:       time.Now(),
	}

	if err := s.cvRepo.CreateWithSkills(ctx, newCV, req.SkillIDs); err != nil {
		return nil, err
	}

	return s.cvRepo.GetResponseByID(ctx, newCV.ID)
}

// UpdateCV updates the caller's own CV and replaces its skill set
func (s *CVService) UpdateCV(ctx context.Context, scope access.Scope, id kernel.CVID, req cv.UpdateCVRequest) (*cv.CVResponse, error) {
	existing, err := s.cvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, cv.ErrCVNotFound().WithDetail("cv_id", id.String())
	}

	if !scope.OwnsRow(existing.UserID) {
		return nil, cv.ErrNotOwner().WithDetail("cv_id", id.String())
	}

	if err := s.validateSkillSet(ctx, req.SkillIDs); err != nil {
		return nil, err
	}

	existing.Summary = req.Summary
	existing.ExperienceYears = req.ExperienceYears
	existing.EducationLevel = req.EducationLevel
	existing.SkillsText = req.SkillsText

	if err := s.cvRepo.UpdateWithSkills(ctx, id, existing, req.SkillIDs); err != nil {
		return nil, err
	}

	return s.cvRepo.GetResponseByID(ctx, id)
}

// DeleteCV deletes the caller's own CV
func (s *CVService) DeleteCV(ctx context.Context, scope access.Scope, id kernel.CVID) error {
	existing, err := s.cvRepo.GetByID(ctx, id)
	if err != nil {
		return cv.ErrCVNotFound().WithDetail("cv_id", id.String())
	}

	if !scope.OwnsRow(existing.UserID) {
		return cv.ErrNotOwner().WithDetail("cv_id", id.String())
	}

	return s.cvRepo.Delete(ctx, id)
}

// validateSkillSet rejects duplicate ids and ids with no stored skill
func (s *CVService) validateSkillSet(ctx context.Context, ids []kernel.SkillID) error {
	seen := make(map[kernel.SkillID]struct{}, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			return cv.ErrInvalidSkillSet().WithDetail("skill_id", id.String())
		}
		if _, dup := seen[id]; dup {
			return cv.ErrInvalidSkillSet().WithDetail("duplicate_skill_id", id.String())
		}
		seen[id] = struct{}{}
	}
	if len(ids) == 0 {
		return nil
	}

	count, err := s.skillRepo.CountExisting(ctx, ids)
	if err != nil {
		return errx.Wrap(err, "failed to verify skill set", errx.TypeInternal)
	}
	if count != int64(len(ids)) {
		return cv.ErrInvalidSkillSet().
			WithDetail("requested", len(ids)).
			WithDetail("found", count)
	}

	return nil
}
