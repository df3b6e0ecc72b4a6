package cvsrv

import (
	"context"
	"testing"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/catalog"
	"github.com/openhire/jobportal/portal/cv"
	"github.com/openhire/jobportal/portal/user"
)

type fakeCVRepo struct {
	cvs        map[kernel.CVID]*cv.CV
	skills     map[kernel.CVID][]kernel.SkillID
	nextID     int64
	lastSkills []kernel.SkillID
}

func newFakeCVRepo() *fakeCVRepo {
	return &fakeCVRepo{
		cvs:    make(map[kernel.CVID]*cv.CV),
		skills: make(map[kernel.CVID][]kernel.SkillID),
		nextID: 1,
	}
}

func (f *fakeCVRepo) CreateWithSkills(_ context.Context, c *cv.CV, skillIDs []kernel.SkillID) error {
	c.ID = kernel.NewCVID(f.nextID)
	f.nextID++
	f.cvs[c.ID] = c
	f.skills[c.ID] = skillIDs
	f.lastSkills = skillIDs
	return nil
}

func (f *fakeCVRepo) UpdateWithSkills(_ context.Context, id kernel.CVID, c *cv.CV, skillIDs []kernel.SkillID) error {
	f.cvs[id] = c
	f.skills[id] = skillIDs
	f.lastSkills = skillIDs
	return nil
}

func (f *fakeCVRepo) GetByID(_ context.Context, id kernel.CVID) (*cv.CV, error) {
	c, ok := f.cvs[id]
	if !ok {
		return nil, cv.ErrCVNotFound()
	}
	return c, nil
}

func (f *fakeCVRepo) GetResponseByID(_ context.Context, id kernel.CVID) (*cv.CVResponse, error) {
	c, ok := f.cvs[id]
	if !ok {
		return nil, cv.ErrCVNotFound()
	}
	return &cv.CVResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		Summary:         c.Summary,
		ExperienceYears: c.ExperienceYears,
		EducationLevel:  c.EducationLevel,
		SkillsText:      c.SkillsText,
		CreatedAt:       c.CreatedAt,
	}, nil
}

func (f *fakeCVRepo) Delete(_ context.Context, id kernel.CVID) error {
	if _, ok := f.cvs[id]; !ok {
		return cv.ErrCVNotFound()
	}
	delete(f.cvs, id)
	delete(f.skills, id)
	return nil
}

func (f *fakeCVRepo) ListByUser(_ context.Context, userID kernel.UserID) ([]cv.CVResponse, error) {
	var out []cv.CVResponse
	for id, c := range f.cvs {
		if c.UserID == userID {
			resp, _ := f.GetResponseByID(context.Background(), id)
			out = append(out, *resp)
		}
	}
	return out, nil
}

func (f *fakeCVRepo) GetLatestResponseByUser(_ context.Context, userID kernel.UserID) (*cv.CVResponse, error) {
	var latest *cv.CV
	for _, c := range f.cvs {
		if c.UserID == userID && (latest == nil || c.ID > latest.ID) {
			latest = c
		}
	}
	if latest == nil {
		return nil, cv.ErrCVNotFound()
	}
	return f.GetResponseByID(context.Background(), latest.ID)
}

type fakeSkillRepo struct {
	existing map[kernel.SkillID]bool
}

func (f *fakeSkillRepo) Create(context.Context, *catalog.Skill) error { return nil }
func (f *fakeSkillRepo) Update(context.Context, kernel.SkillID, *catalog.Skill) error {
	return nil
}
func (f *fakeSkillRepo) GetByID(context.Context, kernel.SkillID) (*catalog.Skill, error) {
	return nil, catalog.ErrSkillNotFound()
}
func (f *fakeSkillRepo) Delete(context.Context, kernel.SkillID) error { return nil }
func (f *fakeSkillRepo) List(context.Context) ([]catalog.Skill, error) {
	return nil, nil
}
func (f *fakeSkillRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (f *fakeSkillRepo) CountExisting(_ context.Context, ids []kernel.SkillID) (int64, error) {
	var count int64
	for _, id := range ids {
		if f.existing[id] {
			count++
		}
	}
	return count, nil
}

func seekerScope(userID int64) access.Scope {
	return access.Scope{UserID: kernel.NewUserID(userID), Role: user.RoleJobSeeker}
}

func adminScope() access.Scope {
	return access.Scope{UserID: kernel.NewUserID(99), Role: user.RoleAdmin}
}

func newTestService() (*CVService, *fakeCVRepo) {
	repo := newFakeCVRepo()
	skills := &fakeSkillRepo{existing: map[kernel.SkillID]bool{1: true, 2: true}}
	return NewCVService(repo, skills), repo
}

func strPtr(s string) *string { return &s }

func TestCreateCV(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.CreateCV(context.Background(), seekerScope(7), cv.CreateCVRequest{
		Summary:  strPtr("Backend engineer"),
		SkillIDs: []kernel.SkillID{1, 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.UserID != kernel.NewUserID(7) {
		t.Errorf("UserID = %v, want 7", resp.UserID)
	}
	if len(repo.lastSkills) != 2 {
		t.Errorf("stored %d skill rows, want 2", len(repo.lastSkills))
	}
}

func TestCreateCVDuplicateSkills(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreateCV(context.Background(), seekerScope(7), cv.CreateCVRequest{
		SkillIDs: []kernel.SkillID{1, 1},
	})
	if !errx.IsCode(err, cv.CodeInvalidSkillSet) {
		t.Fatalf("error = %v, want %s", err, cv.CodeInvalidSkillSet)
	}
	if len(repo.cvs) != 0 {
		t.Error("no CV may be stored when the skill set is invalid")
	}
}

func TestCreateCVUnknownSkill(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateCV(context.Background(), seekerScope(7), cv.CreateCVRequest{
		SkillIDs: []kernel.SkillID{1, 42},
	})
	if !errx.IsCode(err, cv.CodeInvalidSkillSet) {
		t.Fatalf("error = %v, want %s", err, cv.CodeInvalidSkillSet)
	}
}

func TestGetCVOwnership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCV(ctx, seekerScope(7), cv.CreateCVRequest{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetCV(ctx, seekerScope(7), created.ID); err != nil {
		t.Errorf("owner must read their own CV: %v", err)
	}

	_, err = svc.GetCV(ctx, seekerScope(8), created.ID)
	if !errx.IsCode(err, cv.CodeNotOwner) {
		t.Errorf("error = %v, want %s", err, cv.CodeNotOwner)
	}

	// Employer and admin scopes read any CV
	employer := access.Scope{UserID: kernel.NewUserID(20), Role: user.RoleEmployer}
	if _, err := svc.GetCV(ctx, employer, created.ID); err != nil {
		t.Errorf("employer read failed: %v", err)
	}
	if _, err := svc.GetCV(ctx, adminScope(), created.ID); err != nil {
		t.Errorf("admin read failed: %v", err)
	}
}

func TestUpdateCVNotOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCV(ctx, seekerScope(7), cv.CreateCVRequest{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateCV(ctx, seekerScope(8), created.ID, cv.UpdateCVRequest{})
	if !errx.IsCode(err, cv.CodeNotOwner) {
		t.Fatalf("error = %v, want %s", err, cv.CodeNotOwner)
	}
}

func TestUpdateCVReplacesSkills(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCV(ctx, seekerScope(7), cv.CreateCVRequest{
		SkillIDs: []kernel.SkillID{1, 2},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateCV(ctx, seekerScope(7), created.ID, cv.UpdateCVRequest{
		Summary:  strPtr("Updated"),
		SkillIDs: []kernel.SkillID{2},
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(repo.skills[created.ID]) != 1 {
		t.Errorf("stored %d skill rows after update, want 1", len(repo.skills[created.ID]))
	}
}

func TestDeleteCV(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCV(ctx, seekerScope(7), cv.CreateCVRequest{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteCV(ctx, seekerScope(8), created.ID); !errx.IsCode(err, cv.CodeNotOwner) {
		t.Fatalf("error = %v, want %s", err, cv.CodeNotOwner)
	}

	// Admin scope may delete any CV
	if err := svc.DeleteCV(ctx, adminScope(), created.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if len(repo.cvs) != 0 {
		t.Error("CV must be removed")
	}
}

func TestDeleteCVMissing(t *testing.T) {
	svc, _ := newTestService()

	err := svc.DeleteCV(context.Background(), seekerScope(7), kernel.NewCVID(404))
	if !errx.IsCode(err, cv.CodeCVNotFound) {
		t.Fatalf("error = %v, want %s", err, cv.CodeCVNotFound)
	}
}
