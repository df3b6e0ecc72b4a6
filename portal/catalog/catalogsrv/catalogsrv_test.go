package catalogsrv

import (
	"context"
	"testing"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/catalog"
)

type fakeSectorRepo struct {
	sectors      map[kernel.SectorID]*catalog.Sector
	companyCount map[kernel.SectorID]int64
	nextID       int64
}

func newFakeSectorRepo() *fakeSectorRepo {
	return &fakeSectorRepo{
		sectors:      make(map[kernel.SectorID]*catalog.Sector),
		companyCount: make(map[kernel.SectorID]int64),
		nextID:       1,
	}
}

func (f *fakeSectorRepo) Create(_ context.Context, s *catalog.Sector) error {
	s.ID = kernel.NewSectorID(f.nextID)
	f.nextID++
	f.sectors[s.ID] = s
	return nil
}

func (f *fakeSectorRepo) Update(_ context.Context, id kernel.SectorID, s *catalog.Sector) error {
	if _, ok := f.sectors[id]; !ok {
		return catalog.ErrSectorNotFound()
	}
	f.sectors[id] = s
	return nil
}

func (f *fakeSectorRepo) GetByID(_ context.Context, id kernel.SectorID) (*catalog.Sector, error) {
	s, ok := f.sectors[id]
	if !ok {
		return nil, catalog.ErrSectorNotFound()
	}
	return s, nil
}

func (f *fakeSectorRepo) Delete(_ context.Context, id kernel.SectorID) error {
	if _, ok := f.sectors[id]; !ok {
		return catalog.ErrSectorNotFound()
	}
	delete(f.sectors, id)
	return nil
}

func (f *fakeSectorRepo) List(context.Context) ([]catalog.SectorResponse, error) { return nil, nil }

func (f *fakeSectorRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, s := range f.sectors {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSectorRepo) CountCompanies(_ context.Context, id kernel.SectorID) (int64, error) {
	return f.companyCount[id], nil
}

type fakeDepartmentRepo struct {
	departments map[kernel.DepartmentID]*catalog.Department
	jobCount    map[kernel.DepartmentID]int64
	workerCount map[kernel.DepartmentID]int64
	nextID      int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		departments: make(map[kernel.DepartmentID]*catalog.Department),
		jobCount:    make(map[kernel.DepartmentID]int64),
		workerCount: make(map[kernel.DepartmentID]int64),
		nextID:      1,
	}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d *catalog.Department) error {
	d.ID = kernel.NewDepartmentID(f.nextID)
	f.nextID++
	f.departments[d.ID] = d
	return nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, id kernel.DepartmentID, d *catalog.Department) error {
	if _, ok := f.departments[id]; !ok {
		return catalog.ErrDepartmentNotFound()
	}
	f.departments[id] = d
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id kernel.DepartmentID) (*catalog.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, catalog.ErrDepartmentNotFound()
	}
	return d, nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id kernel.DepartmentID) error {
	if _, ok := f.departments[id]; !ok {
		return catalog.ErrDepartmentNotFound()
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeDepartmentRepo) List(context.Context) ([]catalog.DepartmentResponse, error) {
	return nil, nil
}

func (f *fakeDepartmentRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, d := range f.departments {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDepartmentRepo) CountJobs(_ context.Context, id kernel.DepartmentID) (int64, error) {
	return f.jobCount[id], nil
}

func (f *fakeDepartmentRepo) CountWorkers(_ context.Context, id kernel.DepartmentID) (int64, error) {
	return f.workerCount[id], nil
}

type fakeSkillRepo struct {
	skills map[kernel.SkillID]*catalog.Skill
	nextID int64
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[kernel.SkillID]*catalog.Skill), nextID: 1}
}

func (f *fakeSkillRepo) Create(_ context.Context, s *catalog.Skill) error {
	s.ID = kernel.NewSkillID(f.nextID)
	f.nextID++
	f.skills[s.ID] = s
	return nil
}

func (f *fakeSkillRepo) Update(_ context.Context, id kernel.SkillID, s *catalog.Skill) error {
	if _, ok := f.skills[id]; !ok {
		return catalog.ErrSkillNotFound()
	}
	f.skills[id] = s
	return nil
}

func (f *fakeSkillRepo) GetByID(_ context.Context, id kernel.SkillID) (*catalog.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return nil, catalog.ErrSkillNotFound()
	}
	return s, nil
}

func (f *fakeSkillRepo) Delete(_ context.Context, id kernel.SkillID) error {
	if _, ok := f.skills[id]; !ok {
		return catalog.ErrSkillNotFound()
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeSkillRepo) List(context.Context) ([]catalog.Skill, error) { return nil, nil }

func (f *fakeSkillRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, s := range f.skills {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSkillRepo) CountExisting(_ context.Context, ids []kernel.SkillID) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := f.skills[id]; ok {
			count++
		}
	}
	return count, nil
}

func newTestService() (*CatalogService, *fakeSectorRepo, *fakeDepartmentRepo, *fakeSkillRepo) {
	sectors := newFakeSectorRepo()
	departments := newFakeDepartmentRepo()
	skills := newFakeSkillRepo()
	return NewCatalogService(sectors, departments, skills), sectors, departments, skills
}

func TestCreateSectorNormalizesName(t *testing.T) {
	svc, _, _, _ := newTestService()

	s, err := svc.CreateSector(context.Background(), catalog.CreateSectorRequest{Name: "  Technology  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Technology" {
		t.Errorf("name = %q, want trimmed", s.Name)
	}
}

func TestCreateSectorRejectsBlankName(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateSector(context.Background(), catalog.CreateSectorRequest{Name: "   "})
	if !errx.IsCode(err, catalog.CodeInvalidName) {
		t.Fatalf("error = %v, want %s", err, catalog.CodeInvalidName)
	}
}

func TestCreateSectorRejectsDuplicateName(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateSector(ctx, catalog.CreateSectorRequest{Name: "Technology"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateSector(ctx, catalog.CreateSectorRequest{Name: "Technology"})
	if !errx.IsCode(err, catalog.CodeNameAlreadyExists) {
		t.Fatalf("error = %v, want %s", err, catalog.CodeNameAlreadyExists)
	}
}

func TestDeleteSectorWithCompaniesRefused(t *testing.T) {
	svc, sectors, _, _ := newTestService()
	ctx := context.Background()

	s, err := svc.CreateSector(ctx, catalog.CreateSectorRequest{Name: "Technology"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	sectors.companyCount[s.ID] = 3

	err = svc.DeleteSector(ctx, s.ID)
	if !errx.IsCode(err, catalog.CodeSectorHasCompanies) {
		t.Fatalf("error = %v, want %s", err, catalog.CodeSectorHasCompanies)
	}
	if _, ok := sectors.sectors[s.ID]; !ok {
		t.Error("sector must survive the refused delete")
	}
}

func TestDeleteEmptySector(t *testing.T) {
	svc, sectors, _, _ := newTestService()
	ctx := context.Background()

	s, err := svc.CreateSector(ctx, catalog.CreateSectorRequest{Name: "Technology"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteSector(ctx, s.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sectors.sectors[s.ID]; ok {
		t.Error("sector should be deleted")
	}
}

func TestDeleteDepartmentWithJobsRefused(t *testing.T) {
	svc, _, departments, _ := newTestService()
	ctx := context.Background()

	d, err := svc.CreateDepartment(ctx, catalog.CreateDepartmentRequest{Name: "Engineering"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	departments.jobCount[d.ID] = 1

	err = svc.DeleteDepartment(ctx, d.ID)
	if !errx.IsCode(err, catalog.CodeDepartmentHasJobs) {
		t.Fatalf("error = %v, want %s", err, catalog.CodeDepartmentHasJobs)
	}
}

func TestDeleteDepartmentWithWorkersRefused(t *testing.T) {
	svc, _, departments, _ := newTestService()
	ctx := context.Background()

	d, err := svc.CreateDepartment(ctx, catalog.CreateDepartmentRequest{Name: "Engineering"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	departments.workerCount[d.ID] = 2

	err = svc.DeleteDepartment(ctx, d.ID)
	if !errx.IsCode(err, catalog.CodeDepartmentHasWorkers) {
		t.Fatalf("error = %v, want %s", err, catalog.CodeDepartmentHasWorkers)
	}
}

func TestDeleteSkillNeverGuarded(t *testing.T) {
	svc, _, _, skills := newTestService()
	ctx := context.Background()

	s, err := svc.CreateSkill(ctx, catalog.CreateSkillRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Skill deletion cascades through junction rows instead of guarding
	if err := svc.DeleteSkill(ctx, s.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := skills.skills[s.ID]; ok {
		t.Error("skill should be deleted")
	}
}

func TestDeleteMissingSector(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.DeleteSector(context.Background(), kernel.NewSectorID(999))
	if !errx.IsCode(err, catalog.CodeSectorNotFound) {
		t.Fatalf("error = %v, want %s", err, catalog.CodeSectorNotFound)
	}
}
