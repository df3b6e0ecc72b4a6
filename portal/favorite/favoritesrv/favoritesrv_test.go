package favoritesrv

import (
	"context"
	"testing"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/favorite"
	"github.com/openhire/jobportal/portal/job"
)

type favKey struct {
	userID kernel.UserID
	jobID  kernel.JobID
}

type fakeFavoriteRepo struct {
	favorites map[favKey]*favorite.Favorite
	nextID    int64
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[favKey]*favorite.Favorite), nextID: 1}
}

func (f *fakeFavoriteRepo) Add(_ context.Context, fav *favorite.Favorite) error {
	key := favKey{fav.UserID, fav.JobID}
	if _, ok := f.favorites[key]; ok {
		return favorite.ErrAlreadyFavorited()
	}
	fav.ID = f.nextID
	f.nextID++
	f.favorites[key] = fav
	return nil
}

func (f *fakeFavoriteRepo) RemoveByUserAndJob(_ context.Context, userID kernel.UserID, jobID kernel.JobID) error {
	key := favKey{userID, jobID}
	if _, ok := f.favorites[key]; !ok {
		return favorite.ErrFavoriteNotFound()
	}
	delete(f.favorites, key)
	return nil
}

func (f *fakeFavoriteRepo) ExistsByUserAndJob(_ context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error) {
	_, ok := f.favorites[favKey{userID, jobID}]
	return ok, nil
}

func (f *fakeFavoriteRepo) ListJobsByUser(context.Context, kernel.UserID, kernel.PaginationOptions) (*kernel.Paginated[job.JobResponse], error) {
	return &kernel.Paginated[job.JobResponse]{Empty: true}, nil
}

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func (f *fakeJobRepo) CreateWithSkills(context.Context, *job.Job, []kernel.SkillID) error { return nil }
func (f *fakeJobRepo) UpdateWithSkills(context.Context, kernel.JobID, *job.Job, []kernel.SkillID) error {
	return nil
}
func (f *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j, nil
}
func (f *fakeJobRepo) Delete(context.Context, kernel.JobID) error { return nil }
func (f *fakeJobRepo) SetFilled(context.Context, kernel.JobID, bool) error { return nil }
func (f *fakeJobRepo) List(context.Context, job.ListJobsRequest) (*kernel.Paginated[job.JobResponse], error) {
	return nil, nil
}
func (f *fakeJobRepo) GetResponseByID(context.Context, kernel.JobID, *kernel.UserID) (*job.JobResponse, error) {
	return nil, job.ErrJobNotFound()
}

func newTestService() (*FavoriteService, *fakeFavoriteRepo) {
	favoriteRepo := newFakeFavoriteRepo()
	jobRepo := &fakeJobRepo{jobs: map[kernel.JobID]*job.Job{
		kernel.NewJobID(10): {ID: kernel.NewJobID(10)},
	}}
	return NewFavoriteService(favoriteRepo, jobRepo), favoriteRepo
}

func TestAddFavorite(t *testing.T) {
	svc, repo := newTestService()

	fav, err := svc.AddFavorite(context.Background(), kernel.NewUserID(1), kernel.NewJobID(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fav.ID == 0 {
		t.Error("favorite id not assigned")
	}
	if len(repo.favorites) != 1 {
		t.Error("favorite not persisted")
	}
}

func TestAddFavoriteTwice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddFavorite(ctx, kernel.NewUserID(1), kernel.NewJobID(10)); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	_, err := svc.AddFavorite(ctx, kernel.NewUserID(1), kernel.NewJobID(10))
	if !errx.IsCode(err, favorite.CodeAlreadyFavorited) {
		t.Fatalf("error = %v, want %s", err, favorite.CodeAlreadyFavorited)
	}
}

func TestAddFavoriteMissingJob(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddFavorite(context.Background(), kernel.NewUserID(1), kernel.NewJobID(999))
	if !errx.IsCode(err, job.CodeJobNotFound) {
		t.Fatalf("error = %v, want %s", err, job.CodeJobNotFound)
	}
}

func TestRemoveFavorite(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.AddFavorite(ctx, kernel.NewUserID(1), kernel.NewJobID(10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.RemoveFavorite(ctx, kernel.NewUserID(1), kernel.NewJobID(10)); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(repo.favorites) != 0 {
		t.Error("favorite should be removed")
	}

	// Removing again reports not found
	err := svc.RemoveFavorite(ctx, kernel.NewUserID(1), kernel.NewJobID(10))
	if !errx.IsCode(err, favorite.CodeFavoriteNotFound) {
		t.Fatalf("error = %v, want %s", err, favorite.CodeFavoriteNotFound)
	}
}
