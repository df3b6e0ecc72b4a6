package favoritesrv

import (
	"context"
	"time"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/favorite"
	"github.com/openhire/jobportal/portal/job"
)

// FavoriteService provides business operations for saved jobs
type FavoriteService struct {
	favoriteRepo favorite.Repository
	jobRepo      job.Repository
}

// NewFavoriteService creates a new instance of the favorite service
func NewFavoriteService(favoriteRepo favorite.Repository, jobRepo job.Repository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		jobRepo:      jobRepo,
	}
}

// ListFavorites retrieves the user's saved jobs as full postings
func (s *FavoriteService) ListFavorites(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.JobResponse], error) {
	favorites, err := s.favoriteRepo.ListJobsByUser(ctx, userID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list favorites", errx.TypeInternal)
	}
	return favorites, nil
}

// AddFavorite saves a job for the user. A job can be saved at most once.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*favorite.Favorite, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	exists, err := s.favoriteRepo.ExistsByUserAndJob(ctx, userID, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check existing favorite", errx.TypeInternal)
	}
	if exists {
		return nil, favorite.ErrAlreadyFavorited().
			WithDetail("user_id", userID.String()).
			WithDetail("job_id", jobID.String())
	}

	fav := &favorite.Favorite{
		UserID:    userID,
		JobID:     jobID,
		CreatedAt: time.Now(),
	}

	// The unique (user, job) index backstops the existence check under
	// concurrent submissions
	if err := s.favoriteRepo.Add(ctx, fav); err != nil {
		return nil, err
	}

	return fav, nil
}

// RemoveFavorite removes a job from the user's saved list
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) error {
	return s.favoriteRepo.RemoveByUserAndJob(ctx, userID, jobID)
}
