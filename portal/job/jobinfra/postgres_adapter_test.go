package jobinfra

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/job"
)

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// maxPlaceholder returns the highest $N referenced by a query
func maxPlaceholder(query string) int {
	max := 0
	for _, m := range placeholderPattern.FindAllStringSubmatch(query, -1) {
		n, _ := strconv.Atoi(m[1])
		if n > max {
			max = n
		}
	}
	return max
}

func TestBuildListQueriesBindCounts(t *testing.T) {
	sectorID := kernel.NewSectorID(3)
	companyID := kernel.NewCompanyID(5)
	viewerID := kernel.NewUserID(7)
	filled := true

	cases := []struct {
		name string
		req  job.ListJobsRequest
	}{
		{
			name: "no filters",
			req: job.ListJobsRequest{
				Pagination: kernel.PaginationOptions{Page: 1, PageSize: 20},
			},
		},
		{
			name: "viewer only",
			req: job.ListJobsRequest{
				ViewerID:   &viewerID,
				Pagination: kernel.PaginationOptions{Page: 1, PageSize: 20},
			},
		},
		{
			name: "search and sector",
			req: job.ListJobsRequest{
				Search:     "engineer",
				SectorID:   &sectorID,
				Pagination: kernel.PaginationOptions{Page: 2, PageSize: 10},
			},
		},
		{
			name: "all filters",
			req: job.ListJobsRequest{
				Search:     "engineer",
				SectorID:   &sectorID,
				CompanyID:  &companyID,
				IsFilled:   &filled,
				ViewerID:   &viewerID,
				Pagination: kernel.PaginationOptions{Page: 1, PageSize: 20},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			countQuery, countArgs, pageQuery, pageArgs := buildListQueries(tc.req)

			if got := maxPlaceholder(countQuery); got != len(countArgs) {
				t.Errorf("count query references $%d but binds %d args", got, len(countArgs))
			}
			if got := maxPlaceholder(pageQuery); got != len(pageArgs) {
				t.Errorf("page query references $%d but binds %d args", got, len(pageArgs))
			}
		})
	}
}

func TestBuildListQueriesUnfilteredCountBindsNothing(t *testing.T) {
	viewerID := kernel.NewUserID(7)
	_, countArgs, _, pageArgs := buildListQueries(job.ListJobsRequest{
		ViewerID:   &viewerID,
		Pagination: kernel.PaginationOptions{Page: 1, PageSize: 20},
	})

	if len(countArgs) != 0 {
		t.Errorf("count args = %d, want 0; the viewer id belongs to the page query only", len(countArgs))
	}
	// viewer id, limit, offset
	if len(pageArgs) != 3 {
		t.Errorf("page args = %d, want 3", len(pageArgs))
	}
	if pageArgs[0] != viewerID.Int64() {
		t.Errorf("viewer arg = %v, want %d", pageArgs[0], viewerID.Int64())
	}
}
