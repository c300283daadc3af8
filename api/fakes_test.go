package api

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// In-memory stores backing the handler tests.

type fakeProjectStore struct {
	projects map[uuid.UUID]*models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]*models.Project)}
}

func (s *fakeProjectStore) FindAll(_ context.Context, featuredOnly bool) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range s.projects {
		if featuredOnly && !p.Featured {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeProjectStore) FindByKey(_ context.Context, key uuid.UUID) (*models.Project, error) {
	p, ok := s.projects[key]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProjectStore) FindBySlug(_ context.Context, slug string) (*models.Project, error) {
	for _, p := range s.projects {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeProjectStore) Add(_ context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	copied := *project
	s.projects[project.ID] = &copied
	return nil
}

func (s *fakeProjectStore) Update(_ context.Context, project *models.Project) error {
	copied := *project
	s.projects[project.ID] = &copied
	return nil
}

func (s *fakeProjectStore) Delete(_ context.Context, key uuid.UUID) (int64, error) {
	if _, ok := s.projects[key]; !ok {
		return 0, nil
	}
	delete(s.projects, key)
	return 1, nil
}

func (s *fakeProjectStore) CountByCategory(_ context.Context, category string) (int64, error) {
	var count int64
	for _, p := range s.projects {
		if p.Category == category {
			count++
		}
	}
	return count, nil
}

type fakeBlogPostStore struct {
	posts map[uuid.UUID]*models.BlogPost
}

func newFakeBlogPostStore() *fakeBlogPostStore {
	return &fakeBlogPostStore{posts: make(map[uuid.UUID]*models.BlogPost)}
}

func (s *fakeBlogPostStore) FindAll(_ context.Context, publishedOnly bool) ([]*models.BlogPost, error) {
	var out []*models.BlogPost
	for _, p := range s.posts {
		if publishedOnly && !p.Published {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeBlogPostStore) FindByKey(_ context.Context, key uuid.UUID) (*models.BlogPost, error) {
	p, ok := s.posts[key]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (s *fakeBlogPostStore) FindBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeBlogPostStore) Add(_ context.Context, post *models.BlogPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *fakeBlogPostStore) Update(_ context.Context, post *models.BlogPost) error {
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *fakeBlogPostStore) Delete(_ context.Context, key uuid.UUID) (int64, error) {
	if _, ok := s.posts[key]; !ok {
		return 0, nil
	}
	delete(s.posts, key)
	return 1, nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (s *fakeCategoryStore) FindAll(_ context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range s.categories {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeCategoryStore) FindByKey(_ context.Context, key uuid.UUID) (*models.Category, error) {
	c, ok := s.categories[key]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCategoryStore) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, c := range s.categories {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeCategoryStore) Add(_ context.Context, category *models.Category) error {
	for _, c := range s.categories {
		if c.Slug == category.Slug || c.Name == category.Name {
			return errs.ErrAlreadyExists
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

func (s *fakeCategoryStore) Delete(_ context.Context, key uuid.UUID) (int64, error) {
	if _, ok := s.categories[key]; !ok {
		return 0, nil
	}
	delete(s.categories, key)
	return 1, nil
}

type fakeResumeStore struct {
	resumes []*models.Resume
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{}
}

func (s *fakeResumeStore) Latest(_ context.Context) (*models.Resume, error) {
	if len(s.resumes) == 0 {
		return nil, nil
	}
	latest := s.resumes[0]
	for _, r := range s.resumes[1:] {
		if r.UploadedAt.After(latest.UploadedAt) {
			latest = r
		}
	}
	copied := *latest
	return &copied, nil
}

func (s *fakeResumeStore) Replace(_ context.Context, resume *models.Resume) error {
	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}
	copied := *resume
	s.resumes = []*models.Resume{&copied}
	return nil
}

func (s *fakeResumeStore) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(s.resumes))
	s.resumes = nil
	return n, nil
}
