package usecase

import (
	"context"
	"encoding/json"
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

// fakeAboutRepo mirrors the Postgres repository's demote-then-write
// behavior so the single-active invariant is observable through the
// usecase.
type fakeAboutRepo struct {
	items []portfolio.AboutProfile
	err   error
}

func (f *fakeAboutRepo) List(context.Context) ([]portfolio.AboutProfile, error) {
	return f.items, f.err
}

func (f *fakeAboutRepo) GetByID(_ context.Context, id uuid.UUID) (portfolio.AboutProfile, error) {
	if f.err != nil {
		return portfolio.AboutProfile{}, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return portfolio.AboutProfile{}, repository.ErrAboutProfileNotFound
}

func (f *fakeAboutRepo) FindActive(context.Context) (portfolio.AboutProfile, error) {
	if f.err != nil {
		return portfolio.AboutProfile{}, f.err
	}
	for _, p := range f.items {
		if p.IsActive {
			return p, nil
		}
	}
	return portfolio.AboutProfile{}, repository.ErrAboutProfileNotFound
}

func (f *fakeAboutRepo) Create(_ context.Context, p portfolio.AboutProfile) error {
	if f.err != nil {
		return f.err
	}
	if p.IsActive {
		f.demoteExcept(p.ID)
	}
	f.items = append(f.items, p)
	return nil
}

func (f *fakeAboutRepo) Update(_ context.Context, p portfolio.AboutProfile) error {
	if f.err != nil {
		return f.err
	}
	if p.IsActive {
		f.demoteExcept(p.ID)
	}
	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items[i] = p
			return nil
		}
	}
	return repository.ErrAboutProfileNotFound
}

func (f *fakeAboutRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrAboutProfileNotFound
}

func (f *fakeAboutRepo) demoteExcept(id uuid.UUID) {
	for i := range f.items {
		if f.items[i].ID != id {
			f.items[i].IsActive = false
		}
	}
}

type fakeContactRepo struct {
	items []portfolio.ContactMessage
	err   error
}

func (f *fakeContactRepo) List(context.Context) ([]portfolio.ContactMessage, error) {
	return f.items, f.err
}

func (f *fakeContactRepo) ListUnread(context.Context) ([]portfolio.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []portfolio.ContactMessage{}
	for _, m := range f.items {
		if !m.IsRead {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id uuid.UUID) (portfolio.ContactMessage, error) {
	if f.err != nil {
		return portfolio.ContactMessage{}, f.err
	}
	for _, m := range f.items {
		if m.ID == id {
			return m, nil
		}
	}
	return portfolio.ContactMessage{}, repository.ErrContactMessageNotFound
}

func (f *fakeContactRepo) Create(_ context.Context, m portfolio.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, m)
	return nil
}

func (f *fakeContactRepo) Update(_ context.Context, m portfolio.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == m.ID {
			f.items[i] = m
			return nil
		}
	}
	return repository.ErrContactMessageNotFound
}

func (f *fakeContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrContactMessageNotFound
}

// fakeProjectRepo records the last filter so list tests can assert the
// resolved ordering.
type fakeProjectRepo struct {
	items      []portfolio.Project
	lastFilter repository.ProjectListFilter
	err        error

	featuredCalls int
}

func (f *fakeProjectRepo) List(_ context.Context, filter repository.ProjectListFilter) ([]portfolio.Project, error) {
	f.lastFilter = filter
	return f.items, f.err
}

func (f *fakeProjectRepo) ListFeatured(context.Context) ([]portfolio.Project, error) {
	f.featuredCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := []portfolio.Project{}
	for _, p := range f.items {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (portfolio.Project, error) {
	if f.err != nil {
		return portfolio.Project{}, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return portfolio.Project{}, repository.ErrProjectNotFound
}

func (f *fakeProjectRepo) Create(_ context.Context, p portfolio.Project) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, p)
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p portfolio.Project) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items[i] = p
			return nil
		}
	}
	return repository.ErrProjectNotFound
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrProjectNotFound
}

type fakeCategoryRepo struct {
	items []portfolio.SkillCategory
	err   error

	deleted []uuid.UUID
}

func (f *fakeCategoryRepo) List(context.Context) ([]portfolio.SkillCategory, error) {
	return f.items, f.err
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (portfolio.SkillCategory, error) {
	if f.err != nil {
		return portfolio.SkillCategory{}, f.err
	}
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return portfolio.SkillCategory{}, repository.ErrSkillCategoryNotFound
}

func (f *fakeCategoryRepo) Create(_ context.Context, c portfolio.SkillCategory) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, c)
	return nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c portfolio.SkillCategory) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = c
			return nil
		}
	}
	return repository.ErrSkillCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return repository.ErrSkillCategoryNotFound
}

type fakeSkillRepo struct {
	items      []portfolio.Skill
	lastFilter repository.SkillListFilter
	err        error
}

func (f *fakeSkillRepo) List(_ context.Context, filter repository.SkillListFilter) ([]portfolio.Skill, error) {
	f.lastFilter = filter
	return f.items, f.err
}

func (f *fakeSkillRepo) ListFeatured(context.Context) ([]portfolio.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []portfolio.Skill{}
	for _, s := range f.items {
		if s.IsFeatured {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSkillRepo) GetByID(_ context.Context, id uuid.UUID) (portfolio.Skill, error) {
	if f.err != nil {
		return portfolio.Skill{}, f.err
	}
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return portfolio.Skill{}, repository.ErrSkillNotFound
}

func (f *fakeSkillRepo) Create(_ context.Context, s portfolio.Skill) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, s)
	return nil
}

func (f *fakeSkillRepo) Update(_ context.Context, s portfolio.Skill) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == s.ID {
			f.items[i] = s
			return nil
		}
	}
	return repository.ErrSkillNotFound
}

func (f *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrSkillNotFound
}

// fakeCache is an in-memory Cache that counts hits and stores JSON the
// same way the Redis adapter does.
type fakeCache struct {
	data    map[string][]byte
	gets    int
	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.gets++
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	f.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.deletes++
	delete(f.data, key)
	return nil
}
