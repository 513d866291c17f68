package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"mediarepo/internal/domain"
)

// Файловые фейки для сервисных тестов: то же поведение, что у Postgres-слоя,
// но в памяти и с ручками для инъекции ошибок.

type fakeLinkStore struct {
	mu          sync.Mutex
	seq         int64
	links       map[string]*domain.ShareLink
	failCreates int // столько первых Create вернут ErrDuplicateToken
	createCalls int
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{links: make(map[string]*domain.ShareLink)}
}

func (f *fakeLinkStore) Create(_ context.Context, link *domain.ShareLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if f.failCreates > 0 {
		f.failCreates--
		return domain.ErrDuplicateToken
	}
	if _, ok := f.links[link.Token]; ok {
		return domain.ErrDuplicateToken
	}

	f.seq++
	link.ID = f.seq
	link.IsActive = true
	link.CreatedAt = time.Now()

	cp := *link
	f.links[link.Token] = &cp
	return nil
}

func (f *fakeLinkStore) GetByToken(_ context.Context, token string) (*domain.ShareLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	link, ok := f.links[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *link
	return &cp, nil
}

func (f *fakeLinkStore) GetByID(_ context.Context, id int64) (*domain.ShareLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, link := range f.links {
		if link.ID == id {
			cp := *link
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLinkStore) SetActive(_ context.Context, id int64, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, link := range f.links {
		if link.ID == id {
			link.IsActive = active
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeLinkStore) IncrementViewCount(_ context.Context, token string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	link, ok := f.links[token]
	if !ok {
		return 0, domain.ErrNotFound
	}
	link.ViewCount++
	return link.ViewCount, nil
}

func (f *fakeLinkStore) ListAll(_ context.Context) ([]domain.AdminShareLinkItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]domain.AdminShareLinkItem, 0, len(f.links))
	for _, link := range f.links {
		items = append(items, domain.AdminShareLinkItem{ShareLink: *link})
	}
	return items, nil
}

type fakeAccessLogStore struct {
	mu      sync.Mutex
	seq     int64
	entries []domain.LinkAccessLog
	failing bool
}

func (f *fakeAccessLogStore) Append(_ context.Context, entry *domain.LinkAccessLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failing {
		return errors.New("log storage unavailable")
	}

	f.seq++
	entry.ID = f.seq
	entry.AccessedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAccessLogStore) GetByShareLink(_ context.Context, shareLinkID int64) ([]domain.LinkAccessLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.LinkAccessLog
	for _, e := range f.entries {
		if e.ShareLinkID == shareLinkID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeAccessLogStore) count(shareLinkID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, e := range f.entries {
		if e.ShareLinkID == shareLinkID {
			n++
		}
	}
	return n
}

type fakeRepoStore struct {
	repos map[int64]*domain.Repository
}

func (f *fakeRepoStore) GetByID(_ context.Context, id int64) (*domain.Repository, error) {
	repo, ok := f.repos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *repo
	return &cp, nil
}

type fakeFileStore struct {
	files map[int64][]domain.File
}

func (f *fakeFileStore) GetByRepository(_ context.Context, repositoryID int64) ([]domain.File, error) {
	return f.files[repositoryID], nil
}

type fakeDownloadStore struct {
	mu      sync.Mutex
	entries []domain.DownloadLog
	stats   []domain.RepositoryDownloadStats
}

func (f *fakeDownloadStore) Append(_ context.Context, entry *domain.DownloadLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeDownloadStore) StatsByRepository(_ context.Context) ([]domain.RepositoryDownloadStats, error) {
	return f.stats, nil
}

type fakeAdminRepoStore struct {
	items []domain.AdminRepositoryItem
}

func (f *fakeAdminRepoStore) ListAll(_ context.Context) ([]domain.AdminRepositoryItem, error) {
	out := make([]domain.AdminRepositoryItem, len(f.items))
	copy(out, f.items)
	return out, nil
}
