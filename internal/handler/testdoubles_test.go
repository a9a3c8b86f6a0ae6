package handler

// In-memory store doubles backing the handler tests. They implement the
// store interfaces from common.go with the same sentinel errors the MySQL
// repositories return.

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/jevliu/learning-platform/internal/repository"
	"github.com/jevliu/learning-platform/internal/utils"
)

type fakeUsers struct {
	seq      uint64
	byHandle map[string]repository.User
	failWith error // when set, Create and GetByHandle return this
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byHandle: map[string]repository.User{}}
}

func (f *fakeUsers) Create(_ context.Context, handle, password, role string, cost int) (uint64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	handle = strings.TrimSpace(handle)
	if _, ok := f.byHandle[handle]; ok {
		return 0, repository.ErrHandleExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	f.seq++
	f.byHandle[handle] = repository.User{
		ID:           f.seq,
		Handle:       handle,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	return f.seq, nil
}

func (f *fakeUsers) GetByHandle(_ context.Context, handle string) (repository.User, error) {
	if f.failWith != nil {
		return repository.User{}, f.failWith
	}
	u, ok := f.byHandle[strings.TrimSpace(handle)]
	if !ok {
		return repository.User{}, sql.ErrNoRows
	}
	return u, nil
}

type fakeClasses struct {
	seq       uint64
	items     map[uint64]*repository.Class
	materials *fakeMaterials // used to cascade deletes like the SQL layer
	failWith  error
}

func newFakeClasses(materials *fakeMaterials) *fakeClasses {
	return &fakeClasses{items: map[uint64]*repository.Class{}, materials: materials}
}

func (f *fakeClasses) Create(_ context.Context, cl *repository.Class) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	cl.ID = f.seq
	cl.CreatedAt = time.Now().UTC()
	cp := *cl
	f.items[cl.ID] = &cp
	return nil
}

func (f *fakeClasses) List(_ context.Context) ([]*repository.Class, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*repository.Class, 0, len(f.items))
	for _, cl := range f.items {
		out = append(out, cl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeClasses) Delete(_ context.Context, id uint64) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, ok := f.items[id]; !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.items, id)
	var paths []string
	if f.materials != nil {
		for mid, m := range f.materials.items {
			if m.ClassID == id {
				paths = append(paths, m.FilePath)
				delete(f.materials.items, mid)
			}
		}
	}
	return paths, nil
}

type fakeMaterials struct {
	seq      uint64
	items    map[uint64]*repository.Material
	failWith error
}

func newFakeMaterials() *fakeMaterials {
	return &fakeMaterials{items: map[uint64]*repository.Material{}}
}

func (f *fakeMaterials) Create(_ context.Context, m *repository.Material) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	m.ID = f.seq
	m.CreatedAt = time.Now().UTC()
	cp := *m
	f.items[m.ID] = &cp
	return nil
}

func (f *fakeMaterials) ListByClass(_ context.Context, classID uint64) ([]*repository.Material, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*repository.Material
	for _, m := range f.items {
		if m.ClassID == classID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeMaterials) Delete(_ context.Context, id uint64) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	m, ok := f.items[id]
	if !ok {
		return "", repository.ErrNotFound
	}
	delete(f.items, id)
	return m.FilePath, nil
}

type fakeVideos struct {
	seq   uint64
	items map[uint64]*repository.Video
}

func newFakeVideos() *fakeVideos {
	return &fakeVideos{items: map[uint64]*repository.Video{}}
}

func (f *fakeVideos) Create(_ context.Context, v *repository.Video) error {
	f.seq++
	v.ID = f.seq
	v.CreatedAt = time.Now().UTC()
	cp := *v
	f.items[v.ID] = &cp
	return nil
}

func (f *fakeVideos) ListByClass(_ context.Context, classID uint64) ([]*repository.Video, error) {
	var out []*repository.Video
	for _, v := range f.items {
		if v.ClassID == classID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeVideos) Delete(_ context.Context, id uint64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeNotes struct {
	seq   uint64
	items map[uint64]*repository.Note
}

func newFakeNotes() *fakeNotes {
	return &fakeNotes{items: map[uint64]*repository.Note{}}
}

func (f *fakeNotes) Create(_ context.Context, n *repository.Note) error {
	f.seq++
	n.ID = f.seq
	n.CreatedAt = time.Now().UTC()
	cp := *n
	f.items[n.ID] = &cp
	return nil
}

func (f *fakeNotes) ListByClass(_ context.Context, classID uint64) ([]*repository.Note, error) {
	var out []*repository.Note
	for _, n := range f.items {
		if n.ClassID == classID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeNotes) Delete(_ context.Context, id uint64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
