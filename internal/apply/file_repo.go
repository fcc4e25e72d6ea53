package apply

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type fileState struct {
	Jobs map[string]Job `json:"jobs"`
}

// FileRepo persists the application pipeline to jobs.json. Like the rest
// of the data dir, the file is rewritten wholesale after every mutation.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "jobs.json"),
		s:    fileState{Jobs: map[string]Job{}},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		// Treat a corrupt file like an absent one.
		r.s = fileState{Jobs: map[string]Job{}}
		return nil
	}
	if loaded.Jobs == nil {
		loaded.Jobs = map[string]Job{}
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Create(j Job) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	j.ID = newID()
	j.CreatedAt = now
	j.UpdatedAt = now
	normalizeJob(&j)

	r.s.Jobs[j.ID] = j
	if err := r.saveLocked(); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (r *FileRepo) Get(id string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.s.Jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (r *FileRepo) Update(id string, p Patch) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.s.Jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	applyPatch(&j, p)
	j.UpdatedAt = time.Now()
	normalizeJob(&j)
	r.s.Jobs[id] = j
	if err := r.saveLocked(); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (r *FileRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.s.Jobs[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.Jobs, id)
	return r.saveLocked()
}

func (r *FileRepo) List() ([]Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedJobs(r.s.Jobs), nil
}

func (r *FileRepo) AddContact(jobID string, c Contact) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.s.Jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	c.ID = newID()
	j.Contacts = append(j.Contacts, c)
	j.UpdatedAt = time.Now()
	normalizeJob(&j)
	r.s.Jobs[jobID] = j
	if err := r.saveLocked(); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (r *FileRepo) UpdateContact(jobID, contactID string, status ContactStatus) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.s.Jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	found := false
	for i := range j.Contacts {
		if j.Contacts[i].ID == contactID {
			j.Contacts[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return Job{}, ErrContactNotFound
	}
	j.UpdatedAt = time.Now()
	r.s.Jobs[jobID] = j
	if err := r.saveLocked(); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (r *FileRepo) RemoveContact(jobID, contactID string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.s.Jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	out := make([]Contact, 0, len(j.Contacts))
	found := false
	for _, c := range j.Contacts {
		if c.ID == contactID {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		return Job{}, ErrContactNotFound
	}
	j.Contacts = out
	j.UpdatedAt = time.Now()
	r.s.Jobs[jobID] = j
	if err := r.saveLocked(); err != nil {
		return Job{}, err
	}
	return j, nil
}
