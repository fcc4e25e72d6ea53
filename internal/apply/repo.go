package apply

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Patch represents a partial job update.
// nil pointer => "no change"
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Company     *string `json:"company,omitempty"`
	PostURL     *string `json:"postUrl,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
}

type Repo interface {
	Create(j Job) (Job, error)
	Get(id string) (Job, error)
	Update(id string, p Patch) (Job, error)
	Delete(id string) error
	List() ([]Job, error)

	AddContact(jobID string, c Contact) (Job, error)
	UpdateContact(jobID, contactID string, status ContactStatus) (Job, error)
	RemoveContact(jobID, contactID string) (Job, error)
}

type MemoryRepo struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{jobs: map[string]Job{}}
}

func newID() string {
	return uuid.NewString()
}

func applyPatch(j *Job, p Patch) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.PostURL != nil {
		j.PostURL = *p.PostURL
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Status != nil && p.Status.Valid() {
		j.Status = *p.Status
	}
}

func (r *MemoryRepo) Create(j Job) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	j.ID = newID()
	j.CreatedAt = now
	j.UpdatedAt = now
	normalizeJob(&j)

	r.jobs[j.ID] = j
	return j, nil
}

func (r *MemoryRepo) Get(id string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (r *MemoryRepo) Update(id string, p Patch) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	applyPatch(&j, p)
	j.UpdatedAt = time.Now()
	normalizeJob(&j)
	r.jobs[id] = j
	return j, nil
}

func (r *MemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *MemoryRepo) List() ([]Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedJobs(r.jobs), nil
}

// Oldest first, matching insertion order in the original tracker.
func sortedJobs(jobs map[string]Job) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool {
		if !out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].CreatedAt.Before(out[k].CreatedAt)
		}
		return out[i].ID < out[k].ID
	})
	return out
}

func (r *MemoryRepo) AddContact(jobID string, c Contact) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	c.ID = newID()
	j.Contacts = append(j.Contacts, c)
	j.UpdatedAt = time.Now()
	normalizeJob(&j)
	r.jobs[jobID] = j
	return j, nil
}

func (r *MemoryRepo) UpdateContact(jobID, contactID string, status ContactStatus) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[jobID]
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
	r.jobs[jobID] = j
	return j, nil
}

func (r *MemoryRepo) RemoveContact(jobID, contactID string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[jobID]
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
	r.jobs[jobID] = j
	return j, nil
}
