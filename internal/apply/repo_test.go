package apply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_CreateAssignsIDAndDefaults(t *testing.T) {
	r := NewMemoryRepo()

	j, err := r.Create(Job{Title: "Software Engineer", Company: "Initech"})
	require.NoError(t, err)
	assert.NotEmpty(t, j.ID)
	assert.Equal(t, StatusSaved, j.Status)
	assert.NotNil(t, j.Contacts)
	assert.False(t, j.CreatedAt.IsZero())
}

func TestMemoryRepo_UpdateStatus(t *testing.T) {
	r := NewMemoryRepo()
	j, err := r.Create(Job{Title: "SRE", Company: "Globex"})
	require.NoError(t, err)

	applied := StatusApplied
	j, err = r.Update(j.ID, Patch{Status: &applied})
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, j.Status)

	_, err = r.Update("nope", Patch{Status: &applied})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_ContactLifecycle(t *testing.T) {
	r := NewMemoryRepo()
	j, err := r.Create(Job{Title: "Backend Engineer", Company: "Hooli"})
	require.NoError(t, err)

	j, err = r.AddContact(j.ID, Contact{Name: "Sam", LinkedIn: "linkedin.com/in/sam"})
	require.NoError(t, err)
	require.Len(t, j.Contacts, 1)
	c := j.Contacts[0]
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, ContactNone, c.Status)
	assert.Equal(t, "https://linkedin.com/in/sam", c.LinkedIn)

	j, err = r.UpdateContact(j.ID, c.ID, ContactMessaged)
	require.NoError(t, err)
	assert.Equal(t, ContactMessaged, j.Contacts[0].Status)

	j, err = r.RemoveContact(j.ID, c.ID)
	require.NoError(t, err)
	assert.Empty(t, j.Contacts)

	_, err = r.UpdateContact(j.ID, c.ID, ContactConnected)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestMemoryRepo_ListOldestFirst(t *testing.T) {
	r := NewMemoryRepo()
	first, err := r.Create(Job{Title: "A", Company: "A Co"})
	require.NoError(t, err)
	second, err := r.Create(Job{Title: "B", Company: "B Co"})
	require.NoError(t, err)

	jobs, err := r.List()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, first.ID, jobs[0].ID)
	assert.Equal(t, second.ID, jobs[1].ID)
}

func TestFileRepo_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	r, err := NewFileRepo(dir)
	require.NoError(t, err)
	j, err := r.Create(Job{Title: "Platform Engineer", Company: "Initrode", PostURL: "jobs.example.com/123"})
	require.NoError(t, err)
	_, err = r.AddContact(j.ID, Contact{Name: "Alex"})
	require.NoError(t, err)

	r2, err := NewFileRepo(dir)
	require.NoError(t, err)
	got, err := r2.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", got.Title)
	assert.Equal(t, "https://jobs.example.com/123", got.PostURL)
	assert.Len(t, got.Contacts, 1)
}

func TestEnsureHTTPS(t *testing.T) {
	assert.Equal(t, "", EnsureHTTPS(""))
	assert.Equal(t, "https://example.com", EnsureHTTPS("example.com"))
	assert.Equal(t, "http://example.com", EnsureHTTPS("http://example.com"))
	assert.Equal(t, "https://example.com", EnsureHTTPS("https://example.com"))
}
