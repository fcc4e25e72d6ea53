// Package apply tracks job applications through a saved → applied →
// screen → interview → offer pipeline, with networking contacts attached
// to each application.
package apply

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound        = errors.New("apply: job not found")
	ErrContactNotFound = errors.New("apply: contact not found")
)

type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusScreen    Status = "screen"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
)

// Stages lists the pipeline in display order.
func Stages() []Status {
	return []Status{StatusSaved, StatusApplied, StatusScreen, StatusInterview, StatusOffer}
}

func (s Status) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusScreen, StatusInterview, StatusOffer:
		return true
	}
	return false
}

type ContactStatus string

const (
	ContactNone      ContactStatus = "none"
	ContactConnected ContactStatus = "connected"
	ContactMessaged  ContactStatus = "messaged"
	ContactResponded ContactStatus = "responded"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNone, ContactConnected, ContactMessaged, ContactResponded:
		return true
	}
	return false
}

type Contact struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	LinkedIn string        `json:"linkedin,omitempty"`
	Status   ContactStatus `json:"status"`
}

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	PostURL     string    `json:"postUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Contacts    []Contact `json:"contacts"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EnsureHTTPS prefixes bare hostnames so stored links always open as
// absolute URLs.
func EnsureHTTPS(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

func normalizeJob(j *Job) {
	if j.Contacts == nil {
		j.Contacts = []Contact{}
	}
	if !j.Status.Valid() {
		j.Status = StatusSaved
	}
	j.PostURL = EnsureHTTPS(j.PostURL)
	for i := range j.Contacts {
		if !j.Contacts[i].Status.Valid() {
			j.Contacts[i].Status = ContactNone
		}
		j.Contacts[i].LinkedIn = EnsureHTTPS(j.Contacts[i].LinkedIn)
	}
}
