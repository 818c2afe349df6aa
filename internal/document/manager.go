// Package document owns the in-memory resume document and notifies observers of
// every change made through it.
package document

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/serializer"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section names accepted by RemoveEntry.
const (
	SectionWorkExperience = "workExperience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
)

// ChangeFunc receives a copy of the document after each mutation.
type ChangeFunc func(doc types.Document)

type listener struct {
	id int
	fn ChangeFunc
}

// Manager holds one Document. All mutations go through its methods; each
// successful mutation notifies every registered listener exactly once.
type Manager struct {
	mu        sync.Mutex
	doc       *types.Document
	listeners []listener
	nextID    int
	store     storage.FileStore
}

// NewManager creates a manager holding an empty document. A nil store falls
// back to the local filesystem.
func NewManager(store storage.FileStore) *Manager {
	if store == nil {
		store = storage.NewLocal("")
	}
	return &Manager{doc: types.NewDocument(), store: store}
}

// GetData returns a deep copy of the current document.
func (m *Manager) GetData() types.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.doc.Clone()
}

// OnChange registers fn and returns a function that removes it again. Calling
// the returned function more than once has no further effect.
func (m *Manager) OnChange(fn ChangeFunc) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listener{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, l := range m.listeners {
			if l.id == id {
				m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// mutate applies fn under the lock and, when fn reports a change, notifies
// listeners after the lock is released.
func (m *Manager) mutate(fn func(doc *types.Document) bool) bool {
	m.mu.Lock()
	if !fn(m.doc) {
		m.mu.Unlock()
		return false
	}
	snapshot := m.doc.Clone()
	listeners := make([]ChangeFunc, len(m.listeners))
	for i, l := range m.listeners {
		listeners[i] = l.fn
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(*snapshot.Clone())
	}
	return true
}

// SetPersonalInfo replaces the personal information wholesale.
func (m *Manager) SetPersonalInfo(info types.PersonalInfo) {
	m.mutate(func(doc *types.Document) bool {
		doc.PersonalInfo = info
		return true
	})
}

// UpdatePersonalInfo applies the non-nil fields of patch.
func (m *Manager) UpdatePersonalInfo(patch PersonalInfoPatch) {
	m.mutate(func(doc *types.Document) bool {
		patch.apply(&doc.PersonalInfo)
		return true
	})
}

// SetSummary replaces the summary. An empty string removes it.
func (m *Manager) SetSummary(summary string) {
	m.mutate(func(doc *types.Document) bool {
		doc.Summary = summary
		return true
	})
}

// SetCertifications replaces the certification list.
func (m *Manager) SetCertifications(certs []string) {
	m.mutate(func(doc *types.Document) bool {
		if len(certs) == 0 {
			doc.Certifications = nil
		} else {
			doc.Certifications = append([]string(nil), certs...)
		}
		return true
	})
}

// AddWorkExperience appends exp and returns its id, generating one when exp.ID
// is blank.
func (m *Manager) AddWorkExperience(exp types.WorkExperience) string {
	if strings.TrimSpace(exp.ID) == "" {
		exp.ID = uuid.New().String()
	}
	exp.Description = append([]string{}, exp.Description...)

	m.mutate(func(doc *types.Document) bool {
		doc.WorkExperience = append(doc.WorkExperience, exp)
		return true
	})
	return exp.ID
}

// AddEducation appends edu and returns its id, generating one when edu.ID is
// blank.
func (m *Manager) AddEducation(edu types.Education) string {
	if strings.TrimSpace(edu.ID) == "" {
		edu.ID = uuid.New().String()
	}

	m.mutate(func(doc *types.Document) bool {
		doc.Education = append(doc.Education, edu)
		return true
	})
	return edu.ID
}

// AddSkill appends skill.
func (m *Manager) AddSkill(skill types.Skill) {
	m.mutate(func(doc *types.Document) bool {
		doc.Skills = append(doc.Skills, skill)
		return true
	})
}

// RemoveEntry removes the entry with the given id from section. Skills are
// addressed by name. It returns false, without notifying, when nothing matched.
func (m *Manager) RemoveEntry(section, id string) bool {
	return m.mutate(func(doc *types.Document) bool {
		switch section {
		case SectionWorkExperience:
			for i := range doc.WorkExperience {
				if doc.WorkExperience[i].ID == id {
					doc.WorkExperience = append(doc.WorkExperience[:i:i], doc.WorkExperience[i+1:]...)
					return true
				}
			}
		case SectionEducation:
			for i := range doc.Education {
				if doc.Education[i].ID == id {
					doc.Education = append(doc.Education[:i:i], doc.Education[i+1:]...)
					return true
				}
			}
		case SectionSkills:
			for i := range doc.Skills {
				if doc.Skills[i].Name == id {
					doc.Skills = append(doc.Skills[:i:i], doc.Skills[i+1:]...)
					return true
				}
			}
		}
		return false
	})
}

// UpdateWorkExperience applies patch to the work entry with id.
func (m *Manager) UpdateWorkExperience(id string, patch WorkExperiencePatch) bool {
	return m.mutate(func(doc *types.Document) bool {
		for i := range doc.WorkExperience {
			if doc.WorkExperience[i].ID == id {
				patch.apply(&doc.WorkExperience[i])
				return true
			}
		}
		return false
	})
}

// UpdateEducation applies patch to the education entry with id.
func (m *Manager) UpdateEducation(id string, patch EducationPatch) bool {
	return m.mutate(func(doc *types.Document) bool {
		for i := range doc.Education {
			if doc.Education[i].ID == id {
				patch.apply(&doc.Education[i])
				return true
			}
		}
		return false
	})
}

// Load reads and deserializes the document at path, replacing the current one.
// A missing file yields a *storage.FileError with NotFound() true; malformed
// content yields a *serializer.SerializationError. The current document is left
// untouched on error.
func (m *Manager) Load(ctx context.Context, path string) error {
	data, err := m.store.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	doc, err := serializer.Deserialize(string(data))
	if err != nil {
		return err
	}

	m.mutate(func(current *types.Document) bool {
		*current = *doc
		return true
	})
	return nil
}

// Save serializes the current document and writes it to path.
func (m *Manager) Save(ctx context.Context, path string) error {
	doc := m.GetData()
	text, err := serializer.Serialize(&doc)
	if err != nil {
		return err
	}
	return m.store.WriteFile(ctx, path, []byte(text))
}
