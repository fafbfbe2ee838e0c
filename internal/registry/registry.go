// Package registry holds the closed catalog of resume resources. The table
// is built once at startup and injected wherever definitions are needed;
// there is no ambient global state.
package registry

import (
	"fmt"
	"time"

	"go-resume-backend/internal/domain"
)

// Registry resolves resource names to their definitions.
type Registry struct {
	definitions map[domain.ResourceName]domain.Definition
	order       []domain.ResourceName
}

// Definition returns the metadata for a resource name, or
// UnknownResourceError when the name is outside the catalog.
func (r *Registry) Definition(resource domain.ResourceName) (domain.Definition, error) {
	def, ok := r.definitions[resource]
	if !ok {
		return domain.Definition{}, &domain.UnknownResourceError{Resource: string(resource)}
	}
	return def, nil
}

// Resources lists the catalog in registration order.
func (r *Registry) Resources() []domain.ResourceName {
	out := make([]domain.ResourceName, len(r.order))
	copy(out, r.order)
	return out
}

// New builds the fixed catalog. Field order matters: payload application
// walks the declared fields in this order.
func New() *Registry {
	r := &Registry{definitions: make(map[domain.ResourceName]domain.Definition)}

	r.add(domain.Definition{
		Resource: domain.ResourceSkills,
		Label:    "Skill",
		Fields: []domain.FieldSpec{
			{Name: "name", Kind: domain.FieldString},
			{Name: "type", Kind: domain.FieldString},
			{Name: "level", Kind: domain.FieldInt},
		},
		ScopedByUser: true,
		New:          func() domain.Entity { return &domain.Skill{} },
		Clone: func(e domain.Entity) domain.Entity {
			c := *e.(*domain.Skill)
			return &c
		},
		Apply: applySkill,
	})

	r.add(domain.Definition{
		Resource: domain.ResourceLanguages,
		Label:    "Language",
		Fields: []domain.FieldSpec{
			{Name: "name", Kind: domain.FieldString},
			{Name: "level", Kind: domain.FieldInt},
			{Name: "flag", Kind: domain.FieldString},
		},
		ScopedByUser: true,
		New:          func() domain.Entity { return &domain.Language{} },
		Clone: func(e domain.Entity) domain.Entity {
			c := *e.(*domain.Language)
			return &c
		},
		Apply: applyLanguage,
	})

	r.add(domain.Definition{
		Resource: domain.ResourceHobbies,
		Label:    "Hobby",
		Fields: []domain.FieldSpec{
			{Name: "name", Kind: domain.FieldString},
			{Name: "icon", Kind: domain.FieldString},
		},
		ScopedByUser: true,
		New:          func() domain.Entity { return &domain.Hobby{} },
		Clone: func(e domain.Entity) domain.Entity {
			c := *e.(*domain.Hobby)
			return &c
		},
		Apply: applyHobby,
	})

	r.add(domain.Definition{
		Resource: domain.ResourceExperiences,
		Label:    "Experience",
		Fields: []domain.FieldSpec{
			{Name: "title", Kind: domain.FieldString},
			{Name: "description", Kind: domain.FieldString},
			{Name: "company", Kind: domain.FieldString},
			{Name: "startedAt", Kind: domain.FieldDate},
			{Name: "endedAt", Kind: domain.FieldDate, Nullable: true},
		},
		ScopedByUser: true,
		New:          func() domain.Entity { return &domain.Experience{} },
		Clone: func(e domain.Entity) domain.Entity {
			c := *e.(*domain.Experience)
			return &c
		},
		Apply: applyExperience,
	})

	r.add(domain.Definition{
		Resource: domain.ResourceEducations,
		Label:    "Education",
		Fields: []domain.FieldSpec{
			{Name: "name", Kind: domain.FieldString},
			{Name: "school", Kind: domain.FieldString},
			{Name: "gradeLevel", Kind: domain.FieldInt},
			{Name: "description", Kind: domain.FieldString},
			{Name: "startedAt", Kind: domain.FieldDate},
			{Name: "endedAt", Kind: domain.FieldDate, Nullable: true},
		},
		ScopedByUser: true,
		New:          func() domain.Entity { return &domain.Education{} },
		Clone: func(e domain.Entity) domain.Entity {
			c := *e.(*domain.Education)
			return &c
		},
		Apply: applyEducation,
	})

	r.add(domain.Definition{
		Resource: domain.ResourceReferences,
		Label:    "Reference",
		Fields: []domain.FieldSpec{
			{Name: "title", Kind: domain.FieldString},
			{Name: "company", Kind: domain.FieldString},
			{Name: "description", Kind: domain.FieldString},
			{Name: "startedAt", Kind: domain.FieldDate},
			{Name: "endedAt", Kind: domain.FieldDate, Nullable: true},
			{Name: "medias", Kind: domain.FieldMediaCollection},
		},
		ScopedByUser: true,
		New:          func() domain.Entity { return &domain.Reference{} },
		Clone: func(e domain.Entity) domain.Entity {
			c := *e.(*domain.Reference)
			c.MediaItems = append([]domain.Media(nil), c.MediaItems...)
			return &c
		},
		Apply: applyReference,
	})

	r.add(domain.Definition{
		Resource: domain.ResourceProjects,
		Label:    "Project",
		Fields: []domain.FieldSpec{
			{Name: "name", Kind: domain.FieldString},
			{Name: "description", Kind: domain.FieldString},
			{Name: "gitLink", Kind: domain.FieldString, Nullable: true},
		},
		ScopedByUser: false,
		New:          func() domain.Entity { return &domain.Project{} },
		Clone: func(e domain.Entity) domain.Entity {
			c := *e.(*domain.Project)
			if c.GitLink != nil {
				link := *c.GitLink
				c.GitLink = &link
			}
			return &c
		},
		Apply: applyProject,
	})

	return r
}

func (r *Registry) add(def domain.Definition) {
	r.definitions[def.Resource] = def
	r.order = append(r.order, def.Resource)
}

func applySkill(e domain.Entity, field string, value any) error {
	s := e.(*domain.Skill)
	switch field {
	case "name":
		s.Name = value.(string)
	case "type":
		s.Type = value.(string)
	case "level":
		s.Level = value.(int)
	default:
		return unknownField(domain.ResourceSkills, field)
	}
	return nil
}

func applyLanguage(e domain.Entity, field string, value any) error {
	l := e.(*domain.Language)
	switch field {
	case "name":
		l.Name = value.(string)
	case "level":
		l.Level = value.(int)
	case "flag":
		l.Flag = value.(string)
	default:
		return unknownField(domain.ResourceLanguages, field)
	}
	return nil
}

func applyHobby(e domain.Entity, field string, value any) error {
	h := e.(*domain.Hobby)
	switch field {
	case "name":
		h.Name = value.(string)
	case "icon":
		h.Icon = value.(string)
	default:
		return unknownField(domain.ResourceHobbies, field)
	}
	return nil
}

func applyExperience(e domain.Entity, field string, value any) error {
	x := e.(*domain.Experience)
	switch field {
	case "title":
		x.Title = value.(string)
	case "description":
		x.Description = value.(string)
	case "company":
		x.Company = value.(string)
	case "startedAt":
		x.StartedAt = *value.(*time.Time)
	case "endedAt":
		x.EndedAt = value.(*time.Time)
	default:
		return unknownField(domain.ResourceExperiences, field)
	}
	return nil
}

func applyEducation(e domain.Entity, field string, value any) error {
	ed := e.(*domain.Education)
	switch field {
	case "name":
		ed.Name = value.(string)
	case "school":
		ed.School = value.(string)
	case "gradeLevel":
		ed.GradeLevel = value.(int)
	case "description":
		ed.Description = value.(string)
	case "startedAt":
		ed.StartedAt = *value.(*time.Time)
	case "endedAt":
		ed.EndedAt = value.(*time.Time)
	default:
		return unknownField(domain.ResourceEducations, field)
	}
	return nil
}

func applyReference(e domain.Entity, field string, value any) error {
	ref := e.(*domain.Reference)
	switch field {
	case "title":
		ref.Title = value.(string)
	case "company":
		ref.Company = value.(string)
	case "description":
		ref.Description = value.(string)
	case "startedAt":
		ref.StartedAt = *value.(*time.Time)
	case "endedAt":
		ref.EndedAt = value.(*time.Time)
	case "medias":
		ref.ReplaceMedias(value.([]domain.Media))
	default:
		return unknownField(domain.ResourceReferences, field)
	}
	return nil
}

func applyProject(e domain.Entity, field string, value any) error {
	p := e.(*domain.Project)
	switch field {
	case "name":
		p.Name = value.(string)
	case "description":
		p.Description = value.(string)
	case "gitLink":
		if value == nil {
			p.GitLink = nil
			return nil
		}
		link := value.(string)
		p.GitLink = &link
	default:
		return unknownField(domain.ResourceProjects, field)
	}
	return nil
}

func unknownField(res domain.ResourceName, field string) error {
	return fmt.Errorf("field %q is not declared for resource %s", field, res)
}
