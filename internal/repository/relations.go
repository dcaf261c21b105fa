package repository

import "github.com/dangerclosesec/resadmin/internal/model"

// Policy is the action taken on referencing rows when a referenced row is
// deleted.
type Policy int

const (
	// Cascade deletes the referencing rows too.
	Cascade Policy = iota
	// Protect refuses the delete while referencing rows remain.
	Protect
	// NoAction leaves referencing rows alone; the delete fails if any would
	// be left dangling.
	NoAction
)

func (p Policy) String() string {
	switch p {
	case Cascade:
		return "CASCADE"
	case Protect:
		return "RESTRICT"
	case NoAction:
		return "NO ACTION"
	}
	return "UNKNOWN"
}

// Relation is a foreign key from Child.Column to Parent.id.
type Relation struct {
	Child    string
	Column   string
	Parent   string
	OnDelete Policy
}

// Relations lists every foreign key of the schema. Create and Update check
// outgoing references against it and Delete walks it to collect cascades.
var Relations = []Relation{
	{model.TableOrganizations, "manager_id", model.TableOrganizations, Protect},
	{model.TableOrganizationContactPoints, "organization_id", model.TableOrganizations, Cascade},
	{model.TableIdentifications, "subject_id", model.TableSubjects, Cascade},
	{model.TableAddresses, "subject_id", model.TableSubjects, Cascade},
	{model.TableContactPoints, "subject_id", model.TableSubjects, Cascade},
	{model.TableItems, "supplier_id", model.TableOrganizations, Cascade},
	{model.TableSpecifications, "item_id", model.TableItems, Cascade},
	{model.TableConsumables, "specification_id", model.TableSpecifications, Cascade},
	{model.TableConsumables, "project_id", model.TableProjects, Cascade},
	{model.TableSubjectRoles, "organization_id", model.TableOrganizations, Cascade},
	{model.TableSubjectRoles, "project_id", model.TableProjects, Cascade},
	{model.TableSubjectRoles, "subject_id", model.TableSubjects, Cascade},
	{model.TableVotes, "project_id", model.TableProjects, Cascade},
	{model.TableInitiations, "consumable_id", model.TableConsumables, Cascade},
	{model.TableInitiations, "project_id", model.TableProjects, NoAction},
	{model.TableInitiationRoles, "subject_id", model.TableSubjects, Cascade},
	{model.TableInitiationRoles, "initiation_id", model.TableInitiations, NoAction},
}

func referencesFrom(table string) []Relation {
	var out []Relation
	for _, r := range Relations {
		if r.Child == table {
			out = append(out, r)
		}
	}
	return out
}

func referencesTo(table string) []Relation {
	var out []Relation
	for _, r := range Relations {
		if r.Parent == table {
			out = append(out, r)
		}
	}
	return out
}
