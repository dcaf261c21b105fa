package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/gorm"
)

// Store bundles the repositories of every entity over one connection or
// transaction.
type Store struct {
	db *gorm.DB

	Organizations             *OrganizationRepository
	OrganizationContactPoints *Table[model.OrganizationContactPoint, uint]
	Subjects                  *SubjectRepository
	Identifications           *Table[model.Identification, uint]
	Addresses                 *Table[model.Address, uint]
	ContactPoints             *Table[model.ContactPoint, uint]
	Items                     *ItemRepository
	Specifications            *SpecificationRepository
	Projects                  *ProjectRepository
	Consumables               *Table[model.Consumable, uint]
	SubjectRoles              *Table[model.SubjectRole, uint]
	Votes                     *Table[model.Vote, uint]
	Initiations               *InitiationRepository
	InitiationRoles           *Table[model.InitiationRole, uint]
	AuditLogs                 *AuditLogRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:                        db,
		Organizations:             NewOrganizationRepository(db),
		OrganizationContactPoints: NewTable[model.OrganizationContactPoint, uint](db, "organization contact point"),
		Subjects:                  NewSubjectRepository(db),
		Identifications:           NewTable[model.Identification, uint](db, "identification"),
		Addresses:                 NewTable[model.Address, uint](db, "address"),
		ContactPoints:             newContactPoints(db),
		Items:                     NewItemRepository(db),
		Specifications:            NewSpecificationRepository(db),
		Projects:                  NewProjectRepository(db),
		Consumables:               NewTable[model.Consumable, uint](db, "consumable"),
		SubjectRoles:              NewTable[model.SubjectRole, uint](db, "subject role"),
		Votes:                     NewTable[model.Vote, uint](db, "vote"),
		Initiations:               NewInitiationRepository(db),
		InitiationRoles:           newInitiationRoles(db),
		AuditLogs:                 NewAuditLogRepository(db),
	}
}

func newContactPoints(db *gorm.DB) *Table[model.ContactPoint, uint] {
	t := NewTable[model.ContactPoint, uint](db, "contact point")
	t.order = []string{"subject_id", "rank", "id"}
	return t
}

func newInitiationRoles(db *gorm.DB) *Table[model.InitiationRole, uint] {
	t := NewTable[model.InitiationRole, uint](db, "initiation role")
	t.order = []string{"initiation_id", "date", "id"}
	return t
}

// DB returns the underlying database connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Begin starts a transaction and returns a Store bound to it.
func (s *Store) Begin(ctx context.Context) (*Store, Transaction, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", tx.Error)
	}
	return NewStore(tx), &gormTransaction{tx: tx}, nil
}

// Transaction runs fn against a transaction-bound Store. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(*Store) error) error {
	txStore, tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// VerifyHierarchy checks every stored manager chain and reports the first
// organization whose chain revisits an organization.
func (s *Store) VerifyHierarchy(ctx context.Context) error {
	var rows []struct {
		ID        uint
		ManagerID *uint
	}
	if err := s.db.WithContext(ctx).Model(&model.Organization{}).Select("id", "manager_id").Order("id").Scan(&rows).Error; err != nil {
		return fmt.Errorf("loading organization hierarchy: %w", err)
	}

	manager := make(map[uint]*uint, len(rows))
	for _, row := range rows {
		manager[row.ID] = row.ManagerID
	}

	// Chains already known to reach a root
	rooted := make(map[uint]bool, len(rows))
	for _, row := range rows {
		path := map[uint]bool{}
		cur := row.ID
		for {
			if rooted[cur] {
				break
			}
			if path[cur] {
				return domain.Integrity("organization", "manager chain of %d revisits %d", row.ID, cur)
			}
			path[cur] = true
			next := manager[cur]
			if next == nil {
				break
			}
			cur = *next
		}
		for id := range path {
			rooted[id] = true
		}
	}
	return nil
}
