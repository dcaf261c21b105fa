// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -typed -source=./subject.go -destination=../mocks/mock_subject_repository.go -package=mocks SubjectRepositoryIface
//go:generate mockgen -typed -source=./project.go -destination=../mocks/mock_project_repository.go -package=mocks ProjectRepositoryIface
